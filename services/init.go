package services

import (
	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/canvas"
	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/repository"
	"github.com/mailcanvas/mailcanvas/services/events"
	"github.com/mailcanvas/mailcanvas/services/media"
	"github.com/mailcanvas/mailcanvas/services/templates"
)

type Services struct {
	Registry        *canvas.Registry
	Compiler        *canvas.Compiler
	EventsPublisher interfaces.EventsPublisher
	TemplateService interfaces.TemplateService
	MediaService    interfaces.MediaService
}

func InitServices(rabbitmqURL, formEndpointURL string, log logger.Logger, repos *repository.Repositories) (*Services, error) {
	registry := canvas.NewRegistry()
	compiler := canvas.NewCompiler(registry, canvas.CompilerConfig{
		FormEndpoint: formEndpointURL,
	}, log)

	// events
	publisher := events.NewNoopPublisher()
	if rabbitmqURL != "" {
		publisherConfig := &events.PublisherConfig{
			MessageTTL:          events.DefaultMessageTTL,
			MaxRetries:          events.DefaultMaxRetries,
			PublishTimeout:      events.DefaultPublishTimeout,
			ReconnectBackoff:    events.DefaultReconnectBackoff,
			MaxReconnectBackoff: events.DefaultMaxReconnectBackoff,
		}
		var err error
		publisher, err = events.NewRabbitMQPublisher(rabbitmqURL, log, publisherConfig)
		if err != nil {
			return nil, err
		}
	}

	services := Services{
		Registry:        registry,
		Compiler:        compiler,
		EventsPublisher: publisher,
		TemplateService: templates.NewTemplateService(repos.TemplateRepository, compiler, publisher, log),
		MediaService:    media.NewMediaService(repos.MediaAssetRepository, log),
	}

	return &services, nil
}
