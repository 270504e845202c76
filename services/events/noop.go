package events

import (
	"context"

	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/models"
)

// NoopPublisher satisfies EventsPublisher when no broker URL is configured,
// such as in local development and tests.
type NoopPublisher struct{}

func NewNoopPublisher() interfaces.EventsPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) PublishTemplateCreated(ctx context.Context, template *models.EmailTemplate) error {
	return nil
}

func (n *NoopPublisher) PublishTemplateRegenerated(ctx context.Context, templateID string) error {
	return nil
}

func (n *NoopPublisher) Close() error {
	return nil
}
