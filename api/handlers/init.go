package handlers

import (
	"github.com/mailcanvas/mailcanvas/services"
)

type APIHandlers struct {
	Templates *TemplatesHandler
	Media     *MediaHandler
}

func InitHandlers(s *services.Services) *APIHandlers {
	return &APIHandlers{
		Templates: NewTemplatesHandler(s.TemplateService, s.Registry, s.Compiler),
		Media:     NewMediaHandler(s.MediaService),
	}
}
