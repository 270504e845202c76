package interfaces

import (
	"context"

	"github.com/mailcanvas/mailcanvas/dto"
	"github.com/mailcanvas/mailcanvas/internal/enum"
	"github.com/mailcanvas/mailcanvas/internal/models"
)

type TemplateService interface {
	Save(ctx context.Context, request dto.SaveTemplateRequest) (*models.EmailTemplate, error)
	GetByID(ctx context.Context, id string) (*models.EmailTemplate, error)
	List(ctx context.Context, category enum.TemplateCategory) ([]*models.EmailTemplate, error)
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, id string) (string, error)
	Render(ctx context.Context, id string, values map[string]string) (*dto.RenderedTemplate, error)
	RegenerateAll(ctx context.Context) (int, error)
}
