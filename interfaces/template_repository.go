package interfaces

import (
	"context"

	"github.com/mailcanvas/mailcanvas/internal/enum"
	"github.com/mailcanvas/mailcanvas/internal/models"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *models.EmailTemplate) (string, error)
	Update(ctx context.Context, template *models.EmailTemplate) error
	GetByID(ctx context.Context, id string) (*models.EmailTemplate, error)
	List(ctx context.Context, category enum.TemplateCategory) ([]*models.EmailTemplate, error)
	ListWithDocument(ctx context.Context) ([]*models.EmailTemplate, error)
	UpdateHTML(ctx context.Context, id, html string) error
	Delete(ctx context.Context, id string) error
}
