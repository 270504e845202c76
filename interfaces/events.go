package interfaces

import (
	"context"

	"github.com/mailcanvas/mailcanvas/internal/models"
)

// EventsPublisher broadcasts template lifecycle events to interested
// consumers (compose UIs, analytics). Implementations must be safe for
// concurrent use; publishing is best-effort and never blocks a save.
type EventsPublisher interface {
	PublishTemplateCreated(ctx context.Context, template *models.EmailTemplate) error
	PublishTemplateRegenerated(ctx context.Context, templateID string) error
	Close() error
}
