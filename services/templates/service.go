package templates

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"

	"github.com/mailcanvas/mailcanvas/dto"
	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/canvas"
	"github.com/mailcanvas/mailcanvas/internal/enum"
	er "github.com/mailcanvas/mailcanvas/internal/errors"
	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/models"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
	"github.com/mailcanvas/mailcanvas/internal/utils"
)

const previewTextMaxLen = 200

type templateService struct {
	repository interfaces.TemplateRepository
	compiler   *canvas.Compiler
	publisher  interfaces.EventsPublisher
	log        logger.Logger
}

func NewTemplateService(
	repository interfaces.TemplateRepository,
	compiler *canvas.Compiler,
	publisher interfaces.EventsPublisher,
	log logger.Logger,
) interfaces.TemplateService {
	return &templateService{
		repository: repository,
		compiler:   compiler,
		publisher:  publisher,
		log:        log,
	}
}

// Save compiles the canvas document (when present), discovers placeholder
// variables, refreshes the preview snippet and persists the template.
func (s *templateService) Save(ctx context.Context, request dto.SaveTemplateRequest) (*models.EmailTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.Save")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogFields(log.String("template.name", request.Name))

	if strings.TrimSpace(request.Name) == "" {
		return nil, errors.New("template name is required")
	}

	html := request.HTML
	content := ""
	if request.Content != "" {
		doc, err := canvas.Deserialize(request.Content)
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
		html = s.compiler.Compile(doc)
		// store the normalized form, not the raw payload
		content, err = canvas.Serialize(doc)
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
	}

	template := &models.EmailTemplate{
		ID:          request.ID,
		Name:        request.Name,
		Subject:     request.Subject,
		Category:    request.Category,
		Description: request.Description,
		Content:     content,
		HTML:        html,
		Variables:   utils.ExtractPlaceholders(html, request.Subject),
		PreviewText: extractPreviewText(html),
		UpdatedAt:   utils.Now(),
	}

	isNew := request.ID == ""
	if isNew {
		if _, err := s.repository.Create(ctx, template); err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
	} else {
		existing, err := s.repository.GetByID(ctx, request.ID)
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
		if existing == nil {
			return nil, er.ErrTemplateNotFound
		}
		template.CreatedAt = existing.CreatedAt
		if err := s.repository.Update(ctx, template); err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
	}

	if isNew {
		if err := s.publisher.PublishTemplateCreated(ctx, template); err != nil {
			// best effort, the save already succeeded
			s.log.Warnf("Failed to publish template created event for %s: %v", template.ID, err)
		}
	}

	return template, nil
}

// GetByID loads a template. For canvas-built templates the HTML is
// recompiled from the stored document on every read so edits to the
// component renderers propagate without waiting for the nightly job.
func (s *templateService) GetByID(ctx context.Context, id string) (*models.EmailTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.GetByID")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	if template == nil {
		return nil, er.ErrTemplateNotFound
	}

	if template.HasDocument() {
		template.HTML = s.compiler.Regenerate(template.Content, template.HTML)
	}

	return template, nil
}

func (s *templateService) List(ctx context.Context, category enum.TemplateCategory) ([]*models.EmailTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.List")
	defer span.Finish()
	tracing.TagComponentService(span)

	return s.repository.List(ctx, category)
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.Delete")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	template, err := s.repository.GetByID(ctx, id)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	if template == nil {
		return er.ErrTemplateNotFound
	}

	return s.repository.Delete(ctx, id)
}

// Preview returns the freshest HTML for a template without touching
// stored state.
func (s *templateService) Preview(ctx context.Context, id string) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.Preview")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	template, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return template.HTML, nil
}

// Render prepares a template for sending: regenerated HTML and subject
// with the supplied placeholder values substituted. Unknown placeholders
// are left intact so missing data is visible downstream.
func (s *templateService) Render(ctx context.Context, id string, values map[string]string) (*dto.RenderedTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.Render")
	defer span.Finish()
	tracing.TagComponentService(span)
	tracing.TagEntity(span, id)

	template, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.RenderedTemplate{
		TemplateID: template.ID,
		Subject:    utils.SubstitutePlaceholders(template.Subject, values),
		HTML:       utils.SubstitutePlaceholders(template.HTML, values),
	}, nil
}

// RegenerateAll recompiles every canvas-built template from its stored
// document and persists the HTML when it drifted. Returns the number of
// templates refreshed.
func (s *templateService) RegenerateAll(ctx context.Context) (int, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateService.RegenerateAll")
	defer span.Finish()
	tracing.TagComponentService(span)

	templates, err := s.repository.ListWithDocument(ctx)
	if err != nil {
		tracing.TraceErr(span, err)
		return 0, err
	}

	refreshed := 0
	for _, template := range templates {
		html := s.compiler.Regenerate(template.Content, template.HTML)
		if html == template.HTML {
			continue
		}
		if err := s.repository.UpdateHTML(ctx, template.ID, html); err != nil {
			tracing.TraceErr(span, err)
			s.log.Errorf("Failed to refresh HTML for template %s: %v", template.ID, err)
			continue
		}
		refreshed++
		if err := s.publisher.PublishTemplateRegenerated(ctx, template.ID); err != nil {
			s.log.Warnf("Failed to publish template regenerated event for %s: %v", template.ID, err)
		}
	}

	span.LogFields(log.Int("result.refreshed", refreshed))
	return refreshed, nil
}

// extractPreviewText strips the compiled markup down to the plain-text
// snippet shown in template listings.
func extractPreviewText(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("style").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if len(runes) > previewTextMaxLen {
		return string(runes[:previewTextMaxLen])
	}
	return text
}
