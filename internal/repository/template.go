package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"

	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/enum"
	"github.com/mailcanvas/mailcanvas/internal/models"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) interfaces.TemplateRepository {
	return &templateRepository{db: db}
}

// Create adds a new template to the database and returns its generated id
func (r *templateRepository) Create(ctx context.Context, template *models.EmailTemplate) (string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.Create")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		tracing.TraceErr(span, err)
		return "", err
	}
	return template.ID, nil
}

// Update persists changes to an existing template
func (r *templateRepository) Update(ctx context.Context, template *models.EmailTemplate) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.Update")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if err := r.db.WithContext(ctx).Save(template).Error; err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

// GetByID retrieves a template by its ID, nil when not found
func (r *templateRepository) GetByID(ctx context.Context, id string) (*models.EmailTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.GetByID")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var template models.EmailTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &template, nil
}

// List retrieves templates, optionally filtered by category
func (r *templateRepository) List(ctx context.Context, category enum.TemplateCategory) ([]*models.EmailTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.List")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	query := r.db.WithContext(ctx).Order("updated_at desc")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var templates []*models.EmailTemplate
	if err := query.Find(&templates).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return templates, nil
}

// ListWithDocument retrieves all templates that carry a canvas document,
// used by the nightly regeneration job
func (r *templateRepository) ListWithDocument(ctx context.Context) ([]*models.EmailTemplate, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.ListWithDocument")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var templates []*models.EmailTemplate
	err := r.db.WithContext(ctx).
		Where("content IS NOT NULL AND content != ''").
		Find(&templates).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return templates, nil
}

// UpdateHTML replaces only the compiled HTML of a template
func (r *templateRepository) UpdateHTML(ctx context.Context, id, html string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.UpdateHTML")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	err := r.db.WithContext(ctx).
		Model(&models.EmailTemplate{}).
		Where("id = ?", id).
		Update("html", html).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

// Delete soft deletes a template
func (r *templateRepository) Delete(ctx context.Context, id string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "templateRepository.Delete")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	err := r.db.WithContext(ctx).Delete(&models.EmailTemplate{}, "id = ?", id).Error
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}
