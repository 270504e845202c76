package templates

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcanvas/mailcanvas/dto"
	"github.com/mailcanvas/mailcanvas/internal/canvas"
	"github.com/mailcanvas/mailcanvas/internal/enum"
	er "github.com/mailcanvas/mailcanvas/internal/errors"
	"github.com/mailcanvas/mailcanvas/internal/logger"
	"github.com/mailcanvas/mailcanvas/internal/models"
	"github.com/mailcanvas/mailcanvas/services/events"
)

type fakeTemplateRepository struct {
	templates map[string]*models.EmailTemplate
	nextID    int
}

func newFakeTemplateRepository() *fakeTemplateRepository {
	return &fakeTemplateRepository{templates: make(map[string]*models.EmailTemplate)}
}

func (f *fakeTemplateRepository) Create(ctx context.Context, template *models.EmailTemplate) (string, error) {
	if template.ID == "" {
		f.nextID++
		template.ID = fmt.Sprintf("tmpl_%d", f.nextID)
	}
	if template.Category == "" {
		template.Category = enum.TemplateGeneral
	}
	stored := *template
	f.templates[template.ID] = &stored
	return template.ID, nil
}

func (f *fakeTemplateRepository) Update(ctx context.Context, template *models.EmailTemplate) error {
	stored := *template
	f.templates[template.ID] = &stored
	return nil
}

func (f *fakeTemplateRepository) GetByID(ctx context.Context, id string) (*models.EmailTemplate, error) {
	template, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	copied := *template
	return &copied, nil
}

func (f *fakeTemplateRepository) List(ctx context.Context, category enum.TemplateCategory) ([]*models.EmailTemplate, error) {
	var result []*models.EmailTemplate
	for _, template := range f.templates {
		if category == "" || template.Category == category {
			copied := *template
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeTemplateRepository) ListWithDocument(ctx context.Context) ([]*models.EmailTemplate, error) {
	var result []*models.EmailTemplate
	for _, template := range f.templates {
		if template.Content != "" {
			copied := *template
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeTemplateRepository) UpdateHTML(ctx context.Context, id, html string) error {
	template, ok := f.templates[id]
	if !ok {
		return fmt.Errorf("template %s not found", id)
	}
	template.HTML = html
	return nil
}

func (f *fakeTemplateRepository) Delete(ctx context.Context, id string) error {
	delete(f.templates, id)
	return nil
}

func getLogger() logger.Logger {
	appLogger := logger.NewAppLogger(&logger.Config{
		DevMode: true,
	})
	appLogger.InitLogger()
	return appLogger
}

func newTestService() (*fakeTemplateRepository, *templateService) {
	registry := canvas.NewRegistry()
	compiler := canvas.NewCompiler(registry, canvas.CompilerConfig{
		FormEndpoint: "https://forms.example.com/submit",
	}, getLogger())
	repo := newFakeTemplateRepository()
	svc := NewTemplateService(repo, compiler, events.NewNoopPublisher(), getLogger()).(*templateService)
	return repo, svc
}

func headingDocument(t *testing.T, text string) string {
	t.Helper()
	registry := canvas.NewRegistry()
	editor := canvas.NewCanvas(registry)
	heading, ok := editor.Insert(canvas.TypeHeading)
	require.True(t, ok)
	require.True(t, editor.UpdateProperties(heading.ID, canvas.Properties{"text": text}))
	content, err := canvas.Serialize(editor.Document())
	require.NoError(t, err)
	return content
}

func TestTemplateService_Save_CompilesDocument(t *testing.T) {
	// Arrange
	_, svc := newTestService()
	content := headingDocument(t, "Welcome {{firstName}}")

	// Act
	template, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:     "Welcome email",
		Subject:  "Hello {{firstName}}",
		Category: enum.TemplateOnboarding,
		Content:  content,
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, template.ID)
	assert.Contains(t, template.HTML, "Welcome {{firstName}}")
	assert.Contains(t, template.HTML, "<!DOCTYPE html")
	assert.Equal(t, []string{"firstName"}, []string(template.Variables))
	assert.Contains(t, template.PreviewText, "Welcome")
	assert.NotContains(t, template.PreviewText, "<h")
}

func TestTemplateService_Save_RequiresName(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name: "   ",
		HTML: "<p>hi</p>",
	})

	assert.Error(t, err)
}

func TestTemplateService_Save_RejectsMalformedDocument(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:    "Broken",
		Content: `{"not":"an array"}`,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, er.ErrInvalidDocumentPayload)
}

func TestTemplateService_Save_UpdateMissingTemplate(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		ID:   "tmpl_missing",
		Name: "Ghost",
		HTML: "<p>hi</p>",
	})

	assert.ErrorIs(t, err, er.ErrTemplateNotFound)
}

func TestTemplateService_Save_RawHTMLTemplate(t *testing.T) {
	// Templates imported as raw markup keep their HTML untouched and
	// carry no canvas document.
	_, svc := newTestService()

	template, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name: "Imported",
		HTML: "<p>Dear {{lastName}}</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "<p>Dear {{lastName}}</p>", template.HTML)
	assert.False(t, template.HasDocument())
	assert.Equal(t, []string{"lastName"}, []string(template.Variables))
}

func TestTemplateService_GetByID_RegeneratesFromDocument(t *testing.T) {
	// Arrange: persist a template, then corrupt the stored HTML to
	// simulate drift between document and cache.
	repo, svc := newTestService()
	content := headingDocument(t, "Fresh")
	saved, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:    "Drifted",
		Content: content,
	})
	require.NoError(t, err)
	repo.templates[saved.ID].HTML = "<p>stale</p>"

	// Act
	loaded, err := svc.GetByID(context.Background(), saved.ID)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, loaded.HTML, "Fresh")
	assert.NotEqual(t, "<p>stale</p>", loaded.HTML)
}

func TestTemplateService_GetByID_NotFound(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.GetByID(context.Background(), "tmpl_nope")

	assert.ErrorIs(t, err, er.ErrTemplateNotFound)
}

func TestTemplateService_GetByID_KeepsStoredHTMLOnBrokenDocument(t *testing.T) {
	// A template whose stored document no longer parses must fall back
	// to its cached HTML instead of serving nothing.
	repo, svc := newTestService()
	saved, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:    "Broken payload",
		Content: headingDocument(t, "Original"),
	})
	require.NoError(t, err)
	repo.templates[saved.ID].Content = "{{{ not json"

	loaded, err := svc.GetByID(context.Background(), saved.ID)

	require.NoError(t, err)
	assert.Contains(t, loaded.HTML, "Original")
}

func TestTemplateService_Render_SubstitutesValues(t *testing.T) {
	_, svc := newTestService()
	saved, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:    "Welcome",
		Subject: "Hi {{firstName}}",
		Content: headingDocument(t, "Welcome {{firstName}} {{lastName}}"),
	})
	require.NoError(t, err)

	rendered, err := svc.Render(context.Background(), saved.ID, map[string]string{
		"firstName": "Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hi Ada", rendered.Subject)
	assert.Contains(t, rendered.HTML, "Welcome Ada")
	// unknown placeholders stay visible
	assert.Contains(t, rendered.HTML, "{{lastName}}")
}

func TestTemplateService_RegenerateAll(t *testing.T) {
	// Arrange: two canvas templates, one with drifted HTML, plus one
	// raw-HTML template that must never be touched.
	repo, svc := newTestService()
	drifted, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:    "Drifted",
		Content: headingDocument(t, "One"),
	})
	require.NoError(t, err)
	fresh, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:    "Fresh",
		Content: headingDocument(t, "Two"),
	})
	require.NoError(t, err)
	raw, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name: "Raw",
		HTML: "<p>imported</p>",
	})
	require.NoError(t, err)
	repo.templates[drifted.ID].HTML = "<p>stale</p>"

	// Act
	refreshed, err := svc.RegenerateAll(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
	assert.Contains(t, repo.templates[drifted.ID].HTML, "One")
	assert.Equal(t, fresh.HTML, repo.templates[fresh.ID].HTML)
	assert.Equal(t, "<p>imported</p>", repo.templates[raw.ID].HTML)
}

func TestTemplateService_Delete(t *testing.T) {
	repo, svc := newTestService()
	saved, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name: "Doomed",
		HTML: "<p>bye</p>",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), saved.ID))
	assert.NotContains(t, repo.templates, saved.ID)

	assert.ErrorIs(t, svc.Delete(context.Background(), saved.ID), er.ErrTemplateNotFound)
}

func TestTemplateService_List_FiltersByCategory(t *testing.T) {
	_, svc := newTestService()
	_, err := svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:     "Newsletter A",
		Category: enum.TemplateNewsletter,
		HTML:     "<p>a</p>",
	})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), dto.SaveTemplateRequest{
		Name:     "Invoice B",
		Category: enum.TemplateInvoice,
		HTML:     "<p>b</p>",
	})
	require.NoError(t, err)

	newsletters, err := svc.List(context.Background(), enum.TemplateNewsletter)
	require.NoError(t, err)
	require.Len(t, newsletters, 1)
	assert.Equal(t, "Newsletter A", newsletters[0].Name)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExtractPreviewText(t *testing.T) {
	assert.Equal(t, "", extractPreviewText(""))
	assert.Equal(t, "Hello world", extractPreviewText("<h1>Hello</h1><p>world</p>"))

	long := "<p>" + strings.Repeat("word ", 100) + "</p>"
	preview := extractPreviewText(long)
	assert.LessOrEqual(t, len([]rune(preview)), previewTextMaxLen)
}
