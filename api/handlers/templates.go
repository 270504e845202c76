package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	custom_err "github.com/mailcanvas/mailcanvas/api/errors"
	"github.com/mailcanvas/mailcanvas/dto"
	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/internal/canvas"
	"github.com/mailcanvas/mailcanvas/internal/enum"
	er "github.com/mailcanvas/mailcanvas/internal/errors"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

type TemplatesHandler struct {
	templateService interfaces.TemplateService
	registry        *canvas.Registry
	compiler        *canvas.Compiler
}

func NewTemplatesHandler(templateService interfaces.TemplateService, registry *canvas.Registry, compiler *canvas.Compiler) *TemplatesHandler {
	return &TemplatesHandler{
		templateService: templateService,
		registry:        registry,
		compiler:        compiler,
	}
}

// ListComponents returns the component catalog the editor palette is
// built from, in registration order.
func (h *TemplatesHandler) ListComponents() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"components": h.registry.Definitions()})
	}
}

// Save creates or updates a template from the editor payload.
func (h *TemplatesHandler) Save() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.Save", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request dto.SaveTemplateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			h.respondWithError(c, span, http.StatusBadRequest, "Invalid request format", err)
			return
		}
		if id := c.Param("id"); id != "" {
			request.ID = id
		}

		errs := h.validateSaveRequest(ctx, &request)
		if errs.HasErrors() {
			tracing.TraceErr(span, errs)
			c.JSON(http.StatusBadRequest, errs)
			return
		}

		template, err := h.templateService.Save(ctx, request)
		if err != nil {
			switch {
			case errors.Is(err, er.ErrTemplateNotFound):
				h.respondWithError(c, span, http.StatusNotFound, "Template not found", err)
			case errors.Is(err, er.ErrInvalidDocumentPayload):
				h.respondWithError(c, span, http.StatusBadRequest, "Invalid canvas document", err)
			default:
				h.respondWithError(c, span, http.StatusInternalServerError, "Failed to save template", err)
			}
			return
		}

		status := http.StatusOK
		if request.ID == "" {
			status = http.StatusCreated
		}
		c.JSON(status, template)
	}
}

// Get returns a single template with its HTML freshly compiled.
func (h *TemplatesHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.Get", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		template, err := h.templateService.GetByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, er.ErrTemplateNotFound) {
				h.respondWithError(c, span, http.StatusNotFound, "Template not found", err)
				return
			}
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to load template", err)
			return
		}

		c.JSON(http.StatusOK, template)
	}
}

// List returns all templates, optionally filtered by category.
func (h *TemplatesHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.List", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		category := enum.TemplateCategory(c.Query("category"))
		if category != "" && !category.IsValid() {
			h.respondWithError(c, span, http.StatusBadRequest, "Unknown template category", errors.Errorf("unknown category: %s", category))
			return
		}

		templates, err := h.templateService.List(ctx, category)
		if err != nil {
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to list templates", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"templates": templates})
	}
}

// Delete removes a template.
func (h *TemplatesHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.Delete", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		id := c.Param("id")
		if err := h.templateService.Delete(ctx, id); err != nil {
			if errors.Is(err, er.ErrTemplateNotFound) {
				h.respondWithError(c, span, http.StatusNotFound, "Template not found", err)
				return
			}
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to delete template", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "template deleted", "id": id})
	}
}

// Preview serves the compiled HTML so the editor can host it in an iframe.
func (h *TemplatesHandler) Preview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.Preview", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		html, err := h.templateService.Preview(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, er.ErrTemplateNotFound) {
				h.respondWithError(c, span, http.StatusNotFound, "Template not found", err)
				return
			}
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to compile preview", err)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}

// PreviewDocument compiles a posted canvas document into HTML without
// touching storage. Backs the editor's live preview pane.
func (h *TemplatesHandler) PreviewDocument() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.PreviewDocument", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request dto.PreviewTemplateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			h.respondWithError(c, span, http.StatusBadRequest, "Invalid request format", err)
			return
		}

		doc, err := canvas.Deserialize(request.Content)
		if err != nil {
			h.respondWithError(c, span, http.StatusBadRequest, "Invalid canvas document", err)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.compiler.Compile(doc)))
	}
}

type renderTemplateRequest struct {
	Values map[string]string `json:"values"`
}

// Render substitutes placeholder values and returns the send-ready
// subject and HTML.
func (h *TemplatesHandler) Render() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "TemplatesHandler.Render", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var request renderTemplateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			h.respondWithError(c, span, http.StatusBadRequest, "Invalid request format", err)
			return
		}

		rendered, err := h.templateService.Render(ctx, c.Param("id"), request.Values)
		if err != nil {
			if errors.Is(err, er.ErrTemplateNotFound) {
				h.respondWithError(c, span, http.StatusNotFound, "Template not found", err)
				return
			}
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to render template", err)
			return
		}

		c.JSON(http.StatusOK, rendered)
	}
}

// validateSaveRequest performs initial validation on the request
func (h *TemplatesHandler) validateSaveRequest(ctx context.Context, request *dto.SaveTemplateRequest) *custom_err.MultiErrors {
	span, _ := opentracing.StartSpanFromContext(ctx, "TemplatesHandler.validateSaveRequest")
	defer span.Finish()
	tracing.TagComponentRest(span)

	errs := custom_err.NewMultiErrors()

	if request.Name == "" {
		errs.Add("name", "please provide a template name", errors.New("name is empty"))
	}

	if request.Category != "" && !request.Category.IsValid() {
		errs.Add("category", "unknown template category", errors.Errorf("unknown category: %s", request.Category))
	}

	if request.Content == "" && request.HTML == "" {
		errs.Add("content", "please provide a canvas document or raw html", errors.New("content and html are empty"))
	}

	return errs
}

// Helper method to respond with an error
func (h *TemplatesHandler) respondWithError(c *gin.Context, span opentracing.Span, statusCode int, message string, err error) {
	tracing.TraceErr(span, err)
	c.JSON(statusCode, gin.H{"error": message, "details": err.Error()})
}
