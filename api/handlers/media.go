package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailcanvas/mailcanvas/interfaces"
	er "github.com/mailcanvas/mailcanvas/internal/errors"
	"github.com/mailcanvas/mailcanvas/internal/tracing"
)

// maxUploadSize caps media uploads at 25MB, matching common email
// provider attachment limits.
const maxUploadSize = 25 << 20

type MediaHandler struct {
	mediaService interfaces.MediaService
}

func NewMediaHandler(mediaService interfaces.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload accepts a multipart file, stores it and returns the asset with
// its public URL for use in canvas components.
func (h *MediaHandler) Upload() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "MediaHandler.Upload", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.respondWithError(c, span, http.StatusBadRequest, "Missing file in form data", err)
			return
		}
		if fileHeader.Size > maxUploadSize {
			h.respondWithError(c, span, http.StatusRequestEntityTooLarge, "File exceeds upload limit", errors.Errorf("file size %d exceeds limit", fileHeader.Size))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to read file", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to read file", err)
			return
		}

		asset, err := h.mediaService.Upload(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
		if err != nil {
			switch {
			case errors.Is(err, er.ErrUnsupportedFileType):
				h.respondWithError(c, span, http.StatusUnsupportedMediaType, "Unsupported file type", err)
			case errors.Is(err, er.ErrEmptyUpload):
				h.respondWithError(c, span, http.StatusBadRequest, "Uploaded file is empty", err)
			default:
				h.respondWithError(c, span, http.StatusInternalServerError, "Failed to store file", err)
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"url":     asset.PublicURL,
			"asset":   asset,
		})
	}
}

// Get returns a media asset record by id.
func (h *MediaHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "MediaHandler.Get", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		asset, err := h.mediaService.GetByID(ctx, c.Param("id"))
		if err != nil {
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to load media asset", err)
			return
		}
		if asset == nil {
			h.respondWithError(c, span, http.StatusNotFound, "Media asset not found", errors.New("media asset not found"))
			return
		}

		c.JSON(http.StatusOK, asset)
	}
}

// Content streams the stored file bytes so the editor can show assets
// whose bucket is not publicly reachable.
func (h *MediaHandler) Content() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "MediaHandler.Content", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		asset, data, err := h.mediaService.Download(ctx, c.Param("id"))
		if err != nil {
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to download media asset", err)
			return
		}
		if asset == nil {
			h.respondWithError(c, span, http.StatusNotFound, "Media asset not found", errors.New("media asset not found"))
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", asset.Filename))
		c.Data(http.StatusOK, asset.ContentType, data)
	}
}

// Delete removes a media asset from storage and the database.
func (h *MediaHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "MediaHandler.Delete", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		id := c.Param("id")
		if err := h.mediaService.Delete(ctx, id); err != nil {
			h.respondWithError(c, span, http.StatusInternalServerError, "Failed to delete media asset", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "media asset deleted", "id": id})
	}
}

// Helper method to respond with an error
func (h *MediaHandler) respondWithError(c *gin.Context, span opentracing.Span, statusCode int, message string, err error) {
	tracing.TraceErr(span, err)
	c.JSON(statusCode, gin.H{"error": message, "details": err.Error()})
}
