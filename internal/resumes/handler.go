package resumes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jumysal-backend/internal/profiles"
	"jumysal-backend/internal/queue"
	"jumysal-backend/internal/shared/server/middleware"
	"jumysal-backend/internal/shared/server/respond"
	"jumysal-backend/internal/shared/util"
)

// Exporter renders resume HTML into downloadable artifacts.
type Exporter interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
	RenderPreview(ctx context.Context, html string) ([]byte, error)
}

// Handler wires HTTP handlers to the resume pipeline.
type Handler struct {
	Gen      *Generator
	Profiles *profiles.Service
	Exporter Exporter
	Queue    queue.Client
}

// NewHandler constructs a Handler. Exporter and Queue may be nil; the
// corresponding endpoints then report the feature as unavailable.
func NewHandler(gen *Generator, profilesSvc *profiles.Service, exporter Exporter, q queue.Client) *Handler {
	return &Handler{Gen: gen, Profiles: profilesSvc, Exporter: exporter, Queue: q}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/generate", h.generate)
	rg.POST("/resume/generate-async", h.generateAsync)
	rg.GET("/resume", h.get)
	rg.POST("/resume/export", h.export)
	rg.GET("/resume/preview", h.preview)
}

type generateRequest struct {
	Style string `json:"style"`
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	style := ParseStyle(req.Style)

	snap, err := h.snapshot(c, userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}

	result, err := h.Gen.Generate(c.Request.Context(), userID, snap, style)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOutput):
			respond.Error(c, http.StatusBadGateway, "invalid_output", "AI вернул неполное резюме. Попробуйте ещё раз.", nil)
		case c.Request.Context().Err() != nil:
			respond.Error(c, http.StatusRequestTimeout, "cancelled", "request cancelled", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate resume", nil)
		}
		return
	}

	resp := gin.H{
		"html":        result.HTML,
		"template":    string(result.Template),
		"source":      result.Source,
		"generatedAt": result.GeneratedAt.Format(time.RFC3339),
	}
	if result.Warning != "" {
		resp["warning"] = result.Warning
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) generateAsync(c *gin.Context) {
	if h.Queue == nil {
		respond.Error(c, http.StatusServiceUnavailable, "queue_unavailable", "async generation is not configured", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	style := ParseStyle(req.Style)

	msg := queue.Message{
		UserID:     userID,
		Style:      string(style),
		RequestID:  uuid.NewString(),
		EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
		Version:    1,
	}
	if err := h.Queue.Send(c.Request.Context(), msg); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to enqueue generation", nil)
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{
		"requestId": msg.RequestID,
		"status":    "queued",
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Gen.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no resume generated yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"html":        resume.HTML,
		"template":    string(resume.Template),
		"source":      resume.Source,
		"generatedAt": resume.GeneratedAt.Format(time.RFC3339),
	})
}

func (h *Handler) export(c *gin.Context) {
	if h.Exporter == nil {
		respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", "PDF export is not configured", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Gen.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no resume generated yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	snap, err := h.snapshot(c, userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load profile", nil)
		return
	}

	pdf, err := h.Exporter.RenderPDF(c.Request.Context(), resume.HTML)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to render PDF", nil)
		return
	}

	filename := ExportFileName(snap.DisplayName, time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) preview(c *gin.Context) {
	if h.Exporter == nil {
		respond.Error(c, http.StatusServiceUnavailable, "export_unavailable", "preview rendering is not configured", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Gen.Get(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no resume generated yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	img, err := h.Exporter.RenderPreview(c.Request.Context(), resume.HTML)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to render preview", nil)
		return
	}

	c.Data(http.StatusOK, "image/jpeg", img)
}

// ExportFileName builds the download name for an exported resume:
// the candidate's name plus the export date.
func ExportFileName(displayName string, now time.Time) string {
	name, err := util.SanitizeFileName(displayName)
	if err != nil || name == "" {
		name = "resume"
	}
	return fmt.Sprintf("%s_%s.pdf", name, now.Format("2006-01-02"))
}

func (h *Handler) snapshot(c *gin.Context, userID string) (profiles.Snapshot, error) {
	fallbackName := middleware.UserNameFromContext(c)
	fallbackEmail := middleware.UserEmailFromContext(c)
	return h.Profiles.Snapshot(c.Request.Context(), userID, fallbackName, fallbackEmail)
}
