package faq

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jumysal-backend/internal/shared/server/middleware"
	"jumysal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the FAQ service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches FAQ routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/faq", h.list)
	rg.POST("/faq", middleware.RequireRole(middleware.RoleAdmin), h.create)
	rg.DELETE("/faq/:id", middleware.RequireRole(middleware.RoleAdmin), h.remove)
}

func (h *Handler) list(c *gin.Context) {
	entries, err := h.Svc.Search(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list faq", nil)
		return
	}
	respond.OK(c, entries)
}

type createRequest struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	entry, err := h.Svc.Create(c.Request.Context(), Entry{
		Category: req.Category,
		Question: req.Question,
		Answer:   req.Answer,
		Position: req.Position,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "question and answer are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create faq entry", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, entry)
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "faq entry not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete faq entry", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
