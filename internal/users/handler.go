package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jumysal-backend/internal/shared/server/middleware"
	"jumysal-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PUT("/users/:id/role", middleware.RequireRole(middleware.RoleAdmin), h.setRole)
}

func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}
	}
	userID := middleware.UserIDFromContext(c)
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"fullName":   user.FullName,
		"pictureUrl": user.PictureURL,
		"role":       user.Role,
	})
}

type setRoleRequest struct {
	Role string `json:"role"`
}

func (h *Handler) setRole(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user id is required", nil)
		return
	}

	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !ValidRole(req.Role) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "role must be student, employer or admin", nil)
		return
	}

	if err := h.Svc.SetRole(c.Request.Context(), userID, req.Role); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update role", nil)
		return
	}

	respond.OK(c, gin.H{"id": userID, "role": req.Role})
}
