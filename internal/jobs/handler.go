package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jumysal-backend/internal/shared/server/middleware"
	"jumysal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the jobs service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.POST("/jobs", middleware.RequireRole(middleware.RoleEmployer), h.create)
	rg.PUT("/jobs/:id", middleware.RequireRole(middleware.RoleEmployer), h.update)
	rg.DELETE("/jobs/:id", h.remove)
	rg.GET("/employer/jobs", middleware.RequireRole(middleware.RoleEmployer), h.mine)
	rg.GET("/admin/jobs/pending", middleware.RequireRole(middleware.RoleAdmin), h.pending)
	rg.PUT("/admin/jobs/:id/status", middleware.RequireRole(middleware.RoleAdmin), h.moderate)
}

type jobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
}

func (h *Handler) create(c *gin.Context) {
	employerID := middleware.UserIDFromContext(c)

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), employerID, Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title and company are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, job)
}

func (h *Handler) update(c *gin.Context) {
	employerID := middleware.UserIDFromContext(c)
	jobID := c.Param("id")

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Update(c.Request.Context(), employerID, jobID, Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	respond.OK(c, job)
}

func (h *Handler) remove(c *gin.Context) {
	requesterID := middleware.UserIDFromContext(c)
	isAdmin := middleware.UserRoleFromContext(c) == middleware.RoleAdmin
	jobID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), requesterID, isAdmin, jobID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Unmoderated postings are only visible to their owner and admins.
	if job.Status != StatusApproved {
		requesterID := middleware.UserIDFromContext(c)
		isAdmin := middleware.UserRoleFromContext(c) == middleware.RoleAdmin
		if !isAdmin && job.EmployerID != requesterID {
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
			return
		}
	}

	respond.OK(c, job)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.Svc.ListPublic(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) mine(c *gin.Context) {
	employerID := middleware.UserIDFromContext(c)
	limit, offset := pagination(c)
	list, err := h.Svc.ListMine(c.Request.Context(), employerID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	respond.OK(c, list)
}

func (h *Handler) pending(c *gin.Context) {
	limit, offset := pagination(c)
	list, err := h.Svc.ListPending(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	respond.OK(c, list)
}

type moderateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) moderate(c *gin.Context) {
	adminID := middleware.UserIDFromContext(c)
	jobID := c.Param("id")

	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Moderate(c.Request.Context(), adminID, jobID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "status must be approved or rejected", nil)
		default:
			h.writeError(c, err)
		}
		return
	}

	respond.OK(c, job)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "not allowed", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "title and company are required", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "job operation failed", nil)
	}
}

func pagination(c *gin.Context) (int, int) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
