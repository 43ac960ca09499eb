package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jumysal-backend/internal/shared/server/middleware"
	"jumysal-backend/internal/shared/server/respond"
)

const maxPhotoSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.get)
	rg.PUT("/profile", h.update)
	rg.POST("/profile/photo", h.uploadPhoto)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// A fresh account has no profile yet; the editor starts blank.
			respond.OK(c, Profile{UserID: userID})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load profile", nil)
		return
	}
	respond.OK(c, profile)
}

type updateRequest struct {
	DisplayName    string   `json:"displayName"`
	Email          string   `json:"email"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio"`
	Position       string   `json:"position"`
	Institution    string   `json:"institution"`
	GraduationYear string   `json:"graduationYear"`
	LinkedInURL    string   `json:"linkedinUrl"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	Languages      []string `json:"languages"`
	Interests      []string `json:"interests"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Update(c.Request.Context(), Profile{
		UserID:         userID,
		DisplayName:    req.DisplayName,
		Email:          req.Email,
		Location:       req.Location,
		Bio:            req.Bio,
		Position:       req.Position,
		Institution:    req.Institution,
		GraduationYear: req.GraduationYear,
		LinkedInURL:    req.LinkedInURL,
		Skills:         req.Skills,
		Experience:     req.Experience,
		Education:      req.Education,
		Languages:      req.Languages,
		Interests:      req.Interests,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to update profile", nil)
		}
		return
	}
	respond.OK(c, profile)
}

func (h *Handler) uploadPhoto(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	profile, err := h.Svc.UploadPhoto(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to upload photo", nil)
		}
		return
	}
	respond.OK(c, profile)
}
