package mentorship

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/shared/server/middleware"
	"skillpath-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/mentors/:id/requests", h.request)
	rg.GET("/user/mentorships", h.active)
}

type requestBody struct {
	FocusArea string `json:"focusArea"`
}

func (h *Handler) request(c *gin.Context) {
	var body requestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	m, err := h.Svc.Request(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), body.FocusArea)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "mentor not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to send mentorship request", nil)
		}
		return
	}
	respond.Created(c, m)
}

func (h *Handler) active(c *gin.Context) {
	items, err := h.Svc.Active(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list mentorships", nil)
		return
	}
	if items == nil {
		items = []Mentorship{}
	}
	respond.OK(c, gin.H{"items": items})
}
