package recommendations

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
	rg.GET("/recommendations", h.list)
	rg.POST("/recommendations/:id/view", h.markViewed)
}

func (h *Handler) list(c *gin.Context) {
	filter := Type(c.Query("type"))
	if filter != "" && filter != "all" && !filter.Valid() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown recommendation type", []map[string]string{
			{"field": "type", "issue": "invalid"},
		})
		return
	}

	view, err := h.Svc.View(middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	state := view.Load(c.Request.Context())
	c.Set("stateTransition", view.TransitionLabel())

	items := view.Filter(filter)
	respond.OK(c, gin.H{
		"state": state,
		"total": len(view.Items()),
		"items": items,
	})
}

func (h *Handler) markViewed(c *gin.Context) {
	id := c.Param("id")
	c.Set("recommendationId", id)

	view, err := h.Svc.View(middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if err := view.MarkViewed(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "recommendation id is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to mark recommendation viewed", nil)
		}
		return
	}
	respond.OK(c, gin.H{"id": id, "isViewed": true})
}
