package jobs

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/jobs", h.list)
	rg.POST("/jobs/:id/apply", h.apply)
	rg.GET("/user/applications", h.applications)
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

func (h *Handler) list(c *gin.Context) {
	q := Query{Search: c.Query("search"), Type: c.Query("type")}
	if raw := c.Query("remote"); raw != "" && raw != "all" {
		remote, err := strconv.ParseBool(raw)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "remote must be true or false", []map[string]string{
				{"field": "remote", "issue": "invalid"},
			})
			return
		}
		q.Remote = &remote
	}
	listings, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), q)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}
	respond.OK(c, gin.H{"items": listings})
}

func (h *Handler) apply(c *gin.Context) {
	var req applyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
	}
	app, err := h.Svc.Apply(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrConflict):
			respond.Error(c, http.StatusConflict, "conflict", "You have already applied to this job", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to submit application", nil)
		}
		return
	}
	respond.Created(c, app)
}

func (h *Handler) applications(c *gin.Context) {
	apps, err := h.Svc.Applications(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}
	if apps == nil {
		apps = []Application{}
	}
	respond.OK(c, gin.H{"items": apps})
}
