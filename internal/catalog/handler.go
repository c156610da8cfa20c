package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/shared/server/respond"
)

// Handler serves the read-only catalog pages.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.listCourses)
	rg.GET("/courses/:id", h.getCourse)
	rg.GET("/career-paths", h.listCareerPaths)
	rg.GET("/skills", h.listSkills)
	rg.GET("/mentors", h.listMentors)
}

func (h *Handler) listCourses(c *gin.Context) {
	courses, err := h.Svc.BrowseCourses(c.Request.Context(), CourseQuery{
		Search:   c.Query("search"),
		Level:    c.Query("level"),
		Category: c.Query("category"),
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list courses", nil)
		return
	}
	respond.OK(c, gin.H{"items": nonNil(courses)})
}

func (h *Handler) getCourse(c *gin.Context) {
	course, err := h.Svc.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "course not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load course", nil)
		return
	}
	respond.OK(c, course)
}

func (h *Handler) listCareerPaths(c *gin.Context) {
	paths, err := h.Svc.CareerPaths(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list career paths", nil)
		return
	}
	respond.OK(c, gin.H{"items": nonNil(paths)})
}

func (h *Handler) listSkills(c *gin.Context) {
	skills, err := h.Svc.Skills(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list skills", nil)
		return
	}
	respond.OK(c, gin.H{"items": nonNil(skills)})
}

func (h *Handler) listMentors(c *gin.Context) {
	mentors, err := h.Svc.Mentors(c.Request.Context(), c.Query("search"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list mentors", nil)
		return
	}
	respond.OK(c, gin.H{"items": nonNil(mentors)})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
