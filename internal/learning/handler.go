package learning

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
	rg.GET("/dashboard", h.dashboard)

	rg.GET("/user/skills", h.listSkills)
	rg.POST("/user/skills", h.addSkill)
	rg.PATCH("/user/skills/:id", h.updateSkill)
	rg.DELETE("/user/skills/:id", h.removeSkill)

	rg.GET("/user/courses", h.listCourses)
	rg.POST("/user/courses", h.enroll)
	rg.PATCH("/user/courses/:id/progress", h.updateProgress)

	rg.GET("/user/goals", h.listGoals)
	rg.POST("/user/goals", h.addGoal)
}

type addSkillRequest struct {
	SkillID          string `json:"skillId"`
	ProficiencyLevel int    `json:"proficiencyLevel"`
}

type updateSkillRequest struct {
	ProficiencyLevel int `json:"proficiencyLevel"`
}

type enrollRequest struct {
	CourseID string `json:"courseId"`
}

type progressRequest struct {
	Progress *int `json:"progress"`
}

type addGoalRequest struct {
	CareerPathID string `json:"careerPathId"`
}

func (h *Handler) dashboard(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err, "failed to load dashboard")
		return
	}
	respond.OK(c, summary)
}

func (h *Handler) listSkills(c *gin.Context) {
	skills, err := h.Svc.Skills(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err, "failed to list skills")
		return
	}
	if skills == nil {
		skills = []UserSkill{}
	}
	respond.OK(c, gin.H{"items": skills})
}

func (h *Handler) addSkill(c *gin.Context) {
	var req addSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	skill, err := h.Svc.AddSkill(c.Request.Context(), middleware.UserIDFromContext(c), req.SkillID, req.ProficiencyLevel)
	if err != nil {
		writeError(c, err, "failed to add skill")
		return
	}
	respond.Created(c, skill)
}

func (h *Handler) updateSkill(c *gin.Context) {
	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if err := h.Svc.UpdateSkillLevel(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), req.ProficiencyLevel); err != nil {
		writeError(c, err, "failed to update skill")
		return
	}
	respond.OK(c, gin.H{"id": c.Param("id"), "proficiencyLevel": req.ProficiencyLevel})
}

func (h *Handler) removeSkill(c *gin.Context) {
	if err := h.Svc.RemoveSkill(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id")); err != nil {
		writeError(c, err, "failed to remove skill")
		return
	}
	respond.NoContent(c)
}

func (h *Handler) listCourses(c *gin.Context) {
	courses, err := h.Svc.Courses(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err, "failed to list courses")
		return
	}
	if courses == nil {
		courses = []UserCourse{}
	}
	respond.OK(c, gin.H{"items": courses})
}

func (h *Handler) enroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	course, err := h.Svc.Enroll(c.Request.Context(), middleware.UserIDFromContext(c), req.CourseID)
	if err != nil {
		writeError(c, err, "failed to enroll")
		return
	}
	respond.Created(c, course)
}

func (h *Handler) updateProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Progress == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "progress is required", []map[string]string{
			{"field": "progress", "issue": "required"},
		})
		return
	}
	course, err := h.Svc.UpdateProgress(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"), *req.Progress)
	if err != nil {
		writeError(c, err, "failed to update progress")
		return
	}
	respond.OK(c, course)
}

func (h *Handler) listGoals(c *gin.Context) {
	goals, err := h.Svc.Goals(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		writeError(c, err, "failed to list goals")
		return
	}
	if goals == nil {
		goals = []CareerGoal{}
	}
	respond.OK(c, gin.H{"items": goals})
}

func (h *Handler) addGoal(c *gin.Context) {
	var req addGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	goal, err := h.Svc.AddGoal(c.Request.Context(), middleware.UserIDFromContext(c), req.CareerPathID)
	if err != nil {
		writeError(c, err, "failed to add goal")
		return
	}
	respond.Created(c, goal)
}

func writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "record not found", nil)
	case errors.Is(err, ErrConflict):
		respond.Error(c, http.StatusConflict, "conflict", "record already exists", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
