package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/jobs"
	"skillpath-backend/internal/learning"
	"skillpath-backend/internal/recommendations"
)

const guestID = "11111111-1111-1111-1111-111111111111"

type stores struct {
	learning *learning.MemoryRepo
	jobs     *jobs.MemoryRepo
	recs     *recommendations.MemoryRepo
}

func newTestRouter(s stores, userID string, guest bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("isGuest", guest)
		c.Next()
	})
	NewHandler(NewService(nil, s.learning, s.jobs, s.recs)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func claim(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/account/claim-guest", nil)
	if header != "" {
		req.Header.Set("X-Guest-Id", header)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestClaimGuestMigratesData(t *testing.T) {
	ctx := context.Background()
	s := stores{learning: learning.NewMemoryRepo(), jobs: jobs.NewMemoryRepo(), recs: recommendations.NewMemoryRepo()}
	guestUserID := "guest:" + guestID
	now := time.Now().UTC()

	_ = s.learning.CreateUserSkill(ctx, learning.UserSkill{ID: "us-1", UserID: guestUserID, SkillID: "skill-go", ProficiencyLevel: 2})
	_ = s.learning.CreateUserSkill(ctx, learning.UserSkill{ID: "us-2", UserID: guestUserID, SkillID: "skill-sql", ProficiencyLevel: 2})
	_ = s.learning.CreateUserSkill(ctx, learning.UserSkill{ID: "us-3", UserID: "user-1", SkillID: "skill-sql", ProficiencyLevel: 4})
	_ = s.jobs.Create(ctx, jobs.Application{ID: "app-1", JobID: "job-1", UserID: guestUserID, AppliedAt: now})
	_ = s.recs.CreateBatch(ctx, []recommendations.Recommendation{
		{ID: "rec-1", UserID: guestUserID, Type: recommendations.TypeCourse, TargetID: "c1", CreatedAt: now},
	})

	resp := claim(newTestRouter(s, "user-1", false), guestID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var body ClaimResult
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Migrated["user_skills"] != 1 || body.Migrated["job_applications"] != 1 || body.Migrated["recommendations"] != 1 {
		t.Fatalf("unexpected migrated counts %+v", body.Migrated)
	}
	if body.Total != 3 {
		t.Fatalf("expected 3 moved rows, got %d", body.Total)
	}

	skills, _ := s.learning.ListUserSkills(ctx, "user-1")
	if len(skills) != 2 {
		t.Fatalf("expected user to hold 2 skills, got %d", len(skills))
	}
	leftover, _ := s.learning.ListUserSkills(ctx, guestUserID)
	if len(leftover) != 1 || leftover[0].SkillID != "skill-sql" {
		t.Fatalf("duplicate skill should stay with the guest, got %+v", leftover)
	}

	// A second claim finds nothing new to move.
	resp = claim(newTestRouter(s, "user-1", false), guestID)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 on repeat, got %d", resp.Code)
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 0 {
		t.Fatalf("expected nothing moved on repeat, got %d", body.Total)
	}
}

func TestClaimGuestRequiresAccount(t *testing.T) {
	s := stores{learning: learning.NewMemoryRepo(), jobs: jobs.NewMemoryRepo(), recs: recommendations.NewMemoryRepo()}
	if resp := claim(newTestRouter(s, "guest:"+guestID, true), guestID); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for guest caller, got %d", resp.Code)
	}
	if resp := claim(newTestRouter(s, "user-1", false), ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without header, got %d", resp.Code)
	}
	if resp := claim(newTestRouter(s, "user-1", false), "not-a-uuid"); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", resp.Code)
	}
}
