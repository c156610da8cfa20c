package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"

	"skillpath-backend/internal/catalog"
	"skillpath-backend/internal/recommendations"
	"skillpath-backend/internal/shared/config"
)

func newDevApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := Build(context.Background(), config.Config{Env: "dev"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	t.Cleanup(app.Close)
	return app
}

func guestGet(app *App, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Guest-Id", "bootstrap-test")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestBuildFallsBackToSeededMemory(t *testing.T) {
	app := newDevApp(t)
	if app.DB != nil {
		t.Fatalf("expected no database in dev without DATABASE_URL")
	}

	resp := guestGet(app, "/api/v1/courses")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) == 0 {
		t.Fatalf("expected demo courses")
	}
}

func TestBuildWiresRecommendations(t *testing.T) {
	app := newDevApp(t)
	resp := guestGet(app, "/api/v1/recommendations")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		State string `json:"state"`
		Total int    `json:"total"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.State != "populated" || body.Total != 5 {
		t.Fatalf("expected 5 generated recommendations, got %+v", body)
	}
}

func TestBuildRequiresDatabaseOutsideDev(t *testing.T) {
	if _, err := Build(context.Background(), config.Config{Env: "production"}); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestEnrichmentIgnoresStaleCatalogCache(t *testing.T) {
	client, mock := redismock.NewClientMock()
	app := &App{Config: config.Config{Env: "dev", CatalogCacheTTL: time.Minute}, Redis: client}
	buildServices(app)

	cached, ok := app.CatalogRepo.(*catalog.CachedRepo)
	if !ok {
		t.Fatalf("expected cached catalog repo, got %T", app.CatalogRepo)
	}
	base := cached.Repo.(*catalog.MemoryRepo)

	ctx := context.Background()
	path, err := base.GetCareerPath(ctx, "path-backend")
	if err != nil {
		t.Fatalf("GetCareerPath: %v", err)
	}
	stale, _ := json.Marshal(path)
	mock.ExpectGet("catalog:career_path:path-backend").SetVal(string(stale))
	mock.ExpectGet("catalog:career_path:path-backend").SetVal(string(stale))

	recs := []recommendations.Recommendation{{ID: "rec-1", UserID: "u1", Type: recommendations.TypeCareerPath, TargetID: "path-backend"}}
	enr := app.RecommendationsService.Enricher

	before := enr.Enrich(ctx, recs)
	if _, ok := before[0].Target.(recommendations.CareerPathTarget); !ok {
		t.Fatalf("expected career path target before delete, got %#v", before[0].Target)
	}

	base.DeleteCareerPath("path-backend")

	after := enr.Enrich(ctx, recs)
	if after[0].Target != nil {
		t.Fatalf("expected absent target after delete, got %#v", after[0].Target)
	}
	if after[0].ID != "rec-1" {
		t.Fatalf("recommendation must survive enrichment, got %+v", after[0].Recommendation)
	}
}
