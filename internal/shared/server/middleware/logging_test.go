package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/shared/telemetry"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	telemetry.SetOutput(&buf)
	t.Cleanup(func() { telemetry.SetOutput(os.Stdout) })

	router := gin.New()
	router.Use(RequestID(), Auth("dev"), Logging())
	router.POST("/recommendations/:id/view", func(c *gin.Context) {
		c.Set("recommendationId", c.Param("id"))
		c.Set("stateTransition", "populated->updating")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/recommendations/rec-1/view", nil)
	req.Header.Set("X-Guest-Id", "guest1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || lines[0] == "" {
		t.Fatalf("expected log output")
	}
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "user_id", "recommendation_id", "duration_ms", "status", "state_transition", "route"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["user_id"] != "guest:guest1" {
		t.Fatalf("unexpected user_id: %v", payload["user_id"])
	}
	if payload["recommendation_id"] != "rec-1" {
		t.Fatalf("unexpected recommendation_id: %v", payload["recommendation_id"])
	}
	if payload["route"] != "/recommendations/:id/view" {
		t.Fatalf("unexpected route: %v", payload["route"])
	}
	if payload["state_transition"] != "populated->updating" {
		t.Fatalf("unexpected state_transition: %v", payload["state_transition"])
	}
}
