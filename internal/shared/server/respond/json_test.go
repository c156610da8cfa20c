package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", h)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/x", nil))
	return resp
}

func TestCreatedWritesPayload(t *testing.T) {
	resp := serve(func(c *gin.Context) { Created(c, gin.H{"id": "skill-1"}) })
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != "skill-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestNoContentHasEmptyBody(t *testing.T) {
	resp := serve(func(c *gin.Context) { NoContent(c) })
	if resp.Code != http.StatusNoContent || resp.Body.Len() != 0 {
		t.Fatalf("expected empty 204, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestErrorEnvelopeAborts(t *testing.T) {
	reached := false
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", func(c *gin.Context) {
		Error(c, http.StatusConflict, "conflict", "record already exists", nil)
	}, func(c *gin.Context) { reached = true })
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/x", nil))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	if reached {
		t.Fatalf("handlers after Error must not run")
	}
	var body ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "conflict" || body.Error.Message != "record already exists" || body.Error.Details != nil {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}
