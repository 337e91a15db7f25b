package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "challengecards/pkg/errors"

	"github.com/gin-gonic/gin"
)

func TestRespondErrorMapsAppErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.NotFound("Card", nil), http.StatusNotFound, "Card not found"},
		{apperrors.Validation("invalid pack id"), http.StatusBadRequest, "invalid pack id"},
		{apperrors.Conflict("slug already in use"), http.StatusConflict, "slug already in use"},
		{errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		respondError(ctx, c.err)

		if w.Code != c.status {
			t.Errorf("respondError(%v): expected status %d, got %d", c.err, c.status, w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode response body: %v", err)
		}
		if body["error"] != c.message {
			t.Errorf("respondError(%v): expected message %q, got %q", c.err, c.message, body["error"])
		}
	}
}

func TestUploadFilename(t *testing.T) {
	name := uploadFilename("card", "Party Photo.PNG")

	if !strings.HasPrefix(name, "card-") {
		t.Errorf("Expected card- prefix, got %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("Expected lowercased extension, got %q", name)
	}
	if strings.Contains(name, "Party") {
		t.Errorf("Expected client filename to be replaced, got %q", name)
	}

	if uploadFilename("ad", "a.jpg") == uploadFilename("ad", "a.jpg") {
		t.Error("Expected generated filenames to be unique")
	}
}

func TestParseBoolQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/admin/cards?isActive=false", nil)

	value := parseBoolQuery(ctx, "isActive")
	if value == nil || *value != false {
		t.Errorf("Expected explicit false, got %v", value)
	}

	if parseBoolQuery(ctx, "missing") != nil {
		t.Error("Expected nil for an absent query param")
	}
}
