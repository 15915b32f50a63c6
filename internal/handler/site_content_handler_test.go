package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/db"
)

func saveLearningSection(t *testing.T, api *API, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/admin/api/learning-section", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SaveLearningSection(c)
	return w
}

func TestSaveLearningSectionTooManyTags(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := saveLearningSection(t, api, map[string]any{
		"title": "Pembelajaran",
		"tags":  []string{"Kreatif", "Mandiri", "Ceria", "Aktif", "Religius"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Maksimal 4 tag") {
		t.Fatalf("expected the tag cap message, got %s", w.Body.String())
	}
}

func TestSaveLearningSectionDuplicateTag(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := saveLearningSection(t, api, map[string]any{
		"title": "Pembelajaran",
		"tags":  []string{"Kreatif", "Kreatif"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Tag sudah ada") {
		t.Fatalf("expected the duplicate tag message, got %s", w.Body.String())
	}
}

func TestSaveLearningSectionUpsertsSingleton(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	first := saveLearningSection(t, api, map[string]any{"title": "Versi pertama"})
	if first.Code != http.StatusOK {
		t.Fatalf("first save failed with %d: %s", first.Code, first.Body.String())
	}

	second := saveLearningSection(t, api, map[string]any{"title": "Versi kedua", "tags": []string{"Kreatif"}})
	if second.Code != http.StatusOK {
		t.Fatalf("second save failed with %d: %s", second.Code, second.Body.String())
	}

	var rows []db.LearningSection
	if err := api.DB().Find(&rows).Error; err != nil {
		t.Fatalf("failed to load rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row after two saves, got %d", len(rows))
	}
	if rows[0].Title != "Versi kedua" {
		t.Fatalf("expected the second save to win, got %q", rows[0].Title)
	}
}

func TestGetAboutEmptyReturnsNull(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.GetAbout(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(resp["about"]) != "null" {
		t.Fatalf("expected null about content before first save, got %s", resp["about"])
	}
}
