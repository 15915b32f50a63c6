package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/db"
)

func submitContact(t *testing.T, api *API, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.SubmitContactMessage(c)
	return w
}

func TestSubmitContactMessage(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := submitContact(t, api, map[string]any{
		"name":    "Budi Santoso",
		"email":   "budi@example.com",
		"phone":   "081234567890",
		"message": "Kapan pendaftaran dibuka?",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var rows []db.ContactMessage
	if err := api.DB().Find(&rows).Error; err != nil {
		t.Fatalf("failed to load messages: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(rows))
	}
	if rows[0].Replied {
		t.Fatal("new messages must start unreplied")
	}
}

func TestSubmitContactMessageBadEmail(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := submitContact(t, api, map[string]any{
		"name":    "Budi Santoso",
		"email":   "bukan-email",
		"message": "Halo",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	api.DB().Model(&db.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected nothing stored, got %d rows", count)
	}
}

func TestPublicNewsDetailRendersSanitizedHTML(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	article := db.News{
		Title:         "Lomba Sains",
		Content:       "# Hasil Lomba\n\nSelamat!<script>alert('x')</script>",
		PublishedDate: time.Now(),
	}
	if err := api.DB().Create(&article).Error; err != nil {
		t.Fatalf("failed to seed article: %v", err)
	}

	id := strconv.Itoa(int(article.ID))
	req := httptest.NewRequest(http.MethodGet, "/api/news/"+id, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: id}}

	api.PublicNewsDetail(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ContentHTML string `json:"content_html"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.ContentHTML, "<h1") {
		t.Fatalf("expected rendered heading, got %s", resp.ContentHTML)
	}
	if strings.Contains(resp.ContentHTML, "<script") {
		t.Fatalf("expected scripts to be stripped, got %s", resp.ContentHTML)
	}
}

func TestPublicNewsDetailMissing(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/news/42", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "42"}}

	api.PublicNewsDetail(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestPublicAboutOnlyActivePhotos(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	photos := []db.TentangKamiPhoto{
		{ImageURL: "https://cdn.example.com/a.webp", IsActive: true},
		{ImageURL: "https://cdn.example.com/b.webp", IsActive: false},
	}
	for i := range photos {
		if err := api.DB().Create(&photos[i]).Error; err != nil {
			t.Fatalf("failed to seed photo: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/about", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.PublicAbout(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Photos []db.TentangKamiPhoto `json:"photos"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Photos) != 1 {
		t.Fatalf("expected only the active photo, got %d", len(resp.Photos))
	}
}
