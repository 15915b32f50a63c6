package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type newsRequest struct {
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content" binding:"required"`
	ThumbnailURL  string `json:"thumbnail_url"`
	PublishedDate string `json:"published_date"`
	Author        string `json:"author"`
}

func (r newsRequest) toInput() (service.NewsInput, error) {
	input := service.NewsInput{
		Title:        r.Title,
		Content:      r.Content,
		ThumbnailURL: r.ThumbnailURL,
		Author:       r.Author,
	}
	if r.PublishedDate != "" {
		parsed, err := time.Parse("2006-01-02", r.PublishedDate)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, r.PublishedDate)
			if err != nil {
				return input, err
			}
		}
		input.PublishedDate = parsed
	}
	return input, nil
}

// GetNews lists articles newest published date first.
func (a *API) GetNews(c *gin.Context) {
	list, err := a.news.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat daftar berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": list})
}

// CreateNews inserts a new article.
func (a *API) CreateNews(c *gin.Context) {
	var req newsRequest
	if !bindJSON(c, &req, "Judul dan isi berita wajib diisi") {
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Format tanggal publikasi tidak valid")
		return
	}

	item, err := a.news.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNewsTitleMissing), errors.Is(err, service.ErrNewsContentMissing):
			respondError(c, http.StatusBadRequest, "Judul dan isi berita wajib diisi")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal menambah berita")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berita berhasil ditambahkan", "news": item})
}

// UpdateNews modifies an existing article.
func (a *API) UpdateNews(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID berita tidak valid")
		return
	}

	var req newsRequest
	if !bindJSON(c, &req, "Judul dan isi berita wajib diisi") {
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Format tanggal publikasi tidak valid")
		return
	}

	item, err := a.news.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNewsNotFound):
			respondError(c, http.StatusNotFound, "Berita tidak ditemukan")
		case errors.Is(err, service.ErrNewsTitleMissing), errors.Is(err, service.ErrNewsContentMissing):
			respondError(c, http.StatusBadRequest, "Judul dan isi berita wajib diisi")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal memperbarui berita")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berita berhasil diperbarui", "news": item})
}

// DeleteNews removes an article after confirmation.
func (a *API) DeleteNews(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID berita tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.news.Delete(id); err != nil && !errors.Is(err, service.ErrNewsNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berita berhasil dihapus"})
}

type newsPreviewRequest struct {
	Content string `json:"content"`
}

// PreviewNews renders markdown to sanitized HTML for the editor preview pane.
func (a *API) PreviewNews(c *gin.Context) {
	var req newsPreviewRequest
	if !bindJSON(c, &req, "Isi berita tidak valid") {
		return
	}

	html, err := service.RenderContent(req.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal merender berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": html})
}
