package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type achievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Year        int    `json:"year" binding:"required"`
	ImageURL    string `json:"image_url"`
}

// GetAchievements lists achievements newest year first.
func (a *API) GetAchievements(c *gin.Context) {
	list, err := a.achievements.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat daftar prestasi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": list})
}

// CreateAchievement inserts a new achievement.
func (a *API) CreateAchievement(c *gin.Context) {
	var req achievementRequest
	if !bindJSON(c, &req, "Judul dan tahun prestasi wajib diisi") {
		return
	}

	item, err := a.achievements.Create(service.AchievementInput{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAchievementTitleMissing):
			respondError(c, http.StatusBadRequest, "Judul prestasi wajib diisi")
		case errors.Is(err, service.ErrAchievementYearInvalid):
			respondError(c, http.StatusBadRequest, "Tahun prestasi tidak valid")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal menambah prestasi")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prestasi berhasil ditambahkan", "achievement": item})
}

// UpdateAchievement modifies an existing achievement.
func (a *API) UpdateAchievement(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID prestasi tidak valid")
		return
	}

	var req achievementRequest
	if !bindJSON(c, &req, "Judul dan tahun prestasi wajib diisi") {
		return
	}

	item, err := a.achievements.Update(id, service.AchievementInput{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAchievementNotFound):
			respondError(c, http.StatusNotFound, "Prestasi tidak ditemukan")
		case errors.Is(err, service.ErrAchievementTitleMissing):
			respondError(c, http.StatusBadRequest, "Judul prestasi wajib diisi")
		case errors.Is(err, service.ErrAchievementYearInvalid):
			respondError(c, http.StatusBadRequest, "Tahun prestasi tidak valid")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal memperbarui prestasi")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prestasi berhasil diperbarui", "achievement": item})
}

// DeleteAchievement removes an achievement after confirmation. Deleting a row
// that is already gone counts as success; the end state is identical.
func (a *API) DeleteAchievement(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID prestasi tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.achievements.Delete(id); err != nil && !errors.Is(err, service.ErrAchievementNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus prestasi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prestasi berhasil dihapus"})
}
