package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type tentangKamiRequest struct {
	ImageURL      string `json:"image_url" binding:"required"`
	Title         string `json:"title"`
	Caption       string `json:"caption"`
	OrderPosition int    `json:"order_position"`
	IsActive      *bool  `json:"is_active"`
}

// GetTentangKamiPhotos lists about-page photos, hidden ones included.
func (a *API) GetTentangKamiPhotos(c *gin.Context) {
	list, err := a.tentangKami.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat foto tentang kami")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": list})
}

// CreateTentangKamiPhoto inserts a new photo. New photos default to visible.
func (a *API) CreateTentangKamiPhoto(c *gin.Context) {
	var req tentangKamiRequest
	if !bindJSON(c, &req, "Gambar wajib diunggah") {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	item, err := a.tentangKami.Create(service.TentangKamiInput{
		ImageURL:      req.ImageURL,
		Title:         req.Title,
		Caption:       req.Caption,
		OrderPosition: req.OrderPosition,
		IsActive:      active,
	})
	if err != nil {
		if errors.Is(err, service.ErrTentangKamiImageMissing) {
			respondError(c, http.StatusBadRequest, "Gambar wajib diunggah")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menambah foto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto berhasil ditambahkan", "photo": item})
}

// UpdateTentangKamiPhoto modifies an existing photo.
func (a *API) UpdateTentangKamiPhoto(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID foto tidak valid")
		return
	}

	var req tentangKamiRequest
	if !bindJSON(c, &req, "Gambar wajib diunggah") {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	item, err := a.tentangKami.Update(id, service.TentangKamiInput{
		ImageURL:      req.ImageURL,
		Title:         req.Title,
		Caption:       req.Caption,
		OrderPosition: req.OrderPosition,
		IsActive:      active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTentangKamiNotFound):
			respondError(c, http.StatusNotFound, "Foto tidak ditemukan")
		case errors.Is(err, service.ErrTentangKamiImageMissing):
			respondError(c, http.StatusBadRequest, "Gambar wajib diunggah")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal memperbarui foto")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto berhasil diperbarui", "photo": item})
}

type toggleActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// ToggleTentangKamiPhoto flips a photo's visibility without touching the
// other fields.
func (a *API) ToggleTentangKamiPhoto(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID foto tidak valid")
		return
	}

	var req toggleActiveRequest
	if !bindJSON(c, &req, "Status tampil tidak valid") {
		return
	}

	item, err := a.tentangKami.SetActive(id, req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrTentangKamiNotFound) {
			respondError(c, http.StatusNotFound, "Foto tidak ditemukan")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal mengubah status tampil")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status tampil berhasil diubah", "photo": item})
}

// DeleteTentangKamiPhoto removes a photo after confirmation.
func (a *API) DeleteTentangKamiPhoto(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID foto tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.tentangKami.Delete(id); err != nil && !errors.Is(err, service.ErrTentangKamiNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus foto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto berhasil dihapus"})
}
