package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type facilityRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	Icon          string `json:"icon"`
	OrderPosition int    `json:"order_position"`
}

// GetFacilities lists facilities by position ascending.
func (a *API) GetFacilities(c *gin.Context) {
	list, err := a.facilities.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat daftar fasilitas")
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": list})
}

// CreateFacility inserts a new facility.
func (a *API) CreateFacility(c *gin.Context) {
	var req facilityRequest
	if !bindJSON(c, &req, "Nama fasilitas wajib diisi") {
		return
	}

	item, err := a.facilities.Create(service.FacilityInput{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Icon:          req.Icon,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		if errors.Is(err, service.ErrFacilityNameMissing) {
			respondError(c, http.StatusBadRequest, "Nama fasilitas wajib diisi")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menambah fasilitas")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fasilitas berhasil ditambahkan", "facility": item})
}

// UpdateFacility modifies an existing facility.
func (a *API) UpdateFacility(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID fasilitas tidak valid")
		return
	}

	var req facilityRequest
	if !bindJSON(c, &req, "Nama fasilitas wajib diisi") {
		return
	}

	item, err := a.facilities.Update(id, service.FacilityInput{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Icon:          req.Icon,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFacilityNotFound):
			respondError(c, http.StatusNotFound, "Fasilitas tidak ditemukan")
		case errors.Is(err, service.ErrFacilityNameMissing):
			respondError(c, http.StatusBadRequest, "Nama fasilitas wajib diisi")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal memperbarui fasilitas")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fasilitas berhasil diperbarui", "facility": item})
}

// DeleteFacility removes a facility after confirmation.
func (a *API) DeleteFacility(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID fasilitas tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.facilities.Delete(id); err != nil && !errors.Is(err, service.ErrFacilityNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus fasilitas")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fasilitas berhasil dihapus"})
}
