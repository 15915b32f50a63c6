package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type programRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	IconURL       string `json:"icon_url"`
	ImageURL      string `json:"image_url"`
	Category      string `json:"category"`
	OrderPosition int    `json:"order_position"`
}

// GetPrograms lists programs by position ascending; the response carries the
// remaining quota so the client can block the create dialog at the cap.
func (a *API) GetPrograms(c *gin.Context) {
	list, err := a.programs.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat daftar program")
		return
	}

	remaining := 4 - len(list)
	if remaining < 0 {
		remaining = 0
	}
	c.JSON(http.StatusOK, gin.H{"programs": list, "remaining_slots": remaining})
}

// CreateProgram inserts a new program unless the cap is reached.
func (a *API) CreateProgram(c *gin.Context) {
	var req programRequest
	if !bindJSON(c, &req, "Nama program wajib diisi") {
		return
	}

	item, err := a.programs.Create(service.ProgramInput{
		Name:          req.Name,
		Description:   req.Description,
		IconURL:       req.IconURL,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgramLimitReached):
			respondError(c, http.StatusBadRequest, "Maksimal 4 program; hapus salah satu terlebih dahulu")
		case errors.Is(err, service.ErrProgramNameMissing):
			respondError(c, http.StatusBadRequest, "Nama program wajib diisi")
		case errors.Is(err, service.ErrProgramCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Kategori program tidak valid")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal menambah program")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program berhasil ditambahkan", "program": item})
}

// UpdateProgram modifies an existing program.
func (a *API) UpdateProgram(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID program tidak valid")
		return
	}

	var req programRequest
	if !bindJSON(c, &req, "Nama program wajib diisi") {
		return
	}

	item, err := a.programs.Update(id, service.ProgramInput{
		Name:          req.Name,
		Description:   req.Description,
		IconURL:       req.IconURL,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProgramNotFound):
			respondError(c, http.StatusNotFound, "Program tidak ditemukan")
		case errors.Is(err, service.ErrProgramNameMissing):
			respondError(c, http.StatusBadRequest, "Nama program wajib diisi")
		case errors.Is(err, service.ErrProgramCategoryInvalid):
			respondError(c, http.StatusBadRequest, "Kategori program tidak valid")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal memperbarui program")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program berhasil diperbarui", "program": item})
}

// DeleteProgram removes a program after confirmation.
func (a *API) DeleteProgram(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID program tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.programs.Delete(id); err != nil && !errors.Is(err, service.ErrProgramNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus program")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program berhasil dihapus"})
}
