package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

// GetContactMessages lists visitor messages newest first.
func (a *API) GetContactMessages(c *gin.Context) {
	list, err := a.contactMessages.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat pesan masuk")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": list})
}

type repliedRequest struct {
	Replied bool `json:"replied"`
}

// SetContactMessageReplied toggles the replied flag. Message content is never
// editable from the admin.
func (a *API) SetContactMessageReplied(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID pesan tidak valid")
		return
	}

	var req repliedRequest
	if !bindJSON(c, &req, "Status balasan tidak valid") {
		return
	}

	item, err := a.contactMessages.SetReplied(id, req.Replied)
	if err != nil {
		if errors.Is(err, service.ErrContactMessageNotFound) {
			respondError(c, http.StatusNotFound, "Pesan tidak ditemukan")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal memperbarui status balasan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status balasan berhasil diubah", "contact_message": item})
}

// DeleteContactMessage removes a message after confirmation.
func (a *API) DeleteContactMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID pesan tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.contactMessages.Delete(id); err != nil && !errors.Is(err, service.ErrContactMessageNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus pesan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pesan berhasil dihapus"})
}
