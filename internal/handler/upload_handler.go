package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

// uploadTarget reads the optional folder/tag form fields that decide where
// the object lands and how its key is prefixed.
func uploadTarget(c *gin.Context, defaultFolder, defaultTag string) (string, string) {
	folder := c.PostForm("folder")
	if folder == "" {
		folder = defaultFolder
	}
	tag := c.PostForm("tag")
	if tag == "" {
		tag = defaultTag
	}
	return folder, tag
}

func respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFileMissing):
		respondError(c, http.StatusBadRequest, "Tidak ada berkas yang diunggah")
	case errors.Is(err, service.ErrFileTooLarge):
		respondError(c, http.StatusBadRequest, "Ukuran berkas melebihi batas")
	case errors.Is(err, service.ErrFileNotImage):
		respondError(c, http.StatusBadRequest, "Berkas harus berupa gambar")
	case errors.Is(err, service.ErrFileNotVideo):
		respondError(c, http.StatusBadRequest, "Berkas harus berupa video")
	default:
		respondError(c, http.StatusInternalServerError, "Gagal mengunggah berkas")
	}
}

// UploadImage stores a single image and returns its public URL. The entity
// that wants the URL saves it in a separate request.
func (a *API) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Tidak ada gambar yang diunggah")
		return
	}

	folder, tag := uploadTarget(c, "images", "img")
	url, err := a.media.UploadImage(c.Request.Context(), fh, folder, tag)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gambar berhasil diunggah", "url": url})
}

// UploadVideo stores a single video file and returns its public URL.
func (a *API) UploadVideo(c *gin.Context) {
	fh, err := c.FormFile("video")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Tidak ada video yang diunggah")
		return
	}

	folder, tag := uploadTarget(c, "videos", "vid")
	url, err := a.media.UploadVideo(c.Request.Context(), fh, folder, tag)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video berhasil diunggah", "url": url})
}
