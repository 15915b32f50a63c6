package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type galleryPhotoRequest struct {
	ImageURL      string `json:"image_url" binding:"required"`
	Caption       string `json:"caption"`
	OrderPosition int    `json:"order_position"`
}

// GetGalleryPhotos lists photos by position ascending.
func (a *API) GetGalleryPhotos(c *gin.Context) {
	list, err := a.galleryPhotos.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat galeri foto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": list})
}

// CreateGalleryPhoto inserts one photo.
func (a *API) CreateGalleryPhoto(c *gin.Context) {
	var req galleryPhotoRequest
	if !bindJSON(c, &req, "Gambar wajib diunggah") {
		return
	}

	item, err := a.galleryPhotos.Create(service.GalleryPhotoInput{
		ImageURL:      req.ImageURL,
		Caption:       req.Caption,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		if errors.Is(err, service.ErrGalleryImageMissing) {
			respondError(c, http.StatusBadRequest, "Gambar wajib diunggah")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menambah foto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto berhasil ditambahkan", "photo": item})
}

// UploadGalleryPhotos is the batch path: multipart files are uploaded to
// storage one by one, then each stored URL is persisted as a photo row.
// When the batch stops partway the response reports how many made it in.
func (a *API) UploadGalleryPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Tidak ada berkas yang diunggah")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondError(c, http.StatusBadRequest, "Tidak ada berkas yang diunggah")
		return
	}

	urls, uploadErr := a.media.UploadImages(c.Request.Context(), files, "gallery", "gallery")

	inputs := make([]service.GalleryPhotoInput, 0, len(urls))
	for _, url := range urls {
		inputs = append(inputs, service.GalleryPhotoInput{ImageURL: url})
	}
	created, createErr := a.galleryPhotos.CreateBatch(inputs)

	if uploadErr != nil || createErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Sebagian unggahan gagal; periksa kembali galeri",
			"created": len(created),
			"total":   len(files),
			"photos":  created,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Semua foto berhasil diunggah",
		"created": len(created),
		"photos":  created,
	})
}

// UpdateGalleryPhoto modifies one photo.
func (a *API) UpdateGalleryPhoto(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID foto tidak valid")
		return
	}

	var req galleryPhotoRequest
	if !bindJSON(c, &req, "Gambar wajib diunggah") {
		return
	}

	item, err := a.galleryPhotos.Update(id, service.GalleryPhotoInput{
		ImageURL:      req.ImageURL,
		Caption:       req.Caption,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryPhotoNotFound):
			respondError(c, http.StatusNotFound, "Foto tidak ditemukan")
		case errors.Is(err, service.ErrGalleryImageMissing):
			respondError(c, http.StatusBadRequest, "Gambar wajib diunggah")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal memperbarui foto")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto berhasil diperbarui", "photo": item})
}

// DeleteGalleryPhoto removes one photo after confirmation.
func (a *API) DeleteGalleryPhoto(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID foto tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.galleryPhotos.Delete(id); err != nil && !errors.Is(err, service.ErrGalleryPhotoNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus foto")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto berhasil dihapus"})
}

type galleryVideoRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	VideoURL      string `json:"video_url"`
	EmbedURL      string `json:"embed_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	OrderPosition int    `json:"order_position"`
}

// GetGalleryVideos lists videos by position ascending.
func (a *API) GetGalleryVideos(c *gin.Context) {
	list, err := a.galleryVideos.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat galeri video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": list})
}

// CreateGalleryVideo inserts a new video in file or embed mode.
func (a *API) CreateGalleryVideo(c *gin.Context) {
	var req galleryVideoRequest
	if !bindJSON(c, &req, "Judul video wajib diisi") {
		return
	}

	item, err := a.galleryVideos.Create(service.GalleryVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		EmbedURL:      req.EmbedURL,
		ThumbnailURL:  req.ThumbnailURL,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		respondVideoError(c, err, "Gagal menambah video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video berhasil ditambahkan", "video": item})
}

// UpdateGalleryVideo modifies an existing video.
func (a *API) UpdateGalleryVideo(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID video tidak valid")
		return
	}

	var req galleryVideoRequest
	if !bindJSON(c, &req, "Judul video wajib diisi") {
		return
	}

	item, err := a.galleryVideos.Update(id, service.GalleryVideoInput{
		Title:         req.Title,
		Description:   req.Description,
		VideoURL:      req.VideoURL,
		EmbedURL:      req.EmbedURL,
		ThumbnailURL:  req.ThumbnailURL,
		OrderPosition: req.OrderPosition,
	})
	if err != nil {
		respondVideoError(c, err, "Gagal memperbarui video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video berhasil diperbarui", "video": item})
}

// DeleteGalleryVideo removes a video after confirmation.
func (a *API) DeleteGalleryVideo(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID video tidak valid")
		return
	}
	if !confirmDelete(c) {
		return
	}

	if err := a.galleryVideos.Delete(id); err != nil && !errors.Is(err, service.ErrGalleryVideoNotFound) {
		respondError(c, http.StatusInternalServerError, "Gagal menghapus video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video berhasil dihapus"})
}

func respondVideoError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrGalleryVideoNotFound):
		respondError(c, http.StatusNotFound, "Video tidak ditemukan")
	case errors.Is(err, service.ErrVideoTitleMissing):
		respondError(c, http.StatusBadRequest, "Judul video wajib diisi")
	case errors.Is(err, service.ErrVideoSourceMissing):
		respondError(c, http.StatusBadRequest, "Unggah berkas video atau isi link embed")
	case errors.Is(err, service.ErrVideoSourceConflicting):
		respondError(c, http.StatusBadRequest, "Pilih salah satu: berkas video atau link embed")
	case errors.Is(err, service.ErrVideoEmbedInvalid):
		respondError(c, http.StatusBadRequest, "Link embed tidak didukung")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
