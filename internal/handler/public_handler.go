package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

// The public endpoints serve the visitor-facing site. They require no login
// and expose read-only views of the admin-managed content, plus the contact
// form submission.

// PublicHome bundles everything the landing page needs in one response.
func (a *API) PublicHome(c *gin.Context) {
	homepage, err := a.homepage.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat beranda")
		return
	}
	learning, err := a.learning.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat beranda")
		return
	}
	programs, err := a.programs.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat beranda")
		return
	}
	achievements, err := a.achievements.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat beranda")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"homepage":     homepage,
		"learning":     learning,
		"programs":     programs,
		"achievements": achievements,
	})
}

// PublicAbout returns the about page content with the active photo strip.
func (a *API) PublicAbout(c *gin.Context) {
	about, err := a.about.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat halaman tentang kami")
		return
	}
	photos, err := a.tentangKami.ListActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat halaman tentang kami")
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": about, "photos": photos})
}

// PublicContactInfo returns address and contact details for the footer and
// contact page.
func (a *API) PublicContactInfo(c *gin.Context) {
	info, err := a.contactInfo.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat informasi kontak")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_info": info})
}

// PublicPPDB returns the admission settings, including the registration form
// link.
func (a *API) PublicPPDB(c *gin.Context) {
	settings, err := a.ppdb.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat informasi PPDB")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ppdb": settings})
}

// PublicFacilities lists facilities for the visitor site.
func (a *API) PublicFacilities(c *gin.Context) {
	list, err := a.facilities.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat fasilitas")
		return
	}
	c.JSON(http.StatusOK, gin.H{"facilities": list})
}

// PublicNewsList lists articles newest first.
func (a *API) PublicNewsList(c *gin.Context) {
	list, err := a.news.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": list})
}

// PublicNewsDetail returns one article with its markdown rendered to
// sanitized HTML.
func (a *API) PublicNewsDetail(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID berita tidak valid")
		return
	}

	article, err := a.news.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			respondError(c, http.StatusNotFound, "Berita tidak ditemukan")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal memuat berita")
		return
	}

	html, err := service.RenderContent(article.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat berita")
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": article, "content_html": html})
}

// PublicGallery returns photos and videos for the gallery page.
func (a *API) PublicGallery(c *gin.Context) {
	photos, err := a.galleryPhotos.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat galeri")
		return
	}
	videos, err := a.galleryVideos.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat galeri")
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos, "videos": videos})
}

type contactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SubmitContactMessage stores a visitor message from the contact form.
func (a *API) SubmitContactMessage(c *gin.Context) {
	var req contactFormRequest
	if !bindJSON(c, &req, "Formulir kontak tidak valid") {
		return
	}

	msg, err := a.contactMessages.Create(service.ContactMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNameMissing):
			respondError(c, http.StatusBadRequest, "Nama wajib diisi")
		case errors.Is(err, service.ErrContactEmailInvalid):
			respondError(c, http.StatusBadRequest, "Alamat email tidak valid")
		case errors.Is(err, service.ErrContactMessageMissing):
			respondError(c, http.StatusBadRequest, "Pesan wajib diisi")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal mengirim pesan")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pesan berhasil dikirim", "contact_message": msg})
}
