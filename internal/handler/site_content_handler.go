package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/service"
)

type aboutRequest struct {
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
	Description string `json:"description"`
}

// GetAbout returns the about-us singleton, or null when nothing was saved yet.
func (a *API) GetAbout(c *gin.Context) {
	row, err := a.about.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat profil sekolah")
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": row})
}

// SaveAbout upserts the about-us singleton.
func (a *API) SaveAbout(c *gin.Context) {
	var req aboutRequest
	if !bindJSON(c, &req, "Data profil tidak valid") {
		return
	}

	row, err := a.about.Save(service.AboutInput{
		Vision:      req.Vision,
		Mission:     req.Mission,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan profil sekolah")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profil sekolah berhasil disimpan", "about": row})
}

type contactInfoRequest struct {
	AddressLine1          string `json:"address_line1"`
	AddressLine2          string `json:"address_line2"`
	Phone                 string `json:"phone"`
	Email1                string `json:"email1"`
	Email2                string `json:"email2"`
	OperatingHours        string `json:"operating_hours"`
	OperatingHoursSubtext string `json:"operating_hours_subtext"`
}

// GetContactInfo returns the contact info singleton.
func (a *API) GetContactInfo(c *gin.Context) {
	row, err := a.contactInfo.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat info kontak")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_info": row})
}

// SaveContactInfo upserts the contact info singleton.
func (a *API) SaveContactInfo(c *gin.Context) {
	var req contactInfoRequest
	if !bindJSON(c, &req, "Data kontak tidak valid") {
		return
	}

	row, err := a.contactInfo.Save(service.ContactInfoInput{
		AddressLine1:          req.AddressLine1,
		AddressLine2:          req.AddressLine2,
		Phone:                 req.Phone,
		Email1:                req.Email1,
		Email2:                req.Email2,
		OperatingHours:        req.OperatingHours,
		OperatingHoursSubtext: req.OperatingHoursSubtext,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan info kontak")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Info kontak berhasil disimpan", "contact_info": row})
}

type homepageRequest struct {
	WelcomeTitle       string   `json:"welcome_title"`
	WelcomeDescription string   `json:"welcome_description"`
	HeroImages         []string `json:"hero_images"`
}

// GetHomepage returns the homepage settings singleton.
func (a *API) GetHomepage(c *gin.Context) {
	row, err := a.homepage.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat pengaturan beranda")
		return
	}
	c.JSON(http.StatusOK, gin.H{"homepage": row})
}

// SaveHomepage upserts the homepage settings singleton.
func (a *API) SaveHomepage(c *gin.Context) {
	var req homepageRequest
	if !bindJSON(c, &req, "Data beranda tidak valid") {
		return
	}

	row, err := a.homepage.Save(service.HomepageInput{
		WelcomeTitle:       req.WelcomeTitle,
		WelcomeDescription: req.WelcomeDescription,
		HeroImages:         req.HeroImages,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan pengaturan beranda")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pengaturan beranda berhasil disimpan", "homepage": row})
}

type ppdbRequest struct {
	GoogleFormURL string `json:"google_form_url" binding:"required"`
}

// GetPPDB returns the admission settings singleton.
func (a *API) GetPPDB(c *gin.Context) {
	row, err := a.ppdb.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat pengaturan PPDB")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ppdb": row})
}

// SavePPDB upserts the admission settings singleton.
func (a *API) SavePPDB(c *gin.Context) {
	var req ppdbRequest
	if !bindJSON(c, &req, "Link formulir wajib diisi") {
		return
	}

	row, err := a.ppdb.Save(req.GoogleFormURL)
	if err != nil {
		if errors.Is(err, service.ErrPPDBInvalidURL) {
			respondError(c, http.StatusBadRequest, "Link formulir tidak valid")
			return
		}
		respondError(c, http.StatusInternalServerError, "Gagal menyimpan pengaturan PPDB")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pengaturan PPDB berhasil disimpan", "ppdb": row})
}

type learningSectionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// GetLearningSection returns the learning section singleton.
func (a *API) GetLearningSection(c *gin.Context) {
	row, err := a.learning.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Gagal memuat bagian pembelajaran")
		return
	}
	c.JSON(http.StatusOK, gin.H{"learning_section": row})
}

// SaveLearningSection upserts the learning section singleton. Cap and
// duplicate violations each get their own message so the dialog can explain
// the rejection.
func (a *API) SaveLearningSection(c *gin.Context) {
	var req learningSectionRequest
	if !bindJSON(c, &req, "Data pembelajaran tidak valid") {
		return
	}

	row, err := a.learning.Save(service.LearningSectionInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Images:      req.Images,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLearningTagLimit):
			respondError(c, http.StatusBadRequest, "Maksimal 4 tag")
		case errors.Is(err, service.ErrLearningTagDuplicate):
			respondError(c, http.StatusBadRequest, "Tag sudah ada")
		case errors.Is(err, service.ErrLearningImageLimit):
			respondError(c, http.StatusBadRequest, "Maksimal 2 gambar")
		default:
			respondError(c, http.StatusInternalServerError, "Gagal menyimpan bagian pembelajaran")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bagian pembelajaran berhasil disimpan", "learning_section": row})
}
