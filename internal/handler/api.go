package handler

import (
	"github.com/sekolahku/internal/service"
	"github.com/sekolahku/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db              *gorm.DB
	auth            *service.AuthService
	media           *service.MediaService
	about           *service.AboutService
	contactInfo     *service.ContactInfoService
	homepage        *service.HomepageService
	ppdb            *service.PPDBService
	learning        *service.LearningSectionService
	achievements    *service.AchievementService
	facilities      *service.FacilityService
	programs        *service.ProgramService
	news            *service.NewsService
	galleryPhotos   *service.GalleryPhotoService
	galleryVideos   *service.GalleryVideoService
	tentangKami     *service.TentangKamiService
	contactMessages *service.ContactMessageService
	dashboard       *service.DashboardService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store storage.ObjectStore, jwtSecret string) *API {
	return &API{
		db:              gdb,
		auth:            service.NewAuthService(gdb, jwtSecret),
		media:           service.NewMediaService(store),
		about:           service.NewAboutService(gdb),
		contactInfo:     service.NewContactInfoService(gdb),
		homepage:        service.NewHomepageService(gdb),
		ppdb:            service.NewPPDBService(gdb),
		learning:        service.NewLearningSectionService(gdb),
		achievements:    service.NewAchievementService(gdb),
		facilities:      service.NewFacilityService(gdb),
		programs:        service.NewProgramService(gdb),
		news:            service.NewNewsService(gdb),
		galleryPhotos:   service.NewGalleryPhotoService(gdb),
		galleryVideos:   service.NewGalleryVideoService(gdb),
		tentangKami:     service.NewTentangKamiService(gdb),
		contactMessages: service.NewContactMessageService(gdb),
		dashboard:       service.NewDashboardService(gdb),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
