package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sekolahku/internal/config"
	"github.com/sekolahku/internal/handler"
)

// Setup wires the Gin engine: session middleware, the public read API, the
// login endpoints and the authenticated admin API.
func Setup(cfg *config.AppConfig, api *handler.API) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("sekolahku_session", store))

	// Locally stored uploads are served straight from disk; with the OSS
	// driver the bucket serves them instead.
	if cfg.StorageDriver == "local" {
		r.Static(cfg.UploadURLPath, cfg.UploadDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Visitor-facing read API plus the contact form.
	public := r.Group("/api")
	{
		public.GET("/home", api.PublicHome)
		public.GET("/about", api.PublicAbout)
		public.GET("/contact-info", api.PublicContactInfo)
		public.GET("/ppdb", api.PublicPPDB)
		public.GET("/facilities", api.PublicFacilities)
		public.GET("/news", api.PublicNewsList)
		public.GET("/news/:id", api.PublicNewsDetail)
		public.GET("/gallery", api.PublicGallery)
		public.POST("/contact", api.SubmitContactMessage)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("/api")
		auth.Use(api.AuthRequired())
		{
			auth.GET("/me", api.Me)
			auth.GET("/dashboard", api.GetDashboard)

			auth.GET("/about", api.GetAbout)
			auth.PUT("/about", api.SaveAbout)
			auth.GET("/contact-info", api.GetContactInfo)
			auth.PUT("/contact-info", api.SaveContactInfo)
			auth.GET("/homepage", api.GetHomepage)
			auth.PUT("/homepage", api.SaveHomepage)
			auth.GET("/ppdb", api.GetPPDB)
			auth.PUT("/ppdb", api.SavePPDB)
			auth.GET("/learning-section", api.GetLearningSection)
			auth.PUT("/learning-section", api.SaveLearningSection)

			auth.GET("/achievements", api.GetAchievements)
			auth.POST("/achievements", api.CreateAchievement)
			auth.PUT("/achievements/:id", api.UpdateAchievement)
			auth.DELETE("/achievements/:id", api.DeleteAchievement)

			auth.GET("/facilities", api.GetFacilities)
			auth.POST("/facilities", api.CreateFacility)
			auth.PUT("/facilities/:id", api.UpdateFacility)
			auth.DELETE("/facilities/:id", api.DeleteFacility)

			auth.GET("/programs", api.GetPrograms)
			auth.POST("/programs", api.CreateProgram)
			auth.PUT("/programs/:id", api.UpdateProgram)
			auth.DELETE("/programs/:id", api.DeleteProgram)

			auth.GET("/news", api.GetNews)
			auth.POST("/news", api.CreateNews)
			auth.PUT("/news/:id", api.UpdateNews)
			auth.DELETE("/news/:id", api.DeleteNews)
			auth.POST("/news/preview", api.PreviewNews)

			auth.GET("/gallery/photos", api.GetGalleryPhotos)
			auth.POST("/gallery/photos", api.CreateGalleryPhoto)
			auth.POST("/gallery/photos/batch", api.UploadGalleryPhotos)
			auth.PUT("/gallery/photos/:id", api.UpdateGalleryPhoto)
			auth.DELETE("/gallery/photos/:id", api.DeleteGalleryPhoto)

			auth.GET("/gallery/videos", api.GetGalleryVideos)
			auth.POST("/gallery/videos", api.CreateGalleryVideo)
			auth.PUT("/gallery/videos/:id", api.UpdateGalleryVideo)
			auth.DELETE("/gallery/videos/:id", api.DeleteGalleryVideo)

			auth.GET("/tentang-kami/photos", api.GetTentangKamiPhotos)
			auth.POST("/tentang-kami/photos", api.CreateTentangKamiPhoto)
			auth.PUT("/tentang-kami/photos/:id", api.UpdateTentangKamiPhoto)
			auth.PUT("/tentang-kami/photos/:id/active", api.ToggleTentangKamiPhoto)
			auth.DELETE("/tentang-kami/photos/:id", api.DeleteTentangKamiPhoto)

			auth.GET("/contact-messages", api.GetContactMessages)
			auth.PUT("/contact-messages/:id/replied", api.SetContactMessageReplied)
			auth.DELETE("/contact-messages/:id", api.DeleteContactMessage)

			auth.POST("/upload/image", api.UploadImage)
			auth.POST("/upload/video", api.UploadVideo)
		}
	}

	return r
}
