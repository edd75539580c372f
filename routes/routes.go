package routes

import (
	"howdohome-api/controllers"
	"howdohome-api/middleware"
	"howdohome-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes (marketing site)
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "howdohome API is running",
				})
			})

			// Consultation form
			public.POST("/consultations", controllers.CreateConsultation)

			// Published content
			public.GET("/news", controllers.GetPublishedNews)
			public.GET("/news/:id", controllers.GetNewsItem)
			public.GET("/journals", controllers.GetPublishedJournals)
			public.GET("/journals/:id", controllers.GetJournal)
			public.GET("/gallery", controllers.GetPublishedGalleryProjects)
			public.GET("/portfolios", controllers.GetPortfolios)
			public.GET("/process-steps", controllers.GetProcessSteps)
			public.GET("/faqs", controllers.GetFAQs)
			public.GET("/categories", controllers.GetCategories)
			public.GET("/settings", controllers.GetSiteSettings)
			public.GET("/main-sections", controllers.GetMainPageSections)
		}

		// Admin routes (require authentication + admin role)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			admin.GET("/profile", controllers.GetProfile)
			admin.PUT("/change-password", controllers.ChangePassword)
			admin.GET("/dashboard/stats", controllers.GetDashboardStats)

			// 상담 신청 관리
			consultations := admin.Group("/consultations")
			{
				consultations.GET("", controllers.GetConsultations)
				consultations.GET("/export", controllers.ExportConsultations)
				consultations.GET("/:id", controllers.GetConsultation)
				consultations.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateConsultation)
				consultations.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteConsultation)
			}

			// 뉴스 관리
			news := admin.Group("/news", middleware.RequireRole(models.RoleAdmin))
			{
				news.GET("", controllers.GetAllNews)
				news.POST("", controllers.CreateNews)
				news.PUT("/:id", controllers.UpdateNews)
				news.POST("/:id/toggle-published", controllers.ToggleNewsPublished)
				news.DELETE("/:id", controllers.DeleteNews)
			}

			// 시공 일지 관리
			journals := admin.Group("/journals", middleware.RequireRole(models.RoleAdmin))
			{
				journals.GET("", controllers.GetAllJournals)
				journals.POST("", controllers.CreateJournal)
				journals.PUT("/:id", controllers.UpdateJournal)
				journals.DELETE("/:id", controllers.DeleteJournal)
				journals.POST("/:id/images", controllers.AddJournalImage)
				journals.PUT("/:id/images/reorder", controllers.ReorderJournalImages)
				journals.DELETE("/:id/images/:image_id", controllers.DeleteJournalImage)
			}

			// 갤러리 관리
			gallery := admin.Group("/gallery", middleware.RequireRole(models.RoleAdmin))
			{
				gallery.GET("", controllers.GetAllGalleryProjects)
				gallery.POST("", controllers.CreateGalleryProject)
				gallery.PUT("/:id", controllers.UpdateGalleryProject)
				gallery.DELETE("/:id", controllers.DeleteGalleryProject)
				gallery.POST("/:id/images", controllers.AddGalleryImage)
				gallery.DELETE("/:id/images/:image_id", controllers.DeleteGalleryImage)
			}

			// 시공 실적 / 프로세스 / FAQ / 카테고리
			content := admin.Group("", middleware.RequireRole(models.RoleAdmin))
			{
				content.POST("/portfolios", controllers.CreatePortfolio)
				content.PUT("/portfolios/:id", controllers.UpdatePortfolio)
				content.DELETE("/portfolios/:id", controllers.DeletePortfolio)

				content.GET("/process-steps", controllers.GetAllProcessSteps)
				content.POST("/process-steps", controllers.CreateProcessStep)
				content.PUT("/process-steps/:id", controllers.UpdateProcessStep)
				content.DELETE("/process-steps/:id", controllers.DeleteProcessStep)

				content.GET("/faqs", controllers.GetAllFAQs)
				content.POST("/faqs", controllers.CreateFAQ)
				content.PUT("/faqs/:id", controllers.UpdateFAQ)
				content.DELETE("/faqs/:id", controllers.DeleteFAQ)

				content.POST("/categories", controllers.CreateCategory)
				content.DELETE("/categories/:id", controllers.DeleteCategory)

				content.PUT("/settings", controllers.UpsertSiteSettings)

				content.GET("/main-sections", controllers.GetAllMainPageSections)
				content.PUT("/main-sections/:key", controllers.UpdateMainPageSection)
			}

			// 미디어 라이브러리
			media := admin.Group("/media", middleware.RequireRole(models.RoleAdmin))
			{
				media.GET("", controllers.GetMedia)
				media.GET("/storage", controllers.ListMediaStorage)
				media.POST("/upload", controllers.UploadMedia)
				media.DELETE("/:id", controllers.DeleteMedia)
			}
		}
	}
}
