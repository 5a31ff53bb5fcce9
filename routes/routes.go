package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driverp-api/config"
	"driverp-api/controllers"
	"driverp-api/middleware"
	"driverp-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer services.Mailer) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, mailer)
	bikeController := controllers.NewBikeController(db)
	bookingController := controllers.NewBookingController(db)
	contentController := controllers.NewContentController(db)
	contactController := controllers.NewContactController(db, mailer)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(cfg.JWTSecret))
	{
		// Catalog
		api.GET("/buybikes/", bikeController.GetBikes)
		api.GET("/buybikes/:id/", bikeController.GetBike)

		// Bookings
		api.POST("/bookings/", bookingController.CreateBooking)
		api.GET("/bookings/:id/", bookingController.GetBooking)
		api.POST("/bookings/:id/confirm-payment/", bookingController.ConfirmPayment)

		// Marketing content
		api.GET("/hero/", contentController.GetHeroSections)
		api.GET("/info/", contentController.GetInfoSections)
		api.GET("/support/", contentController.GetSupportFeatures)
		api.GET("/homepage-banner/", contentController.GetHomepageBanner)
		api.GET("/last-section/", contentController.GetLastSection)
		api.GET("/testimonials/", contentController.GetTestimonials)
		api.GET("/trusted-section/", contentController.GetTrustedSection)
		api.GET("/faqs/", contentController.GetFAQs)
		api.GET("/about/", contentController.GetAboutSections)
		api.GET("/footer/", contentController.GetFooter)
		api.GET("/sellbike/", contentController.GetSellBikePage)
		api.GET("/login-content/", contentController.GetLoginPageContent)

		// Contact
		api.POST("/contact-form/", contactController.SubmitContact)
		api.GET("/contacts/", contactController.GetContacts)

		// Accounts
		api.POST("/login/", authController.Login)
		api.POST("/signup/", authController.Signup)
	}
}
