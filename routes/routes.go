package routes

import (
	"net/http"
	"time"

	"akshara/handlers"
	"akshara/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers the informational content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/founders", hb.Content.GetFounders)
		api.GET("/programs", hb.Content.GetPrograms)
		api.GET("/events", hb.Content.GetEvents)
		api.GET("/blog", hb.Content.GetBlogPosts)
		api.GET("/testimonials", hb.Content.GetTestimonials)
		api.GET("/gallery", hb.Content.GetGallery)
		api.GET("/stats", hb.Content.GetStats)
		api.GET("/details", hb.Content.GetDetails)
		api.GET("/legal/:doc", hb.Content.GetLegalDoc)
	}
}

// RegisterVolunteerRoutes registers the volunteer application endpoint.
func RegisterVolunteerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/volunteer")
	{
		api.POST("/apply", hb.Volunteer.Apply)
	}
}

// RegisterDonationRoutes registers the donation intent endpoint.
func RegisterDonationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/donations")
	{
		api.POST("", hb.Donation.Create)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVolunteerRoutes(r, hb)
	RegisterDonationRoutes(r, hb)
	RegisterHealthRoute(r)
}
