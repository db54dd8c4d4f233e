package routes

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/changil/changilweb-server/internal/config"
	"github.com/changil/changilweb-server/internal/handlers"
	"github.com/changil/changilweb-server/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds everything the router wires up
type HandlerDependencies struct {
	Logger    *slog.Logger
	AdminAuth gin.HandlerFunc
	// HealthCheck reports whether the database is reachable; nil skips it.
	HealthCheck func(ctx context.Context) error

	SermonHandler          *handlers.SermonHandler
	BulletinHandler        *handlers.BulletinHandler
	EventHandler           *handlers.EventHandler
	GalleryHandler         *handlers.GalleryHandler
	PopupHandler           *handlers.PopupHandler
	PastorScheduleHandler  *handlers.PastorScheduleHandler
	DonationReceiptHandler *handlers.DonationReceiptHandler
	AuthHandler            *handlers.AuthHandler
	SiteHandler            *handlers.SiteHandler
	UploadHandler          *handlers.UploadHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(cfg, deps.Logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(cfg))
	router.NoRoute(middleware.NoRoute)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Changilweb API"})
	})

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "ERROR", "message": "Database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "API is healthy"})
	})

	admin := deps.AdminAuth

	auth := api.Group("/auth")
	{
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/logout", deps.AuthHandler.Logout)
		auth.GET("/session", deps.AuthHandler.Session)
	}

	site := api.Group("/site")
	{
		site.GET("/resolve", deps.SiteHandler.Resolve)
		site.GET("/config", deps.SiteHandler.Config)
	}

	sermons := api.Group("/sermons")
	{
		sermons.GET("", deps.SermonHandler.List)
		sermons.GET("/type/:type", deps.SermonHandler.LatestByType)
		sermons.GET("/:id", deps.SermonHandler.Get)
		sermons.POST("", admin, deps.SermonHandler.Create)
		sermons.PUT("/:id", admin, deps.SermonHandler.Update)
		sermons.DELETE("/:id", admin, deps.SermonHandler.Delete)
	}

	bulletins := api.Group("/bulletins")
	{
		bulletins.GET("", deps.BulletinHandler.List)
		bulletins.GET("/latest", deps.BulletinHandler.Latest)
		bulletins.GET("/:id", deps.BulletinHandler.Get)
		bulletins.POST("/:id/view", deps.BulletinHandler.View)
		bulletins.POST("", admin, deps.BulletinHandler.Create)
		bulletins.PUT("/:id", admin, deps.BulletinHandler.Update)
		bulletins.DELETE("/:id", admin, deps.BulletinHandler.Delete)
	}

	events := api.Group("/events")
	{
		events.GET("", deps.EventHandler.List)
		events.GET("/:id", deps.EventHandler.Get)
		events.POST("", admin, deps.EventHandler.Create)
		events.PUT("/:id", admin, deps.EventHandler.Update)
		events.DELETE("/:id", admin, deps.EventHandler.Delete)
	}

	gallery := api.Group("/gallery")
	{
		gallery.GET("", deps.GalleryHandler.ListImages)
		gallery.GET("/groups", deps.GalleryHandler.Groups)
		gallery.GET("/title/:title", deps.GalleryHandler.ByTitle)
		gallery.GET("/:id", deps.GalleryHandler.GetImage)
		gallery.POST("", admin, deps.GalleryHandler.CreateImage)
		gallery.PUT("/:id", admin, deps.GalleryHandler.UpdateImage)
		gallery.DELETE("/:id", admin, deps.GalleryHandler.DeleteImage)
	}

	posts := api.Group("/gallery-posts")
	{
		posts.GET("", deps.GalleryHandler.ListPosts)
		posts.GET("/latest", deps.GalleryHandler.LatestPosts)
		posts.GET("/:id", deps.GalleryHandler.GetPost)
		posts.POST("", admin, deps.GalleryHandler.CreatePost)
		posts.PUT("/:id", admin, deps.GalleryHandler.UpdatePost)
		posts.DELETE("/:id", admin, deps.GalleryHandler.DeletePost)
	}

	popups := api.Group("/popups")
	{
		popups.GET("", deps.PopupHandler.List)
		popups.GET("/active", deps.PopupHandler.Active)
		popups.GET("/:id", deps.PopupHandler.Get)
		popups.POST("/:id/dismiss", deps.PopupHandler.Dismiss)
		popups.POST("", admin, deps.PopupHandler.Create)
		popups.PUT("/:id", admin, deps.PopupHandler.Update)
		popups.DELETE("/:id", admin, deps.PopupHandler.Delete)
	}

	schedules := api.Group("/pastor-schedules")
	{
		schedules.GET("", deps.PastorScheduleHandler.List)
		schedules.GET("/calendar", deps.PastorScheduleHandler.Calendar)
		schedules.GET("/:id", deps.PastorScheduleHandler.Get)
		schedules.POST("", admin, deps.PastorScheduleHandler.Create)
		schedules.PUT("/:id", admin, deps.PastorScheduleHandler.Update)
		schedules.DELETE("/:id", admin, deps.PastorScheduleHandler.Delete)
	}

	receipts := api.Group("/donation-receipts")
	{
		receipts.POST("", deps.DonationReceiptHandler.Submit)
		receipts.GET("", admin, deps.DonationReceiptHandler.List)
		receipts.GET("/:id", admin, deps.DonationReceiptHandler.Get)
		receipts.PUT("/:id", admin, deps.DonationReceiptHandler.UpdateStatus)
		receipts.DELETE("/:id", admin, deps.DonationReceiptHandler.Delete)
	}

	api.POST("/uploads/sign", admin, deps.UploadHandler.Sign)

	return router
}
