package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	"github.com/seniorconnect-sg/community-api/internal/config"
	"github.com/seniorconnect-sg/community-api/internal/handlers"
	"github.com/seniorconnect-sg/community-api/internal/infra/repository"
	"github.com/seniorconnect-sg/community-api/internal/middleware"
	"github.com/seniorconnect-sg/community-api/internal/mq"
	"github.com/seniorconnect-sg/community-api/internal/notify"
	"github.com/seniorconnect-sg/community-api/internal/ratelimit"
	"github.com/seniorconnect-sg/community-api/internal/storage"
	bookinguc "github.com/seniorconnect-sg/community-api/internal/usecase/booking"
	"github.com/seniorconnect-sg/community-api/internal/weather"
)

// Setup wires repositories, use cases, handlers and middleware onto the
// engine. Write endpoints carry per-route rate limits; reads are mostly
// unthrottled.
func Setup(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	clk clock.Clock,
	limiter ratelimit.Limiter,
	events *mq.Publisher,
	logger *zap.Logger,
) {
	r.Use(middleware.CORSMiddleware())

	dispatcher := notify.NewDispatcher(notify.NewStore(db), logger)

	bookingRepo := repository.NewBookingGormRepository(db)
	sweep := bookinguc.NewSweepBookings(bookingRepo, clk, logger)

	bookingHandler := handlers.NewBookingHandler(
		bookinguc.NewCreateBooking(bookingRepo, clk, dispatcher, events, logger),
		bookinguc.NewListBookings(bookingRepo, clk, sweep, logger),
		bookinguc.NewGetBooking(bookingRepo, logger),
		bookinguc.NewUpdateBooking(bookingRepo, clk, logger),
		bookinguc.NewCancelBooking(bookingRepo, clk, dispatcher, events, logger),
		bookinguc.NewCheckAvailability(bookingRepo, clk, logger),
	)

	authHandler := handlers.NewAuthHandler(db, cfg, logger)
	eventHandler := handlers.NewEventHandler(db, clk, storage.NewS3(cfg), dispatcher, logger)
	notificationHandler := handlers.NewNotificationHandler(db, logger)
	feedbackHandler := handlers.NewFeedbackHandler(db, logger)
	weatherHandler := handlers.NewWeatherHandler(weather.NewClient(cfg.OpenWeatherKey, logger), logger)

	limit := func(route string, n int, window time.Duration) gin.HandlerFunc {
		return middleware.RateLimit(limiter, logger, route, n, window)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// Public surface.
	auth := api.Group("/auth")
	{
		auth.POST("/register", limit("register", 3, time.Minute), authHandler.Register)
		auth.POST("/login", limit("login", 10, time.Minute), authHandler.Login)
		auth.GET("/verify", authHandler.VerifyEmail)
	}

	api.GET("/locations", bookingHandler.Locations)
	api.GET("/weather/current", limit("weather", 10, time.Minute), weatherHandler.Current)
	api.GET("/weather/forecast", limit("weather", 10, time.Minute), weatherHandler.Forecast)

	// Authenticated surface.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/auth/me", authHandler.Me)

		bookings := authed.Group("/bookings")
		{
			bookings.POST("", limit("booking_create", 10, time.Minute), bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.GET("/availability", bookingHandler.Availability)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PUT("/:id", limit("booking_update", 20, time.Hour), bookingHandler.Update)
			bookings.POST("/:id/cancel", limit("booking_cancel", 10, time.Hour), bookingHandler.Cancel)
		}

		eventsGroup := authed.Group("/events")
		{
			eventsGroup.POST("", limit("event_create", 5, time.Minute), eventHandler.Create)
			eventsGroup.GET("", eventHandler.List)
			eventsGroup.GET("/:id", eventHandler.Get)
			eventsGroup.POST("/:id/poster", limit("poster_upload", 5, time.Minute), eventHandler.UploadPoster)
			eventsGroup.POST("/:id/rsvp", limit("rsvp", 20, time.Minute), eventHandler.RSVP)
			eventsGroup.DELETE("/:id/rsvp", eventHandler.CancelRSVP)
		}
		authed.GET("/rsvps", eventHandler.MyRSVPs)

		notifications := authed.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.DELETE("/:id", notificationHandler.Dismiss)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.DELETE("", notificationHandler.ClearAll)
		}

		authed.POST("/feedback", limit("feedback", 5, time.Minute), feedbackHandler.Submit)

		admin := authed.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.POST("/events/:id/verify", eventHandler.Verify)
			admin.GET("/feedback", feedbackHandler.ListAll)
			admin.DELETE("/feedback/:id", feedbackHandler.Delete)
		}
	}
}
