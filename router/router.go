package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservations/controllers"
	"github.com/yeremiapane/restaurant-reservations/middlewares"
	"github.com/yeremiapane/restaurant-reservations/repositories"
	"github.com/yeremiapane/restaurant-reservations/services"
)

func SetupRouter(db *gorm.DB, rateLimiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Middleware must be attached before the routes are registered; gin
	// snapshots each route's handler chain at registration time.
	r.Use(rateLimiter.RateLimit())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	store := repositories.NewGormReservationStore(db)
	reservationSvc := services.NewReservationService(store)
	reservationCtrl := controllers.NewReservationController(reservationSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	strict := middlewares.NewStrictRateLimiter()

	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationCtrl.ListReservations)
		reservations.POST("", strict, reservationCtrl.CreateReservation)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservation)
		reservations.PUT("/:reservation_id", strict, reservationCtrl.UpdateReservation)
		reservations.PUT("/:reservation_id/status", strict, reservationCtrl.UpdateReservationStatus)
	}

	return r
}
