package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Gourav-Tailor/food-ai/internal/catalog"
	"github.com/Gourav-Tailor/food-ai/internal/places"
	"github.com/Gourav-Tailor/food-ai/internal/session"
)

func NewRouter(
	catalogHandler *catalog.Handler,
	sessionHandler *session.Handler,
	placesHandler *places.Handler,
) *gin.Engine {
	r := gin.Default()

	// CORS must be registered before any route picks up its handler chain.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", catalogHandler.ListRestaurants)
		restaurants.GET("/search", catalogHandler.Search)
		restaurants.GET("/:id", catalogHandler.GetRestaurant)
	}

	sessions := r.Group("/sessions")
	{
		sessions.POST("", sessionHandler.Create)
		sessions.GET("/:id", sessionHandler.Get)
		sessions.POST("/:id/say", sessionHandler.Say)
		sessions.POST("/:id/command", sessionHandler.Dispatch)

		sessions.POST("/:id/cart/lines", sessionHandler.AddLine)
		sessions.PATCH("/:id/cart/lines/:lineId", sessionHandler.ChangeQuantity)
		sessions.DELETE("/:id/cart/lines/:lineId", sessionHandler.RemoveLine)
		sessions.DELETE("/:id/cart", sessionHandler.ClearCart)
	}

	if placesHandler != nil {
		r.GET("/places/nearby", placesHandler.Nearby)
	}

	return r
}
