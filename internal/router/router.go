package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/liurongbaobao/myWisdomRestaurant/internal/config"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/middleware"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/recommendation"
)

// New assembles the gin engine with CORS, request ids, a recovery
// handler that keeps the response envelope, and the API routes.
func New(cfg *config.Config, recHandler *recommendation.Handler) *gin.Engine {
	r := gin.New()

	r.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, _ any) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "internal server error",
				"data":    gin.H{},
			})
		}),
		middleware.RequestID(),
		cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"},
			MaxAge:       12 * time.Hour,
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := r.Group("/recommendation")
	{
		rec.POST("", recHandler.Recommend)
		rec.POST("/feedback", recHandler.Feedback)
		rec.GET("/history", recHandler.History)
		rec.GET("/dishes", recHandler.RecommendedDishes)
	}

	return r
}
