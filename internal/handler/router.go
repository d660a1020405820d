package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter registers the API routes on r. An empty allowedOrigins list
// accepts requests from any origin.
func NewRouter(r *gin.Engine, h *SimplifyHandler, allowedOrigins []string) *gin.Engine {
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	r.Use(cors.New(corsConfig))

	r.POST("/api/simplify", h.Simplify)
	r.GET("/health", h.GetHealth)

	return r
}
