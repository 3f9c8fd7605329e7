package router

import (
	"time"

	"github.com/dojo-secrets/dojosecrets/internal/handlers"
	"github.com/dojo-secrets/dojosecrets/internal/middleware"
	"github.com/dojo-secrets/dojosecrets/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *handlers.Handler, sessions *session.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.SessionMiddleware(sessions))

	r.GET("/api/health", handlers.HealthCheck)

	r.GET("/", h.Home)
	r.GET("/logout", h.LogoutUser)
	r.POST("/login", h.LoginUser)
	r.POST("/registration", h.RegisterUser)

	secrets := r.Group("/secrets")
	{
		secrets.GET("", h.ListSecrets)
		secrets.GET("/:id", h.ShowSecret)
		secrets.POST("/secret_new", h.CreateSecret)
		secrets.POST("/:id/new", h.AddComment)
		secrets.POST("/:id/delete", h.DeleteSecret)
	}

	return r
}
