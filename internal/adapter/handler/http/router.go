package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sangam/bloodbank/internal/config"
	"github.com/sangam/bloodbank/internal/core/ports"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	config *config.HTTP,
	sessions ports.SessionService,
	pageHandler *PageHandler,
	userHandler *UserHandler,
	authHandler *AuthHandler,
	donorHandler *DonorHandler,
) (*Router, error) {
	if config.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	ginConfig := cors.DefaultConfig()
	allowedOrigins := config.AllowedOrigins
	originsList := strings.Split(allowedOrigins, ",")
	ginConfig.AllowOrigins = originsList

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(ginConfig))

	router.LoadHTMLGlob(config.TemplateGlob)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Routes without auth
	router.GET("/", pageHandler.Home)
	router.GET("/register", userHandler.ShowRegister)
	router.POST("/register", userHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Routes behind the session guard
	protected := router.Group("/")
	protected.Use(SessionMiddleware(sessions))
	{
		protected.GET("/dashboard", pageHandler.Dashboard)
		protected.GET("/donor", donorHandler.ShowDonorForm)
		protected.POST("/donor", donorHandler.RegisterDonor)
		protected.GET("/search", donorHandler.ShowSearchForm)
		protected.POST("/search-donor", donorHandler.SearchDonors)

		admin := protected.Group("/admin")
		admin.Use(AdminMiddleware())
		{
			admin.GET("", pageHandler.Admin)
		}
	}

	return &Router{
		Engine: router,
	}, nil
}

// Starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
