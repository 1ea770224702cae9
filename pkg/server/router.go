// Package server assembles the gin engine serving the asset API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "assetmgmt/docs"
	"assetmgmt/pkg/assets"
	"assetmgmt/pkg/config"
	"assetmgmt/pkg/health"
	"assetmgmt/pkg/middleware"
	"assetmgmt/pkg/response"
)

// NewRouter wires middleware, the asset API, health probes and the swagger UI.
func NewRouter(cfg *config.Config, logger *slog.Logger, service assets.AssetService, db health.Pinger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recoverer(logger))

	origins := cfg.AllowedOrigins()
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: cfg.CORSAllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	router.Use(cors.New(corsCfg))

	router.NoRoute(func(c *gin.Context) {
		response.SendError(c, http.StatusNotFound, "", nil)
	})

	assets.NewAssetHandler(service, logger).RegisterRoutes(router)
	health.NewHandler(db).RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// NewHTTPServer wraps router in an http.Server configured from cfg.
func NewHTTPServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
