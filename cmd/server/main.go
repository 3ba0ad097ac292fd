package main

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"book-curator/backend/internal/agent"
	"book-curator/backend/internal/agent/deps"
	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/config"
	"book-curator/backend/internal/handler"
	"book-curator/backend/internal/logging"
	"book-curator/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("[FATAL] Invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Str("env", cfg.Env).Str("provider", cfg.LLMProvider).Msg("[INFO] Starting Book Curator")

	ctx := context.Background()

	var catalogSvc deps.Catalog
	if err := cfg.ValidateForCatalog(); err != nil {
		logging.Warn().Err(err).Msg("[WARN] Catalog routes will be unavailable")
	} else {
		client, err := catalog.NewClient(catalog.Config{
			APIKey:  cfg.AladinAPIKey,
			BaseURL: cfg.AladinBaseURL,
			Timeout: cfg.CatalogTimeout,
		})
		if err != nil {
			logging.Warn().Err(err).Msg("[WARN] Failed to initialize catalog client")
		} else {
			catalogSvc = client
		}
	}

	var curator handler.Curator
	completer, err := agent.NewCompleter(ctx, cfg)
	if err != nil {
		logging.Warn().Err(err).Msg("[WARN] Recommendation routes will be unavailable")
	} else if catalogSvc != nil {
		curator = agent.NewCurator(catalogSvc, completer)
		logging.Info().Msg("[INFO] Curator initialized successfully")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	h := handler.New(handler.Options{
		Catalog:  catalogSvc,
		Curator:  curator,
		Provider: cfg.LLMProvider,
	})
	h.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.StaticDir != "" {
		r.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
		index := filepath.Join(cfg.StaticDir, "index.html")
		r.GET("/", func(c *gin.Context) { c.File(index) })

		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.File(index)
		})
	} else {
		r.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		})
	}

	logging.Info().
		Str("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("[INFO] Server ready")
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("[FATAL] Failed to start server")
	}
}
