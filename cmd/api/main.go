package main

// @title CreatorBridge API
// @version 1.0
// @description Creator accelerator application portal and creator-relations CRM.

// @contact.name API Support
// @contact.email support@creatorbridge.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/creatorbridge/api/config"
	"github.com/creatorbridge/api/pkg/ai/llm"
	"github.com/creatorbridge/api/pkg/analytics"
	"github.com/creatorbridge/api/pkg/api/handlers"
	"github.com/creatorbridge/api/pkg/applications"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/auth"
	"github.com/creatorbridge/api/pkg/cache"
	"github.com/creatorbridge/api/pkg/clients"
	"github.com/creatorbridge/api/pkg/database"
	"github.com/creatorbridge/api/pkg/email"
	"github.com/creatorbridge/api/pkg/health"
	"github.com/creatorbridge/api/pkg/jobs"
	"github.com/creatorbridge/api/pkg/leadanalysis"
	"github.com/creatorbridge/api/pkg/leads"
	"github.com/creatorbridge/api/pkg/metrics"
	custommiddleware "github.com/creatorbridge/api/pkg/middleware"
	"github.com/creatorbridge/api/pkg/oauth"
	"github.com/creatorbridge/api/pkg/onboarding"
	"github.com/creatorbridge/api/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)   // magic link requests
	submitRateLimiter := custommiddleware.NewRateLimiter(3, 1) // application submissions

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Public info and health endpoints
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "CreatorBridge API",
			"version":     "1.0.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if err := redisClient.Redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Audit logger
	auditLogger := audit.NewService(db.Ent)
	log.Printf("✅ Audit logging initialized")

	// Email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	// S3 storage for application uploads
	var uploadStorage applications.Uploader
	if cfg.S3Bucket != "" {
		storageService, err := storage.NewService(storage.Config{
			AWSAccessKeyID:     cfg.AWSAccessKeyID,
			AWSSecretAccessKey: cfg.AWSSecretAccessKey,
			AWSRegion:          cfg.AWSRegion,
			S3Bucket:           cfg.S3Bucket,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 storage: %v", err)
		}
		uploadStorage = storageService
		log.Printf("✅ S3 storage initialized (bucket: %s)", cfg.S3Bucket)
	} else {
		log.Printf("ℹ️  S3 storage disabled (no bucket configured); uploads will be rejected")
	}

	// LLM client for lead analysis and document generation
	var llmClient llm.Client
	if cfg.OpenAIAPIKey != "" {
		llmClient = llm.NewOpenAIClient(llm.Config{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, log.Default())
		log.Printf("✅ LLM client initialized (model: %s)", cfg.OpenAIModel)
	} else {
		log.Printf("ℹ️  LLM disabled (no API key); analysis off, documents use templates")
	}

	// Auth services
	magicLinkService := auth.NewMagicLinkService(db.Ent, redisClient, time.Duration(cfg.MagicLinkTTLMinutes)*time.Minute)
	oauthService := oauth.NewService(db.Ent, cfg)

	// Domain services
	healthService := health.NewService(db.Ent,
		health.Weights{
			Email:     cfg.HealthWeightEmail,
			Milestone: cfg.HealthWeightMilestone,
			Activity:  cfg.HealthWeightActivity,
			Progress:  cfg.HealthWeightProgress,
		},
		health.Thresholds{
			GreenMin:  cfg.HealthGreenMin,
			YellowMin: cfg.HealthYellowMin,
		},
	)
	applicationService := applications.NewService(db.Ent, uploadStorage, emailService, auditLogger, cfg.AdminNotifyTo, cfg.MaxUploadBytes)

	var analysisService *leadanalysis.Service
	if llmClient != nil {
		analysisService = leadanalysis.NewService(db.Ent, llmClient)
	}
	leadService := leads.NewService(db.Ent, analysisService, auditLogger)
	clientService := clients.NewService(db.Ent, healthService)
	onboardingService := onboarding.NewService(db.Ent, llmClient, auditLogger)
	analyticsService := analytics.NewService(db.Ent, redisClient, healthService.Thresholds())

	// Cron: nightly health recompute and analytics cache warm
	cronManager := jobs.NewCronManager(healthService, analyticsService, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, magicLinkService, oauthService, emailService, auditLogger, prometheusMetrics)
	applicationHandler := handlers.NewApplicationHandler(applicationService, prometheusMetrics)
	adminHandler := handlers.NewAdminHandler(applicationService, auditLogger)
	leadHandler := handlers.NewLeadHandler(leadService, prometheusMetrics)
	clientHandler := handlers.NewClientHandler(clientService, healthService, auditLogger, prometheusMetrics)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, prometheusMetrics)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	v1 := e.Group("/api/v1")

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/magic-link", authHandler.RequestMagicLink, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/magic-link/:token", authHandler.VerifyMagicLink)
		authRoutes.GET("/oauth/:provider", authHandler.OAuthRedirect)
		authRoutes.GET("/oauth/:provider/callback", authHandler.OAuthCallback)
	}

	// Applicant routes (require JWT)
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret))
	{
		protected.POST("/applications", applicationHandler.Submit, submitRateLimiter.RateLimitMiddleware())
		protected.GET("/applications/me", applicationHandler.GetMine)
	}

	// Admin routes (require JWT plus admin allow-list membership)
	admin := v1.Group("")
	admin.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret))
	admin.Use(custommiddleware.RequireAdmin(cfg))
	{
		adminGroup := admin.Group("/admin")
		{
			adminGroup.GET("/applications", adminHandler.ListApplications)
			adminGroup.GET("/applications/export", adminHandler.ExportApplications)
			adminGroup.GET("/applications/status-counts", adminHandler.ApplicationStatusCounts)
			adminGroup.GET("/applications/:id", adminHandler.GetApplication)
			adminGroup.PATCH("/applications/:id", adminHandler.ReviewApplication)
			adminGroup.GET("/audit-logs", adminHandler.RecentAuditLogs)
		}

		leadsGroup := admin.Group("/leads")
		{
			leadsGroup.POST("", leadHandler.Create)
			leadsGroup.GET("", leadHandler.List)
			leadsGroup.GET("/stage-counts", leadHandler.StageCounts)
			leadsGroup.GET("/:id", leadHandler.Get)
			leadsGroup.PATCH("/:id/stage", leadHandler.UpdateStage)
			leadsGroup.GET("/:id/stage-history", leadHandler.StageHistory)
			leadsGroup.POST("/:id/analyze", leadHandler.Reanalyze)
			leadsGroup.POST("/:id/convert", leadHandler.Convert)
		}

		clientsGroup := admin.Group("/clients")
		{
			clientsGroup.GET("", clientHandler.List)
			clientsGroup.GET("/:id", clientHandler.Get)
			clientsGroup.PATCH("/:id", clientHandler.Update)
			clientsGroup.POST("/:id/health/recompute", clientHandler.RecomputeHealth)
			clientsGroup.POST("/:id/milestones", clientHandler.CreateMilestone)
			clientsGroup.GET("/:id/milestones", clientHandler.ListMilestones)
			clientsGroup.PATCH("/:id/milestones/:milestoneId/status", clientHandler.UpdateMilestoneStatus)
			clientsGroup.POST("/:id/activities", clientHandler.CreateActivity)
			clientsGroup.GET("/:id/activities", clientHandler.ListActivities)

			// Onboarding kit
			clientsGroup.GET("/:id/onboarding-kit", onboardingHandler.GetKit)
			clientsGroup.POST("/:id/onboarding-kit/month/:month/generate", onboardingHandler.GenerateMonth)
			clientsGroup.POST("/:id/onboarding-kit/month/:month/document/:slot/sent", onboardingHandler.MarkSent)
			clientsGroup.POST("/:id/onboarding-kit/month/:month/document/:slot/viewed", onboardingHandler.MarkViewed)
			clientsGroup.POST("/:id/onboarding-kit/month/:month/document/:slot/approve", onboardingHandler.Approve)
			clientsGroup.POST("/:id/onboarding-kit/month/:month/document/:slot/revision", onboardingHandler.RequestRevision)
			clientsGroup.POST("/:id/onboarding-kit/month/:month/document/:slot/regenerate", onboardingHandler.Regenerate)
			clientsGroup.GET("/:id/onboarding-kit/month/:month/document/:slot/download", onboardingHandler.Download)
		}

		analyticsGroup := admin.Group("/analytics")
		{
			analyticsGroup.GET("/overview", analyticsHandler.Overview)
			analyticsGroup.GET("/document-performance", analyticsHandler.DocumentPerformance)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 CreatorBridge API starting on %s", address)
	log.Printf("🌍 CORS: %s", strings.Join(cfg.CORSAllowedOrigins, ", "))
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("🔒 Auth endpoints: magic-link (5/min), application submit (3/min)")
	log.Printf("⏰ Cron jobs: Daily 2AM (health recompute), Daily 2:30AM (analytics warm)")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
