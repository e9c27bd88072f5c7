package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	analyticsapp "github.com/taskflow/backend/internal/application/analytics"
	identityapp "github.com/taskflow/backend/internal/application/identity"
	workspaceapp "github.com/taskflow/backend/internal/application/workspace"
	"github.com/taskflow/backend/internal/infrastructure/auth"
	"github.com/taskflow/backend/internal/infrastructure/config"
	"github.com/taskflow/backend/internal/infrastructure/logger"
	"github.com/taskflow/backend/internal/infrastructure/persistence"
	"github.com/taskflow/backend/internal/infrastructure/storage"
	"github.com/taskflow/backend/internal/interfaces/http/handler"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
	"github.com/taskflow/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting TaskFlow Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	boardRepo := persistence.NewGormBoardRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)

	// Token blacklist: Redis when reachable, in-memory fallback otherwise
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		log.Info("Redis token blacklist connected", zap.String("addr", cfg.Redis.Addr()))
		blacklist = redisBlacklist
	}

	// Avatar storage: S3-compatible object store or local stub
	var avatarStorage identityapp.AvatarStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3AvatarStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize avatar storage", zap.Error(err))
		}
		ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Storage.EnsureBucket(ensureCtx); err != nil {
			cancel()
			log.Fatal("Failed to ensure avatar bucket", zap.Error(err))
		}
		cancel()
		log.Info("Avatar storage ready", zap.String("bucket", s3Storage.GetBucket()))
		avatarStorage = s3Storage
	} else {
		log.Info("Avatar storage disabled, uploads use stub storage")
		avatarStorage = storage.NewStubAvatarStorage()
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	profileService := identityapp.NewProfileService(profileRepo, log)
	authService := identityapp.NewAuthService(userRepo, profileService, jwtService, blacklist, cfg.OAuth, log)
	avatarService := identityapp.NewAvatarService(avatarStorage, profileService, log)
	projectService := workspaceapp.NewProjectService(projectRepo, boardRepo, log)
	boardService := workspaceapp.NewBoardService(boardRepo, projectRepo, log)
	taskService := workspaceapp.NewTaskService(taskRepo, boardRepo, projectRepo, log)
	analyticsService := analyticsapp.NewAnalyticsService(taskRepo, log)
	calendarService := analyticsapp.NewCalendarService(taskRepo, log)
	overviewService := analyticsapp.NewOverviewService(taskRepo, projectRepo, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, avatarService, cfg.Storage.MaxUploadSize)
	projectHandler := handler.NewProjectHandler(projectService)
	boardHandler := handler.NewBoardHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	overviewHandler := handler.NewOverviewHandler(overviewService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Apply JWT authentication middleware to API routes
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/auth/password/reset",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		SkipPathPrefixes: []string{
			"/api/v1/auth/oauth",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Authentication routes
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.RefreshToken)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/oauth/:provider", authHandler.OAuthRedirect)
	authRoutes.POST("/password/reset", authHandler.PasswordReset)
	authRoutes.PUT("/password", authHandler.UpdatePassword)

	// Current user routes (account, profile, avatar)
	meRoutes := router.NewDomainGroup("me", "/me")
	meRoutes.GET("", authHandler.GetCurrentUser)
	meRoutes.GET("/profile", profileHandler.GetProfile)
	meRoutes.PATCH("/profile", profileHandler.UpdateProfile)
	meRoutes.POST("/avatar", profileHandler.UploadAvatar)

	// Project routes (including membership and board management)
	projectRoutes := router.NewDomainGroup("projects", "/projects")
	projectRoutes.POST("", projectHandler.Create)
	projectRoutes.GET("", projectHandler.List)
	projectRoutes.GET("/:id", projectHandler.GetByID)
	projectRoutes.PATCH("/:id", projectHandler.Update)
	projectRoutes.DELETE("/:id", projectHandler.Delete)
	projectRoutes.GET("/:id/members", projectHandler.ListMembers)
	projectRoutes.POST("/:id/members", projectHandler.AddMember)
	projectRoutes.DELETE("/:id/members/:userId", projectHandler.RemoveMember)
	projectRoutes.GET("/:id/boards", boardHandler.List)
	projectRoutes.POST("/:id/boards", boardHandler.Create)

	// Board routes
	boardRoutes := router.NewDomainGroup("boards", "/boards")
	boardRoutes.GET("/:id/tasks", taskHandler.ListBoardTasks)
	boardRoutes.DELETE("/:id", boardHandler.Delete)

	// Task routes
	taskRoutes := router.NewDomainGroup("tasks", "/tasks")
	taskRoutes.POST("", taskHandler.Create)
	taskRoutes.GET("", taskHandler.List)
	taskRoutes.GET("/:id", taskHandler.GetByID)
	taskRoutes.PATCH("/:id", taskHandler.Update)
	taskRoutes.DELETE("/:id", taskHandler.Delete)

	// Analytics, calendar, overview
	analyticsRoutes := router.NewDomainGroup("analytics", "/analytics")
	analyticsRoutes.GET("/summary", analyticsHandler.Summary)

	calendarRoutes := router.NewDomainGroup("calendar", "/calendar")
	calendarRoutes.GET("", calendarHandler.Month)

	overviewRoutes := router.NewDomainGroup("overview", "/overview")
	overviewRoutes.GET("", overviewHandler.Overview)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(meRoutes).
		Register(projectRoutes).
		Register(boardRoutes).
		Register(taskRoutes).
		Register(analyticsRoutes).
		Register(calendarRoutes).
		Register(overviewRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
