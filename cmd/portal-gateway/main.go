package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/maplewood/student-portal/api/swagger"
	"github.com/maplewood/student-portal/internal/handler"
	"github.com/maplewood/student-portal/internal/middleware"
	"github.com/maplewood/student-portal/internal/repository"
	"github.com/maplewood/student-portal/internal/service"
	"github.com/maplewood/student-portal/pkg/cache"
	"github.com/maplewood/student-portal/pkg/config"
	appErrors "github.com/maplewood/student-portal/pkg/errors"
	"github.com/maplewood/student-portal/pkg/logger"
	corsmiddleware "github.com/maplewood/student-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/maplewood/student-portal/pkg/middleware/requestid"
	"github.com/maplewood/student-portal/pkg/response"
)

// @title Maplewood Student Portal Gateway
// @version 1.0.0
// @description Course catalog, enrollment and dashboard gateway for the Maplewood student portal
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// The query cache is an optimisation, not a dependency. A missing Redis
	// leaves the gateway serving uncached reads.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
			redisClient = nil
		}
	}

	client, err := repository.NewClient(cfg.Upstream, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upstream client", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if redisClient != nil {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CourseCacheTTL, logr, true)
	}

	authRepo := repository.NewAuthRepository(client)
	courseRepo := repository.NewCourseRepository(client)
	dashboardRepo := repository.NewDashboardRepository(client)
	enrollmentRepo := repository.NewEnrollmentRepository(client, logr)

	authSvc := service.NewAuthService(authRepo, service.NewAuthState(), validator.New(), logr)
	courseSvc := service.NewCourseService(courseRepo, cacheSvc, metricsSvc, cfg.Catalog.CourseCacheTTL, logr)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cacheSvc, metricsSvc, cfg.Catalog.DashboardCacheTTL, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, cacheSvc, metricsSvc, logr)
	exportSvc := service.NewExportService(dashboardSvc, logr, cfg.Exports.Enabled)

	authHandler := handler.NewAuthHandler(authSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, exportSvc, logr)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if redisClient != nil {
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				response.Error(c, appErrors.Wrap(err, "NOT_READY", http.StatusServiceUnavailable, "cache unreachable"))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/snapshot", metricsHandler.Snapshot)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authHandler.Me)
	}

	courses := r.Group("/api/courses")
	{
		courses.GET("/", courseHandler.List)
		courses.GET("/semester", courseHandler.Semester)
		courses.GET("/student", courseHandler.Student)
		courses.GET("/cards", courseHandler.Cards)
		courses.POST("/enroll/c/:courseId", enrollmentHandler.Enroll)
	}

	dashboard := r.Group("/api/dashboard/student")
	{
		dashboard.GET("/course-history", dashboardHandler.CourseHistory)
		dashboard.GET("/enrolled-courses", dashboardHandler.EnrolledCourses)
		dashboard.GET("/info", dashboardHandler.StudentInfo)
		dashboard.GET("/transcript", dashboardHandler.Transcript)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("portal gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL, "cache", cacheSvc.Enabled())
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("portal gateway failed", "error", err)
	}
}
