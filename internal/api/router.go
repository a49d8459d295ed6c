package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/quickpost/quickpost-api/docs"
	"github.com/quickpost/quickpost-api/internal/api/handler"
	"github.com/quickpost/quickpost-api/internal/api/middleware"
	"github.com/quickpost/quickpost-api/internal/core/ports"
	"github.com/quickpost/quickpost-api/internal/core/service"
	"github.com/quickpost/quickpost-api/internal/infrastructure/config"
	mongodb "github.com/quickpost/quickpost-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quickpost/quickpost-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink is created by the caller because its worker pool has a
// lifecycle tied to the process context.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditSink, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("quickpost"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokens := service.NewTokens(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret, cfg.Auth.AccessTTL)
	guard := redisdb.NewLoginThrottle(rdb)

	authService := service.NewAuthService(userRepo, tokens, guard, audit, log)
	postService := service.NewPostService(postRepo, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)

	authMiddleware := middleware.Auth(cfg.Auth.AccessSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refreshToken", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Protected resource routes ---
	posts := e.Group("/post", authMiddleware)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create)
	posts.PUT("/:id", postHandler.Update)
	posts.DELETE("/:id", postHandler.Delete)

	comments := e.Group("/comment", authMiddleware)
	comments.GET("/post/:postId", commentHandler.ListByPost)
	comments.GET("/:id", commentHandler.Get)
	comments.POST("", commentHandler.Create)
	comments.PUT("/:id", commentHandler.Update)
	comments.DELETE("/:id", commentHandler.Delete)

	users := e.Group("/user", authMiddleware)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
