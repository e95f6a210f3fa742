// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cms-service/internal/config"
	"cms-service/internal/db"
	adminHandler "cms-service/internal/handlers/admin"
	authHandler "cms-service/internal/handlers/auth"
	postHandler "cms-service/internal/handlers/post"
	"cms-service/internal/middleware"
	"cms-service/internal/pkg/session"
	"cms-service/internal/repository/postgres"
	authUsecase "cms-service/internal/service/auth"
	postUsecase "cms-service/internal/service/post"
	"cms-service/internal/web"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	srv    *http.Server
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New(), logger: logger}
}

func (s *Server) Start(ctx context.Context) error {
	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		return err
	}

	// ----- Redis (optional, login rate limiter only) -----
	var rateLimiter *session.RateLimiter
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			return err
		}
		rateLimiter = session.NewRateLimiter(redisClient)
		s.logger.Info("login rate limiter enabled", zap.String("redis_addr", s.cfg.RedisAddr))
	}

	// ----- Repositories -----
	postRepo := postgres.NewPostRepository(pool)

	// ----- Services -----
	authService := authUsecase.NewAuthService(s.cfg, s.logger)
	postService := postUsecase.NewPostService(postRepo, s.logger)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:    authHandler.NewAuthHandler(authService, rateLimiter, s.cfg.IsProduction(), s.logger),
		AdminHandler:   adminHandler.NewAdminHandler(),
		PostHandler:    postHandler.NewPostHandler(postService, s.logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authService),
	}

	// ----- Middlewares & templates -----
	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
	)
	s.engine.SetHTMLTemplate(web.Templates())

	SetupRouter(s.engine, handlers)

	s.srv = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before the process exits.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
