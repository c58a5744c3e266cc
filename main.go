package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/daniellfalcao/dark-blue-parrot-server/cmd/api"
	authdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/domain"
	authrepo "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/repository"
	authusecase "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/usecase"
	postdomain "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/domain"
	postrepo "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/repository"
	postusecase "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/usecase"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/database"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/logger"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}, &postdomain.PostLike{}); err != nil {
		logger.Log.WithError(err).Fatal("failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewUserRepository(db)
	postRepo := postrepo.NewPostRepository(db, userRepo, cfg)

	// Token codec shares the process-wide signing secret
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenExpiry)

	// Initialize use cases
	authUc := authusecase.NewAuthUsecase(userRepo, codec)
	postUc := postusecase.NewPostUsecase(postRepo, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, postUc, codec, cfg)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Engine(),
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Block until a shutdown signal arrives, then drain in-flight calls.
	// The shutdown timeout bounds open watch streams.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutdown requested")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Error("forced shutdown")
	}
	logger.Log.Info("server stopped")
}
