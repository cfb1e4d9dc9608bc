package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hadir-app/hadir-api/internal/cache"
	"github.com/hadir-app/hadir-api/internal/config"
	dbpkg "github.com/hadir-app/hadir-api/internal/db"
	"github.com/hadir-app/hadir-api/internal/middleware"
	"github.com/hadir-app/hadir-api/internal/routes"
	"github.com/hadir-app/hadir-api/internal/validators"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	c := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if c != nil {
		if err := c.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable, continuing without cache")
			c = nil
		}
	}

	validators.Register()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, c)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if err := c.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close redis client")
	}
	if err := dbpkg.Close(db); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
}
