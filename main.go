package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envelope-zero/transaction-import/internal/config"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/envelope-zero/transaction-import/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.UploadDir != "" {
		err = os.MkdirAll(cfg.UploadDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	err = models.Connect(cfg.Database())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()

	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(cfg, r.Group("/"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
