package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minaorangina/deal/config"
	"github.com/minaorangina/deal/server"
	"github.com/minaorangina/deal/store"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		logrus.Fatal(err)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		logger.Fatal(err)
	}

	s := server.NewServer(store.NewInMemoryGameStore(), server.ServerOpts{
		Catalog:        catalog,
		Seed:           cfg.Seed,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})
	s.Addr = cfg.Addr()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Listening on %s...", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown")
	}
}
