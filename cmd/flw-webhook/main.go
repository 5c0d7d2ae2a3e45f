// Command flw-webhook receives Flutterwave webhooks and payment redirects and
// confirms each payment against the verify endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	flw "github.com/KriaaCompany/flw-sdk"
	"github.com/KriaaCompany/flw-sdk/config"
	"github.com/KriaaCompany/flw-sdk/internal/logger"
)

func main() {
	settings, err := config.Load(config.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(settings.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if settings.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := flw.NewFromSource(settings,
		flw.WithLogger(log.Desugar()),
		flw.WithTimeout(20*time.Second),
	)
	if err != nil {
		log.Fatalw("failed to create flutterwave client", "error", err)
	}
	if settings.SecretHash == "" {
		log.Warnw("FLUTTERWAVE_SECRET_HASH is not set, every webhook will be rejected")
	}

	srv := &http.Server{
		Addr:              settings.Server.Address,
		Handler:           NewRouter(NewHandler(client, log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
	log.Infow("server exited")
}
