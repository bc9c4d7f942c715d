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
	"go.uber.org/zap"

	"miswa/internal/config"
	"miswa/internal/docstore"
	"miswa/internal/pkg/jwt"
	"miswa/internal/pkg/logger"
	"miswa/internal/server"
	"miswa/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Dev: cfg.LogDev})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := docstore.Open(ctx, cfg.DatabaseURL, cfg.DBName, log.Named("docstore"))
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn("document store close failed", zap.Error(err))
		}
	}()

	files, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open file storage: %w", err)
	}

	opts := server.Options{
		UploadsURLPrefix: cfg.UploadsURLPrefix,
		MaxUploadSize:    cfg.MaxUploadSize,
		CORSOrigins:      cfg.CORSOrigins,
	}
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	svc := server.NewServices(store, files, tokens, opts, log)

	if _, err := svc.AdminRepo.BootstrapIfEmpty(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.UsesDefaultAdminPassword()); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if err := svc.Seed(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(svc, opts, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown failed", zap.Error(err))
	}
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == config.StorageS3 {
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
	}
	return storage.NewLocal(cfg.UploadsDir)
}
