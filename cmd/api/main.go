package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/images"
	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/blob"
	"pet-adoption/internal/platform/db"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
	"pet-adoption/internal/seed"

	"github.com/getsentry/sentry-go"
	"github.com/jmoiron/sqlx"
)

// @title           Pet Adoption API
// @version         1.0
// @description     Mascotas en adopción, reseñas y solicitudes de adopción.
// @BasePath        /
// @accept          json
// @produce         json
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:     logger.ParseLevel(cfg.LogLevel),
		Format:    logger.ParseFormat(cfg.LogFormat),
		App:       cfg.AppName,
		SentryDSN: cfg.SentryDSN,
	})
	if sl, ok := log.(*logger.SlogLogger); ok {
		slog.SetDefault(sl.Slog())
	}
	defer sentry.Flush(2 * time.Second)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err})
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conn *sqlx.DB
	if cfg.DBDriver != config.DriverMemory {
		var err error
		conn, err = db.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close(conn)

		if cfg.AutoMigrate {
			if err := db.Migrate(conn.DB, cfg.DBDriver); err != nil {
				return err
			}
			log.Info("migrations applied", map[string]any{"driver": cfg.DBDriver})
		}
	}

	repos := storage.New(conn)

	if cfg.SeedOnStart {
		f, err := seed.Default()
		if err != nil {
			return err
		}
		if _, err := seed.Run(ctx, repos, f, log); err != nil {
			return err
		}
	}

	store, imagesDir, err := newBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	handler := router.NewRouter(router.Options{
		Repos:           &repos,
		Images:          images.NewUploader(store),
		ImagesDir:       imagesDir,
		ImagesURLPrefix: cfg.UploadURLPrefix,
		Logger:          log,
		MaxUploadBytes:  cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    cfg.Addr(),
			"db":      cfg.DBDriver,
			"storage": cfg.StorageDriver,
			"env":     cfg.AppEnv,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newBlobStore devuelve el store de imágenes y, si es local, el directorio a servir.
func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, string, error) {
	if cfg.StorageDriver == config.StorageS3 {
		s3, err := blob.NewS3Store(ctx, blob.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
		if err != nil {
			return nil, "", err
		}
		return s3, "", nil
	}

	local, err := blob.NewLocalStore(cfg.UploadDir, cfg.UploadURLPrefix)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}
