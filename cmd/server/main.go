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

	"collectionhub/internal/app/server/api"
	"collectionhub/internal/app/server/api/http/middleware/ratelimit"
	"collectionhub/internal/app/server/config"
	"collectionhub/internal/domain/upload"
	"collectionhub/internal/infrastructure/media"
	redislimit "collectionhub/internal/infrastructure/ratelimit"
	"collectionhub/internal/infrastructure/storage/postgres"
	"collectionhub/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

const sessionSweepInterval = 10 * time.Minute

func main() {
	var seedPath string

	rootCmd := &cobra.Command{
		Use:   "server",
		Short: "Collection Hub HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), seedPath)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&seedPath, "seed", "", "JSON file with energetics to import before start")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, seedPath string) error {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	storage, err := postgres.New(ctx, conf.DB, nil)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer storage.Close()
	log.Info("database ready")

	deps := api.Deps{
		Config:   conf,
		Services: api.NewServices(storage.Pool(), conf, mediaStore(conf, log), log),
		DB:       storage,
	}

	if conf.Redis.URL != "" {
		rdb, err := redislimit.Connect(ctx, conf.Redis.URL)
		if err != nil {
			log.Warn("redis unavailable, login throttling disabled", logger.Err(err))
		} else {
			defer rdb.Close()
			deps.Limiter = ratelimit.Allower(redislimit.New(rdb, conf.Redis.LoginLimit, conf.Redis.LoginWindow))
			log.Info("login throttling enabled", "limit", conf.Redis.LoginLimit, "window", conf.Redis.LoginWindow)
		}
	}

	if seedPath != "" {
		if err := seed(ctx, deps.Services, seedPath, log); err != nil {
			return err
		}
	}

	sweeper := postgres.NewSessionRepository(storage.Pool(), log)
	go sweepSessions(ctx, sweeper, log)

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(deps, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// mediaStore возвращает nil-интерфейс, если Cloudinary не настроен.
func mediaStore(conf *config.Config, log *slog.Logger) upload.Store {
	if !conf.Media.Enabled() {
		log.Warn("cloudinary credentials not found, image uploads disabled")
		return nil
	}

	store, err := media.NewCloudinaryStore(conf.Media.CloudName, conf.Media.APIKey, conf.Media.APISecret, conf.Media.Folder, log)
	if err != nil {
		log.Warn("cloudinary init failed, image uploads disabled", logger.Err(err))
		return nil
	}
	return store
}

func seed(ctx context.Context, svc *api.Services, path string, log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	n, err := svc.Energetic.Import(ctx, f)
	if err != nil {
		return fmt.Errorf("import energetics: %w", err)
	}
	log.Info("energetics imported", "count", n, "file", path)
	return nil
}

type expiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// sweepSessions периодически удаляет просроченные сессии.
func sweepSessions(ctx context.Context, repo expiredSessionDeleter, log *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Warn("delete expired sessions", logger.Err(err))
				continue
			}
			if n > 0 {
				log.Debug("expired sessions removed", "count", n)
			}
		}
	}
}
