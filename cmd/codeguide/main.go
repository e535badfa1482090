package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Strob0t/codeguide/internal/adapter/fswatch"
	cghttp "github.com/Strob0t/codeguide/internal/adapter/http"
	"github.com/Strob0t/codeguide/internal/adapter/markdown"
	cgotel "github.com/Strob0t/codeguide/internal/adapter/otel"
	"github.com/Strob0t/codeguide/internal/adapter/ristretto"
	"github.com/Strob0t/codeguide/internal/adapter/yamlfs"
	"github.com/Strob0t/codeguide/internal/config"
	"github.com/Strob0t/codeguide/internal/logger"
	"github.com/Strob0t/codeguide/internal/middleware"
	"github.com/Strob0t/codeguide/internal/port/cache"
	"github.com/Strob0t/codeguide/internal/service"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	var err error
	args := os.Args[1:]
	switch {
	case len(args) == 0 || args[0] == "serve":
		err = run()
	case args[0] == "check":
		err = runCheck(args[1:], os.Stdout)
	case args[0] == "help" || args[0] == "--help" || args[0] == "-h":
		printHelp()
	default:
		printHelp()
		err = fmt.Errorf("unknown command: %s", args[0])
	}

	if err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Usage: codeguide [command] [options]

Commands:
  serve   Run the API server (default)
  check   Load the data directory and report what was found
  help    Show this help message

Examples:
  codeguide
  codeguide check -dir ./data
`)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, closeLog := logger.New(cfg.Logging)
	defer closeLog.Close()
	slog.SetDefault(log)

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"api_prefix", cfg.Server.APIPrefix,
		"data_dir", cfg.Content.DataDir,
		"watch", cfg.Content.Watch,
		"log_level", cfg.Logging.Level,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Telemetry ---
	shutdownOTEL, err := cgotel.Setup(ctx, cfg.OTEL, cfg.App.Version)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownOTEL(sctx); err != nil {
			slog.Warn("otel shutdown", "error", err)
		}
	}()

	metrics, err := cgotel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Content ---
	src := yamlfs.New(cfg.Content.DataDir)
	content := service.NewContentService(src, metrics)
	if _, err := content.Reload(ctx, "startup"); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	var searchCache cache.Cache
	if cfg.Cache.L1MaxSizeMB > 0 {
		rc, err := ristretto.New(cfg.Cache.L1MaxSizeMB << 20)
		if err != nil {
			return fmt.Errorf("search cache: %w", err)
		}
		defer rc.Close()
		searchCache = rc
	}

	handlers := &cghttp.Handlers{
		App:      cfg.App,
		Content:  content,
		Searcher: service.NewSearchService(content, searchCache, cfg.Cache.TTL, metrics),
		Markdown: markdown.New(),
	}

	limiter := middleware.NewRateLimiter(cfg.Rate)

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(cfg, handlers, limiter),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	g.Go(func() error { return limiter.Run(gctx) })

	g.Go(func() error { return reloadOnHangup(gctx, content) })

	if cfg.Content.Watch {
		w := fswatch.New(src.Dir(), yamlfs.Files(src.Dir()), fswatch.DefaultDebounce, func(ctx context.Context) {
			reload(ctx, content, "watch")
		})
		g.Go(func() error { return w.Run(gctx) })
	}

	return g.Wait()
}

// newRouter builds the middleware chain and mounts the API routes.
func newRouter(cfg *config.Config, h *cghttp.Handlers, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(cghttp.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cghttp.CORS(cfg.Server.CORSOrigins))
	r.Use(cghttp.SecurityHeaders)
	r.Use(limiter.Handler)
	r.Use(cgotel.HTTPMiddleware(cfg.OTEL.ServiceName))
	r.Use(chimw.Timeout(requestTimeout))

	cghttp.MountRoutes(r, h, cfg.Server.APIPrefix)
	return r
}

// reloadOnHangup reloads content on every SIGHUP until ctx is done.
func reloadOnHangup(ctx context.Context, content *service.ContentService) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-hup:
			reload(ctx, content, "sighup")
		}
	}
}

func reload(ctx context.Context, content *service.ContentService, trigger string) {
	if _, err := content.Reload(ctx, trigger); err != nil {
		slog.Error("content reload failed", "trigger", trigger, "error", err)
	}
}
