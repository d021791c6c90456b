package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/features/internal/assets"
	"github.com/MrSnakeDoc/features/internal/config"
	"github.com/MrSnakeDoc/features/internal/features"
	"github.com/MrSnakeDoc/features/internal/httpserver"
	"github.com/MrSnakeDoc/features/internal/httpserver/deps"
	"github.com/MrSnakeDoc/features/internal/logger"
	"github.com/MrSnakeDoc/features/internal/pages"
	"github.com/MrSnakeDoc/features/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	if cfg.ConfigFile != "" {
		loggerClient.Info("config overlay loaded", logger.String("file", cfg.ConfigFile))
	}

	// Resolve every icon up front - a missing asset is a build defect, fail fast
	styles := features.DefaultStyles()
	assetLog := loggerClient.Named("assets")
	icons, err := assets.LoadCatalog(styles.FeatureSvg, features.IconRefs()...)
	if err != nil {
		assetLog.Error("failed to resolve feature icons", logger.Error(err))
		os.Exit(1)
	}
	assetLog.Info("feature icons resolved", logger.Int("count", icons.Len()))

	d := deps.Deps{
		Logger:    loggerClient.Named("http"),
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		Site: pages.Site{
			Title:   cfg.SiteTitle,
			Tagline: cfg.SiteTagline,
		},
		Icons:        icons,
		IconCount:    icons.Len(),
		Styles:       styles,
		Static:       assets.Static(),
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		RateBurst:    cfg.RateLimitBurst,
		RatePerMin:   cfg.RateLimitPerMinute,
	}

	server := httpserver.New(cfg, d.Logger, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting features v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())
	a.logger.Info("access restrictions",
		logger.Int("allowed_hosts", len(a.cfg.AllowedHosts)),
		logger.Int("allowed_cidrs", len(a.cfg.AllowedCIDRS)),
		logger.Bool("trust_proxy", a.cfg.TrustProxy))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	a.logger.Info("✅ features stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
