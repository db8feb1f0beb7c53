// Package cli wires colorline's dependencies for the cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/cli/styles"
	"github.com/bnema/colorline/internal/domain/build"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/infrastructure/config"
	"github.com/bnema/colorline/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/colorline/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// db opens on first settings access.
	db *sqlite.LazyDB

	// Use cases
	SettingsUC *usecase.ManageSettingsUseCase
	PreviewUC  *usecase.PreviewUseCase

	ctx context.Context
}

// Options adjusts how the app is built.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// LogLevel overrides the configured level when set.
	LogLevel string
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	// A broken config file is reported but never blocks the CLI.
	var loadErr error
	if loadErr = mgr.Load(); loadErr != nil {
		loadErr = fmt.Errorf("load config: %w", loadErr)
	}
	cfg := mgr.Get()
	if cfg.Database.Path == "" {
		if cfg.Database.Path, err = config.GetDatabaseFile(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	logger := newLogger(cfg, opts)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	settingsRepo := sqlite.NewLazySettingsRepository(db)

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg.Colors.StartColor),
		db:            db,
		SettingsUC:    usecase.NewManageSettingsUseCase(settingsRepo, cfg.Colors.Settings()),
		PreviewUC:     usecase.NewPreviewUseCase(),
		ctx:           ctx,
	}, nil
}

func newManager(configDir string) (*config.Manager, error) {
	if configDir != "" {
		return config.NewManagerAt(configDir)
	}
	return config.NewManager()
}

func newLogger(cfg *config.Config, opts Options) zerolog.Logger {
	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(level)
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = out
	return logging.New(logCfg)
}

// Settings loads a profile merged over the configured defaults.
func (a *App) Settings(profile string) (entity.Settings, error) {
	return a.SettingsUC.Load(a.ctx, profile)
}

// DatabasePath returns the settings database location.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
