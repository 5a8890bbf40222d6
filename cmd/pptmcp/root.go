package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pptmcp/server/internal/config"
	"pptmcp/server/internal/deck"
	"pptmcp/server/internal/dispatch"
	"pptmcp/server/internal/envfile"
	"pptmcp/server/internal/logging"
	"pptmcp/server/internal/ops"
	"pptmcp/server/internal/paths"
	"pptmcp/server/internal/toolworker"
)

// configFile is set by the --config flag.
var configFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pptmcp",
		Short: "pptmcp serves PowerPoint editing tools over MCP",
		Long: `pptmcp exposes PowerPoint editing operations (slides, shapes, text,
tables, charts, conversion) as MCP tools. Every call loads the presentation,
applies one change and saves it back.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: <data-dir>/config.yaml)")
	flags.String("storage-root", config.DefaultStorageRoot, "directory relative file paths resolve against")
	flags.String("data-dir", "", "directory for config, locks and logs (default: user config dir)")
	flags.Bool("debug", false, "debug logging, also written to the log file")
	flags.Bool("log-file", false, "write JSON logs under <data-dir>/logs")
	flags.String("worker", "", "path to the document tool worker")
	flags.Bool("fake-worker", false, "use the in-process document engine")
	flags.Bool("serialize-edits", true, "serialize edits to the same file")
	flags.Duration("lock-timeout", config.DefaultLockTimeout, "how long an edit waits for a file lock")

	root.AddCommand(newServeCmd())
	root.AddCommand(newToolsCmd())
	root.AddCommand(newCallCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// app holds the wiring shared by commands that dispatch tool calls.
type app struct {
	cfg        config.Config
	logs       logging.FileLogger
	logger     *slog.Logger
	worker     toolworker.Client
	dispatcher *dispatch.Dispatcher
}

func newApp(cmd *cobra.Command) (*app, error) {
	envResult := envfile.Load()
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logs, logErr := logging.New(logging.Options{
		Console: cmd.ErrOrStderr(),
		DataDir: cfg.DataDir,
		Debug:   cfg.Debug,
		File:    cfg.LogFile,
	})
	logger := logs.Logger.With("component", "pptmcp")
	if logs.Enabled {
		logger.Info("pptmcp.logging_enabled", "path", logs.Path)
	}
	if envResult.Loaded {
		logger.Debug("pptmcp.env_loaded", "path", envResult.Path, "keys", envResult.Keys)
	}
	if envResult.Err != nil {
		logger.Warn("pptmcp.env_load_failed", "path", envResult.Path, "error", envResult.Err.Error())
	}
	if logErr != nil {
		logger.Warn("pptmcp.log_setup_failed", "error", logErr.Error())
	}
	if cfg.ConfigFile != "" {
		logger.Debug("pptmcp.config_loaded", "path", cfg.ConfigFile)
	}
	if err := os.MkdirAll(cfg.StorageRoot, 0o755); err != nil {
		logger.Warn("pptmcp.storage_root_unavailable", "path", cfg.StorageRoot, "error", err.Error())
	}

	var worker toolworker.Client
	if cfg.Worker.Fake {
		logger.Info("pptmcp.fake_worker")
		worker = toolworker.NewFake()
	} else {
		worker = toolworker.New(cfg.Worker.Path, logs.Logger.With("component", "toolworker"))
	}
	var locker *paths.Locker
	if cfg.SerializeEdits {
		locker = paths.NewLocker(cfg.LocksDir(), cfg.LockTimeout)
	}
	service := ops.NewService(deck.NewEngine(worker, logger), locker, logger)

	return &app{
		cfg:        cfg,
		logs:       logs,
		logger:     logger,
		worker:     worker,
		dispatcher: dispatch.New(service, cfg.StorageRoot, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.worker.Close(); err != nil {
		a.logger.Warn("pptmcp.worker_close_failed", "error", err.Error())
	}
	if a.logs.Close != nil {
		_ = a.logs.Close()
	}
}
