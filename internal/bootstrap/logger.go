package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/catchpool/internal/config"
	"github.com/osse101/catchpool/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and, when LogDir
// is set, to a new timestamped session file. Old session files beyond the
// retention count are removed first.
// Returns the log file handle (caller must close; nil without LogDir).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	logCfg := logger.NewConfigForEnvironment(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment)

	var (
		out     = stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", logCfg.Format)
	slog.Info(LogMsgStartingCatchpool,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"data_source", cfg.DataSource)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"fish_data", cfg.FishDataPath,
		"location_data", cfg.LocationDataPath,
		"packs_dir", cfg.ContentPacksDir,
		"reload_interval", cfg.ReloadInterval,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	return logFile, nil
}

// cleanupLogs keeps the newest keep session files. Names embed a sortable
// timestamp, so lexical order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	for len(names) > keep {
		if err := os.Remove(filepath.Join(logDir, names[0])); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, names[0], err)
		}
		names = names[1:]
	}
}
