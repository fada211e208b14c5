// Package config holds the runtime configuration for the orchestration
// core. Values are resolved in order: explicit setter > .env file >
// environment variable > default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Anish932-hash/FERN-WIFI-CRACKER/pkg/debug"
	"github.com/joho/godotenv"
)

const (
	// DefaultWorkDirectory is where generated wordlists, capture files
	// and other job output land when no override is configured.
	DefaultWorkDirectory = "/tmp/fern-log"

	// DefaultRetentionWindow is how long terminal jobs stay queryable in
	// the registry before a sweep removes them. The legacy integrations
	// used 300s for some tools and 600s for others with no stated
	// rationale; a single configurable value replaces both.
	DefaultRetentionWindow = 300 * time.Second

	// DefaultFileRetention is how long generated files in the work
	// directory are kept before the retention service deletes them.
	DefaultFileRetention = 24 * time.Hour

	// DefaultGracePeriod is the wait between terminate and force-kill.
	DefaultGracePeriod = 5 * time.Second

	// DefaultProbeTimeout bounds each tool availability check.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultSweepInterval is how often the retention service runs.
	DefaultSweepInterval = 60 * time.Second
)

// Config is the runtime configuration shared by the controller and the
// retention service.
type Config struct {
	WorkDirectory   string
	RetentionWindow time.Duration
	FileRetention   time.Duration
	GracePeriod     time.Duration
	ProbeTimeout    time.Duration
	SweepInterval   time.Duration

	// JobTimeout is the default per-job timeout. Zero means no overall
	// timeout; individual command specs may still carry their own.
	JobTimeout time.Duration

	// ToolPaths maps a tool name to an explicit binary path. Tools not
	// listed here are resolved from PATH by name.
	ToolPaths map[string]string
}

// Default returns a Config populated with defaults only.
func Default() *Config {
	return &Config{
		WorkDirectory:   DefaultWorkDirectory,
		RetentionWindow: DefaultRetentionWindow,
		FileRetention:   DefaultFileRetention,
		GracePeriod:     DefaultGracePeriod,
		ProbeTimeout:    DefaultProbeTimeout,
		SweepInterval:   DefaultSweepInterval,
		ToolPaths:       make(map[string]string),
	}
}

// Load builds a Config from the .env file (if present) and the
// environment. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		debug.Debug("No .env file loaded: %v", err)
	}
	debug.Reinitialize()

	cfg := Default()

	if dir := os.Getenv("FERN_WORK_DIR"); dir != "" {
		cfg.WorkDirectory = dir
	}

	var err error
	if cfg.RetentionWindow, err = envSeconds("FERN_RETENTION_SECONDS", cfg.RetentionWindow); err != nil {
		return nil, err
	}
	if cfg.FileRetention, err = envSeconds("FERN_FILE_RETENTION_SECONDS", cfg.FileRetention); err != nil {
		return nil, err
	}
	if cfg.GracePeriod, err = envSeconds("FERN_GRACE_SECONDS", cfg.GracePeriod); err != nil {
		return nil, err
	}
	if cfg.ProbeTimeout, err = envSeconds("FERN_PROBE_TIMEOUT_SECONDS", cfg.ProbeTimeout); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = envSeconds("FERN_SWEEP_INTERVAL_SECONDS", cfg.SweepInterval); err != nil {
		return nil, err
	}
	if cfg.JobTimeout, err = envSeconds("FERN_JOB_TIMEOUT_SECONDS", cfg.JobTimeout); err != nil {
		return nil, err
	}

	// FERN_TOOL_PATHS holds "tool=path" pairs separated by commas, e.g.
	// "cowpatty=/opt/cowpatty/cowpatty,crunch=/usr/local/bin/crunch".
	if raw := os.Getenv("FERN_TOOL_PATHS"); raw != "" {
		for _, pair := range strings.Split(raw, ",") {
			name, path, found := strings.Cut(strings.TrimSpace(pair), "=")
			if !found || name == "" || path == "" {
				return nil, fmt.Errorf("invalid FERN_TOOL_PATHS entry %q", pair)
			}
			cfg.ToolPaths[name] = path
		}
	}

	if err := os.MkdirAll(cfg.WorkDirectory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create work directory %s: %w", cfg.WorkDirectory, err)
	}
	debug.Info("Configuration loaded: work dir %s, retention %s", cfg.WorkDirectory, cfg.RetentionWindow)

	return cfg, nil
}

// ToolPath resolves the binary to invoke for a tool name.
func (c *Config) ToolPath(name string) string {
	if path, ok := c.ToolPaths[name]; ok {
		return path
	}
	return name
}

func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return time.Duration(secs) * time.Second, nil
}
