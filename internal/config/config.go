// Package config parses runtime configuration from CLI flags and
// environment variables, flags taking precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xXJSONDeruloXx/Allium/internal/app"
)

// Config captures runtime configuration for the launcher.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
	Debug    bool
}

const (
	envBaseDir       = "ALLIUM_BASE_DIR"
	envRomsDir       = "ALLIUM_ROMS_DIR"
	envAppsDir       = "ALLIUM_APPS_DIR"
	envWidth         = "ALLIUM_WIDTH"
	envHeight        = "ALLIUM_HEIGHT"
	envRetroArchAddr = "ALLIUM_RETROARCH_ADDR"
	envHistoryCap    = "ALLIUM_HISTORY_CAP"
	envTrace         = "ALLIUM_TRACE"
	envDebug         = "ALLIUM_DEBUG"
	envLogFile       = "ALLIUM_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("allium", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	baseDir := fs.String("base-dir", envOrDefault(env, envBaseDir, "/mnt/SDCARD/.allium"), "directory holding launcher state, history and screenshots")
	romsDir := fs.String("roms-dir", envOrDefault(env, envRomsDir, "/mnt/SDCARD/Roms"), "directory of per-console ROM folders")
	appsDir := fs.String("apps-dir", envOrDefault(env, envAppsDir, "/mnt/SDCARD/Apps"), "directory of app paks")
	width := fs.Int("width", envOrInt(env, envWidth, 640), "screen width in pixels")
	height := fs.Int("height", envOrInt(env, envHeight, 480), "screen height in pixels")
	raAddr := fs.String("retroarch-addr", envOrDefault(env, envRetroArchAddr, "127.0.0.1:55355"), "UDP address of the RetroArch network control interface")
	historyCap := fs.Int("history-cap", envOrInt(env, envHistoryCap, 0), "maximum recents entries (0 uses the built-in default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	debug := fs.Bool("debug", envOrBool(env, envDebug, false), "enable debug logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width <= 0 || *height <= 0 {
		return Config{}, fmt.Errorf("screen size must be positive (got %dx%d)", *width, *height)
	}
	if *baseDir == "" {
		return Config{}, fmt.Errorf("base-dir must not be empty")
	}
	if *historyCap < 0 {
		return Config{}, fmt.Errorf("history-cap must be >= 0 (got %d)", *historyCap)
	}

	cfg := Config{
		App: app.Config{
			BaseDir:         *baseDir,
			RomsDir:         *romsDir,
			AppsDir:         *appsDir,
			Width:           *width,
			Height:          *height,
			RetroArchAddr:   *raAddr,
			HistoryCapacity: *historyCap,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
			Debug:    *debug,
		},
		Flags: map[string]string{
			"baseDir":       *baseDir,
			"romsDir":       *romsDir,
			"appsDir":       *appsDir,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"retroarchAddr": *raAddr,
			"historyCap":    strconv.Itoa(*historyCap),
			"trace":         strconv.FormatBool(*trace),
			"debug":         strconv.FormatBool(*debug),
			"logFile":       *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.RetroArchAddr == "" {
		return fmt.Errorf("retroarch-addr must not be empty")
	}
	return nil
}
