package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/atomicstack/minitwitter/internal/app"
	"github.com/atomicstack/minitwitter/internal/kv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envDBPath     = "MINITWITTER_DB"
	envBackend    = "MINITWITTER_BACKEND"
	envWidth      = "MINITWITTER_WIDTH"
	envHeight     = "MINITWITTER_HEIGHT"
	envShowFooter = "MINITWITTER_FOOTER"
	envVerbose    = "MINITWITTER_VERBOSE"
	envTrace      = "MINITWITTER_TRACE"
	envLogFile    = "MINITWITTER_LOG_FILE"
	envDump       = "MINITWITTER_DUMP"
	envFile       = "MINITWITTER_ENV_FILE"
)

const defaultDBPath = "minitwitter.db"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. When
// MINITWITTER_ENV_FILE names a dotenv file its values fill in variables the
// process environment does not already set.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	if path := strings.TrimSpace(env[envFile]); path != "" {
		fileEnv, err := godotenv.Read(path)
		if err != nil {
			return Config{}, fmt.Errorf("read env file %s: %w", path, err)
		}
		for k, v := range fileEnv {
			if _, ok := env[k]; !ok {
				env[k] = v
			}
		}
	}

	fs := flag.NewFlagSet("minitwitter", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dbPath := fs.String("db", envOrDefault(env, envDBPath, defaultDBPath), "directory holding the message database")
	backend := fs.String("backend", envOrDefault(env, envBackend, kv.BackendBadger), "storage backend: "+strings.Join(kv.Backends, ", "))
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	dump := fs.Bool("dump", envOrBool(env, envDump, false), "print the board as a table and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DBPath:     strings.TrimSpace(*dbPath),
			Backend:    strings.ToLower(strings.TrimSpace(*backend)),
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			Dump:       *dump,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"db":      *dbPath,
			"backend": *backend,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
			"dump":    strconv.FormatBool(*dump),
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
	if !kv.ValidBackend(cfg.App.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %s)", cfg.App.Backend, strings.Join(kv.Backends, ", "))
	}
	if cfg.App.Backend != kv.BackendMemory && cfg.App.DBPath == "" {
		return fmt.Errorf("db path is required for the %s backend", cfg.App.Backend)
	}
	return nil
}
