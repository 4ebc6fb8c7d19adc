package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/totem/internal/app"
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
	envVaultPath  = "TOTEM_VAULT"
	envWidth      = "TOTEM_WIDTH"
	envHeight     = "TOTEM_HEIGHT"
	envShowFooter = "TOTEM_FOOTER"
	envVerbose    = "TOTEM_VERBOSE"
	envTrace      = "TOTEM_TRACE"
	envLogFile    = "TOTEM_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("totem", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	vault := fs.String("vault", envOrDefault(env, envVaultPath, ""), "path to the encrypted vault file (defaults to the user config directory)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	vaultPath := *vault
	if strings.TrimSpace(vaultPath) == "" {
		vaultPath = defaultVaultPath()
	}

	cfg := Config{
		App: app.Config{
			VaultPath:  vaultPath,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"vault":   vaultPath,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func defaultVaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "totem.vault"
	}
	return filepath.Join(base, "totem", "totem.vault")
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
	if strings.TrimSpace(cfg.App.VaultPath) == "" {
		return fmt.Errorf("vault path must not be empty")
	}
	return nil
}
