package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.VaultPath == "" {
		t.Fatalf("expected a default vault path")
	}
	if !strings.HasSuffix(cfg.App.VaultPath, "totem.vault") {
		t.Fatalf("unexpected default vault path %q", cfg.App.VaultPath)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults: %#v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatalf("trace must default to off")
	}
}

func TestLoadArgsFlagsWinOverEnv(t *testing.T) {
	env := []string{"TOTEM_VAULT=/env/path.vault", "TOTEM_WIDTH=50"}
	cfg, err := LoadArgs([]string{"--vault", "/flag/path.vault"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.VaultPath != "/flag/path.vault" {
		t.Fatalf("expected flag to win, got %q", cfg.App.VaultPath)
	}
	if cfg.App.Width != 50 {
		t.Fatalf("expected env width applied, got %d", cfg.App.Width)
	}
}

func TestLoadArgsEnvBooleans(t *testing.T) {
	env := []string{"TOTEM_TRACE=1", "TOTEM_FOOTER=true", "TOTEM_VERBOSE=yes"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Logging.Trace || !cfg.App.ShowFooter {
		t.Fatalf("expected booleans parsed: %#v", cfg)
	}
	// "yes" is not a ParseBool value and falls back to the default.
	if cfg.Features.Verbose {
		t.Fatalf("expected malformed boolean to keep the default")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected an error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatalf("expected an error for negative height")
	}
}

func TestValidateRequiresVaultPath(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cfg.App.VaultPath = "   "
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected validation failure for blank vault path")
	}
}

func TestLoadArgsRecordsArgv(t *testing.T) {
	args := []string{"--footer", "extra"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Args) != 2 || cfg.Args[0] != "--footer" {
		t.Fatalf("expected argv recorded, got %v", cfg.Args)
	}
	if len(cfg.Flags) == 0 {
		t.Fatalf("expected flag snapshot for tracing")
	}
}
