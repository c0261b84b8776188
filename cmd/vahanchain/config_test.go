package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VAHANCHAIN_PROJECT_ID", "test-project")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ChainID != 43113 {
		t.Errorf("chain-id = %d, want 43113", cfg.ChainID)
	}
	if cfg.ProjectID != "test-project" {
		t.Errorf("project-id = %q, env override not applied", cfg.ProjectID)
	}
	if cfg.BridgeAddr != "127.0.0.1:7420" {
		t.Errorf("bridge-addr = %q", cfg.BridgeAddr)
	}
	if cfg.LoadingDuration != 4500*time.Millisecond {
		t.Errorf("loading-duration = %s", cfg.LoadingDuration)
	}
	if want := filepath.Join(home, ".local", "share", "vahanchain", "vahanchain.duckdb"); cfg.DBPath != want {
		t.Errorf("db-path = %q, want %q", cfg.DBPath, want)
	}
	if cfg.RequireAllPermissions {
		t.Error("permissions should not be required by default")
	}
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
wallet-provider: simulated
simulated-delay: 10ms
bridge-port: 9000
db-path: ~/data/v.duckdb
documents-file: ~/docs.yml
require-all-permissions: true
loading-duration: 1s
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Errorf("config path = %q", cfg.ConfigPath)
	}
	if cfg.WalletProvider != "simulated" || cfg.SimulatedDelay != 10*time.Millisecond {
		t.Errorf("provider = %q delay = %s", cfg.WalletProvider, cfg.SimulatedDelay)
	}
	if cfg.BridgeAddr != "127.0.0.1:9000" {
		t.Errorf("bridge-addr = %q", cfg.BridgeAddr)
	}
	if cfg.DBPath != filepath.Join(home, "data", "v.duckdb") || cfg.DocumentsFile != filepath.Join(home, "docs.yml") {
		t.Errorf("~ not expanded: %q %q", cfg.DBPath, cfg.DocumentsFile)
	}
	if !cfg.RequireAllPermissions {
		t.Error("require-all-permissions not read")
	}
	if got := cfg.timings().LoadingDuration; got != time.Second {
		t.Errorf("timings loading = %s", got)
	}
	if fc := cfg.flowConfig(); fc.ChainID != 43113 || fc.AppName != "VahanChain" {
		t.Errorf("flow config = %+v", fc)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing project id", "wallet-provider: bridge\n", "project-id is required"},
		{"bad provider", "wallet-provider: walletconnect\n", "invalid wallet-provider"},
		{"bad port", "wallet-provider: simulated\nbridge-port: 70000\n", "invalid bridge-port"},
		{"bad address", "wallet-provider: simulated\nsimulated-address: 0x12\n", "simulated-address"},
		{"zero duration", "wallet-provider: simulated\nsplash-step: 0s\n", "invalid splash-step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			_, err := loadConfig(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}
