package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/model"
	"github.com/vahanchain/vahanchain/internal/tui"
	"github.com/vahanchain/vahanchain/internal/wallet"
)

const (
	defaultBindHost         = "127.0.0.1"
	defaultWalletProvider   = "bridge"
	defaultSimulatedAddress = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"
	defaultSimulatedDelay   = 2 * time.Second
	defaultWalletTimeout    = 30 * time.Second
	defaultLogLevel         = "info"
)

// appConfig is the runtime configuration. It is loaded once and then only
// copied into constructors.
type appConfig struct {
	ProjectID             string        `mapstructure:"project-id"`
	ChainID               int64         `mapstructure:"chain-id"`
	RPCURL                string        `mapstructure:"rpc-url"`
	AppName               string        `mapstructure:"app-name"`
	AppURL                string        `mapstructure:"app-url"`
	AppRedirect           string        `mapstructure:"app-redirect"`
	WalletProvider        string        `mapstructure:"wallet-provider"`
	SimulatedAddress      string        `mapstructure:"simulated-address"`
	SimulatedDelay        time.Duration `mapstructure:"simulated-delay"`
	WalletTimeout         time.Duration `mapstructure:"wallet-timeout"`
	BridgeEnabled         bool          `mapstructure:"bridge-enabled"`
	BridgePort            int           `mapstructure:"bridge-port"`
	BridgeAddr            string        `mapstructure:"bridge-addr"`
	DBPath                string        `mapstructure:"db-path"`
	DocumentsFile         string        `mapstructure:"documents-file"`
	LoadingDuration       time.Duration `mapstructure:"loading-duration"`
	SplashStep            time.Duration `mapstructure:"splash-step"`
	SplashHold            time.Duration `mapstructure:"splash-hold"`
	PermissionsDelay      time.Duration `mapstructure:"permissions-delay"`
	RequireAllPermissions bool          `mapstructure:"require-all-permissions"`
	LogLevel              string        `mapstructure:"log-level"`
	ConfigPath            string        `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	defaultDBPath := filepath.Join(home, ".local", "share", "vahanchain", "vahanchain.duckdb")

	v := viper.New()
	v.SetEnvPrefix("VAHANCHAIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("project-id", "")
	v.SetDefault("chain-id", model.DefaultChainID)
	v.SetDefault("rpc-url", model.DefaultRPCURL)
	v.SetDefault("app-name", model.DefaultAppName)
	v.SetDefault("app-url", model.DefaultAppURL)
	v.SetDefault("app-redirect", model.DefaultAppRedirect)
	v.SetDefault("wallet-provider", defaultWalletProvider)
	v.SetDefault("simulated-address", defaultSimulatedAddress)
	v.SetDefault("simulated-delay", defaultSimulatedDelay)
	v.SetDefault("wallet-timeout", defaultWalletTimeout)
	v.SetDefault("bridge-enabled", true)
	v.SetDefault("bridge-port", model.DefaultBridgePort)
	v.SetDefault("db-path", defaultDBPath)
	v.SetDefault("documents-file", "")
	v.SetDefault("loading-duration", model.DefaultLoadingDuration)
	v.SetDefault("splash-step", model.DefaultSplashStep)
	v.SetDefault("splash-hold", model.DefaultSplashHold)
	v.SetDefault("permissions-delay", model.DefaultPermissionDelay)
	v.SetDefault("require-all-permissions", false)
	v.SetDefault("log-level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "vahanchain", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	// Expand ~ in paths
	cfg.DBPath = expandHome(home, cfg.DBPath)
	cfg.DocumentsFile = expandHome(home, cfg.DocumentsFile)

	if cfg.BridgeAddr == "" {
		cfg.BridgeAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.BridgePort))
	}

	return cfg, cfg.validate()
}

func expandHome(home, path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c appConfig) validate() error {
	if c.BridgePort <= 0 || c.BridgePort > 65535 {
		return fmt.Errorf("invalid bridge-port: %d", c.BridgePort)
	}
	if c.ChainID <= 0 {
		return fmt.Errorf("invalid chain-id: %d", c.ChainID)
	}
	switch c.WalletProvider {
	case "bridge":
		if c.ProjectID == "" {
			return errors.New("project-id is required for the bridge wallet provider (set VAHANCHAIN_PROJECT_ID)")
		}
	case "simulated":
		if _, err := wallet.NormalizeAddress(c.SimulatedAddress); err != nil {
			return fmt.Errorf("simulated-address: %w", err)
		}
	default:
		return fmt.Errorf("invalid wallet-provider %q (want bridge or simulated)", c.WalletProvider)
	}

	durations := map[string]time.Duration{
		"loading-duration":  c.LoadingDuration,
		"splash-step":       c.SplashStep,
		"splash-hold":       c.SplashHold,
		"permissions-delay": c.PermissionsDelay,
		"simulated-delay":   c.SimulatedDelay,
		"wallet-timeout":    c.WalletTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("invalid %s: %s", name, d)
		}
	}
	return nil
}

func (c appConfig) flowConfig() flow.Config {
	return flow.Config{
		ProjectID: c.ProjectID,
		ChainID:   c.ChainID,
		AppName:   c.AppName,
		AppURL:    c.AppURL,
	}
}

func (c appConfig) metadata() wallet.Metadata {
	return wallet.Metadata{
		Name:        c.AppName,
		Description: model.DefaultAppDescription,
		URL:         c.AppURL,
		Redirect:    c.AppRedirect,
	}
}

func (c appConfig) timings() tui.Timings {
	t := tui.DefaultTimings()
	t.SplashStep = c.SplashStep
	t.SplashHold = c.SplashHold
	t.LoadingDuration = c.LoadingDuration
	t.WalletTimeout = c.WalletTimeout
	return t
}
