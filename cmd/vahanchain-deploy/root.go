package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vahanchain/vahanchain/internal/chain"
	"github.com/vahanchain/vahanchain/internal/model"
)

const (
	defaultArtifact = "artifacts/contracts/SafeDriverSBT.sol/SafeDriverSBT.json"
	defaultTimeout  = 5 * time.Minute
)

func newRootCmd() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "vahanchain-deploy",
		Short:         "Deploy the SafeDriverSBT contract",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(v, configPath)
			if err != nil {
				return err
			}
			if opts.Verbose {
				log.SetLevel(log.DebugLevel)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()
			return deploy(ctx, cmd.OutOrStdout(), opts, chain.Dial, promptPrivateKey)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/vahanchain/config.yml)")
	f.String("rpc-url", model.DefaultRPCURL, "JSON-RPC endpoint")
	f.Int64("chain-id", model.DefaultChainID, "expected chain id")
	f.String("artifact", defaultArtifact, "Hardhat artifact of the contract")
	f.String("explorer-url", model.DefaultExplorerURL, "block explorer base URL")
	f.Duration("timeout", defaultTimeout, "overall deployment timeout")
	f.BoolP("verbose", "v", false, "debug logging")
	_ = v.BindPFlags(f)

	return cmd
}

// deployOptions is the resolved deploy configuration.
type deployOptions struct {
	RPCURL      string        `mapstructure:"rpc-url"`
	ChainID     int64         `mapstructure:"chain-id"`
	Artifact    string        `mapstructure:"artifact"`
	ExplorerURL string        `mapstructure:"explorer-url"`
	PrivateKey  string        `mapstructure:"private-key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Verbose     bool          `mapstructure:"verbose"`
}

func loadOptions(v *viper.Viper, configPath string) (deployOptions, error) {
	var opts deployOptions

	v.SetEnvPrefix("VAHANCHAIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = v.BindEnv("private-key", "VAHANCHAIN_PRIVATE_KEY", "PRIVATE_KEY")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ".config", "vahanchain", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return opts, err
		}
	}

	if err := v.Unmarshal(&opts); err != nil {
		return opts, err
	}
	if opts.Timeout <= 0 {
		return opts, fmt.Errorf("invalid timeout: %s", opts.Timeout)
	}
	if opts.ChainID <= 0 {
		return opts, fmt.Errorf("invalid chain-id: %d", opts.ChainID)
	}
	return opts, nil
}
