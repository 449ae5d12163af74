// Package configcmd prints the effective configuration.
package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"intake/internal/infrastructure/config"
)

const mask = "********"

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration tools",
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets masked",
		Long:  `Print the configuration after defaults, the config file and INTAKE_* environment variables are merged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return Write(cmd.OutOrStdout(), cfg)
		},
	})

	return cmd
}

// Write encodes cfg as YAML with passwords replaced.
func Write(w io.Writer, cfg *config.Config) error {
	masked := *cfg
	masked.Auth.AdminPassword = maskSecret(cfg.Auth.AdminPassword)
	masked.Database.Password = maskSecret(cfg.Database.Password)
	masked.Redis.Password = maskSecret(cfg.Redis.Password)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&masked); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return mask
}
