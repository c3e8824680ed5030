// Package main provides the CLI entry point for rulegen.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var (
	configFile string
	logLevel   string
	quiet      bool
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rulegen",
		Short: "Generate detection rules from a threat-model catalogue",
		Long: `rulegen reads threat cases from an Excel (or CSV) threat model
and writes one YAML detection rule per case.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./rulegen.yaml or ./config/rulegen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print the summary")

	rootCmd.AddCommand(
		newGenerateCmd(v),
		newValidateCmd(),
		newListCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, args []string) {
				cmd.Printf("rulegen %s\n", version)
			},
		},
	)
	return rootCmd
}
