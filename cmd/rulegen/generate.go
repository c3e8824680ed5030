package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/offlinesiem/rulegen/internal/config"
	"github.com/offlinesiem/rulegen/internal/logging"
	"github.com/offlinesiem/rulegen/pkg/rulegen"
	"github.com/offlinesiem/rulegen/pkg/rulegen/output"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input.xlsx|input.csv]",
		Short: "Generate rule files from a threat-model catalogue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "", "Output directory for rule files")
	flags.String("sheet", "", "Sheet name (default: first sheet)")
	flags.String("ext", "", "Rule file extension")
	flags.Int("header-rows", 1, "Number of header rows to skip")
	flags.String("analysis", "", "Also write a plain-text case analysis to this file")
	flags.Bool("assign-ids", false, "Derive rule ids from case identifiers instead of leaving them empty")
	flags.Bool("dry-run", false, "Process the catalogue without writing files")

	bindings := map[string]string{
		"output_dir":      "output",
		"sheet":           "sheet",
		"extension":       "ext",
		"header_rows":     "header-rows",
		"analysis_file":   "analysis",
		"rule.assign_ids": "assign-ids",
		"dry_run":         "dry-run",
	}
	for key, name := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}

func runGenerate(cmd *cobra.Command, v *viper.Viper, args []string) error {
	if f := cmd.Flags().Lookup("log-level"); f != nil {
		_ = v.BindPFlag("logging.level", f)
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return fmt.Errorf("no input catalogue: pass a file or set input in the config")
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if !quiet {
		infoColor.Fprintf(out, "Reading catalogue: %s\n", cfg.Input)
	}

	var spin *spinner.Spinner
	if !quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " processing threat cases"
		spin.Start()
	}
	report, err := rulegen.Generate(ctx, cfg.Input, cfg.Options(), logger)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		if errors.Is(err, rulegen.ErrSourceUnavailable) {
			errorColor.Fprintf(cmd.ErrOrStderr(), "ERROR: catalogue not found or unreadable: %s\n", cfg.Input)
		}
		return err
	}

	if !quiet {
		printCases(out, report)
	}

	var (
		written []string
		failed  []*output.WriteError
	)
	if !cfg.DryRun {
		w := output.NewWriter(cfg.OutputDir, logger)
		w.Extension = cfg.Extension
		written, failed, err = w.WriteAll(report.Records)
		if err != nil {
			return err
		}
	}

	if cfg.AnalysisFile != "" {
		if err := output.WriteAnalysisFile(cfg.AnalysisFile, report.Records, report.Cases); err != nil {
			return fmt.Errorf("write analysis: %w", err)
		}
		if !quiet {
			infoColor.Fprintf(out, "Analysis written to %s\n", cfg.AnalysisFile)
		}
	}

	printSummary(out, summary{
		Processed:     report.Total,
		Built:         len(report.Records),
		Created:       written,
		Skipped:       report.Skipped,
		RowErrors:     report.Errors,
		WriteFailures: failed,
		DryRun:        cfg.DryRun,
	})

	if len(failed) > 0 {
		return fmt.Errorf("%d rule file(s) could not be written", len(failed))
	}
	return nil
}
