package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/offlinesiem/rulegen/pkg/rulegen/output"
)

func newValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <path> [<path>...]",
		Short: "Validate generated rule files or directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show detailed rule information")
	return cmd
}

func runValidate(cmd *cobra.Command, paths []string, verbose bool) error {
	out := cmd.OutOrStdout()
	var totalFiles, validFiles, invalidFiles int

	for _, path := range paths {
		files, err := output.CollectRuleFiles(path)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %s: %v\n", path, err)
			invalidFiles++
			continue
		}

		for _, f := range files {
			totalFiles++
			rec, err := output.LoadRuleFile(f)
			if err != nil {
				errorColor.Fprintf(out, "  FAIL  ")
				fmt.Fprintf(out, "%s: %v\n", f, err)
				invalidFiles++
				continue
			}

			validFiles++
			successColor.Fprintf(out, "  OK    ")
			fmt.Fprintf(out, "%s\n", f)
			if verbose {
				fmt.Fprintf(out, "        - [%s] %s (severity=%s)\n", rec.Identifier, rec.Title, rec.Detection.Severity)
				fmt.Fprintf(out, "          condition: %s\n", rec.Detection.Condition)
				if len(rec.Tags) > 0 {
					fmt.Fprintf(out, "          tags: %s\n", strings.Join(rec.Tags, ", "))
				}
			}
		}
	}

	fmt.Fprintf(out, "\nResults: %d files checked, %d valid, %d invalid\n", totalFiles, validFiles, invalidFiles)

	if invalidFiles > 0 {
		return fmt.Errorf("%d invalid rule file(s)", invalidFiles)
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir...]",
		Short: "List rules found in files or directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"rules"}
			}
			return runList(cmd, args)
		},
	}
}

func runList(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	for _, path := range paths {
		files, err := output.CollectRuleFiles(path)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			continue
		}

		for _, f := range files {
			rec, err := output.LoadRuleFile(f)
			if rec == nil {
				warningColor.Fprintf(cmd.ErrOrStderr(), "Skipping %s: %v\n", f, err)
				continue
			}
			fmt.Fprintf(out, "%-40s  %-6s  %s\n", rec.Identifier, rec.Detection.Severity, rec.Title)
		}
	}
	return nil
}
