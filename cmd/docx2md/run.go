// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2md/internal/batch"
	"github.com/pdiddy/docx2md/internal/locate"
	"github.com/pdiddy/docx2md/internal/pandoc"
	"github.com/pdiddy/docx2md/pkg/types"
)

// appConfig merges config-file values with any flags the user set. Flags
// win; the config file supplies defaults.
func appConfig(cmd *cobra.Command) types.AppConfig {
	cfg := types.AppConfig{
		Tool: types.ToolConfig{
			Binary:    viper.GetString("pandoc.binary"),
			ExtraArgs: append(viper.GetStringSlice("pandoc.extra_args"), pandocArgs...),
		},
		Convert: types.ConvertConfig{
			OutputDir: viper.GetString("convert.output_dir"),
			Recursive: viper.GetBool("convert.recursive"),
		},
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Convert.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Convert.Recursive, _ = cmd.Flags().GetBool("recursive")
	}
	return cfg
}

func runRoot(cmd *cobra.Command, args []string) error {
	gui, _ := cmd.Flags().GetBool("gui")
	if gui || (len(args) == 0 && cmd.Flags().NFlag() == 0 && len(pandocArgs) == 0) {
		return runGUI()
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "No files specified. Use --gui to launch the interactive frontend or pass files to convert.")
		return nil
	}

	cfg := appConfig(cmd)

	tool, err := pandoc.New(cfg.Tool.Binary)
	if err != nil {
		return err
	}

	files, err := locate.Find(args, cfg.Convert.Recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No DOCX files found.")
		return nil
	}
	fmt.Printf("Found %d DOCX files to convert.\n", len(files))

	opts := batch.Options{
		OutputDir: cfg.Convert.OutputDir,
		ExtraArgs: cfg.Tool.ExtraArgs,
	}
	runner := &batch.Runner{Converter: tool, Log: os.Stdout}

	out, err := runner.Run(files, opts)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, out)

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := batch.WriteReport(reportPath, out, opts); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	// Partial failures still exit 0; they are reported above. Only setup
	// errors (pandoc missing, output directory creation) fail the run.
	return nil
}

func printSummary(w io.Writer, out batch.Outcome) {
	fmt.Fprintln(w, "\nConversion complete:")
	fmt.Fprintf(w, "  - Successfully converted: %d files\n", len(out.Successful))
	if out.HasFailures() {
		fmt.Fprintf(w, "  - Failed to convert: %d files\n", len(out.Failed))
		for _, f := range out.Failed {
			fmt.Fprintf(w, "    - %s\n", f)
		}
	}
}
