// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docx2md CLI. With file or
// directory arguments it runs a batch conversion on the calling goroutine;
// with no arguments (or --gui) it launches the interactive frontend.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2md/internal/pandoc"
)

// version is set at build time via ldflags.
var version = "dev"

// pandocArgs holds everything after --pandoc-args on the command line,
// forwarded verbatim to pandoc.
var pandocArgs []string

// rootCmd is the base command for the docx2md CLI.
var rootCmd = &cobra.Command{
	Use:   "docx2md [files...]",
	Short: "Convert DOCX files to Markdown using pandoc",
	Long: `docx2md converts DOCX documents to Markdown by invoking pandoc once per
file. Arguments may be individual DOCX files or directories to search;
results are written next to each input unless --output-dir is given.

Everything after a literal --pandoc-args token is passed to pandoc verbatim:

  docx2md report.docx --pandoc-args --extract-media=media

Run with no arguments to launch the interactive frontend.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docx2md.yaml or ~/.config/docx2md/config.yaml)")

	rootCmd.Flags().StringP("output-dir", "o", "", "directory to save the converted Markdown files")
	rootCmd.Flags().BoolP("recursive", "r", false, "recursively search directories for DOCX files")
	rootCmd.Flags().BoolP("gui", "g", false, "launch the interactive frontend")
	rootCmd.Flags().String("pandoc-binary", "", `pandoc executable to use (default "pandoc")`)
	rootCmd.Flags().String("report", "", "write a YAML batch report to this file")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docx2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docx2md"))
		}
	}

	viper.SetEnvPrefix("DOCX2MD")
	viper.AutomaticEnv()

	viper.SetDefault("pandoc.binary", pandoc.DefaultBinary)
	_ = viper.BindPFlag("pandoc.binary", rootCmd.Flags().Lookup("pandoc-binary"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// splitPandocArgs separates the CLI's own arguments from everything after
// the --pandoc-args token.
func splitPandocArgs(args []string) (own, passthrough []string) {
	for i, a := range args {
		if a == "--pandoc-args" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func main() {
	own, rest := splitPandocArgs(os.Args[1:])
	pandocArgs = rest
	rootCmd.SetArgs(own)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
