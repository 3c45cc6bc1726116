// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk YAML record of one batch run. The CLI writes it
// when --report is given, so a run's outcome can be inspected later without
// scraping terminal output.
type Report struct {
	Timestamp time.Time     `yaml:"timestamp"`
	Options   ReportOptions `yaml:"options"`
	Summary   ReportSummary `yaml:"summary"`
	Outcome   Outcome       `yaml:",inline"`
}

// ReportOptions echoes the options the batch ran with.
type ReportOptions struct {
	OutputDir string   `yaml:"output_dir,omitempty"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

// ReportSummary stores the outcome counts.
type ReportSummary struct {
	Converted int `yaml:"converted"`
	Failed    int `yaml:"failed"`
	Total     int `yaml:"total"`
}

// WriteReport saves the outcome of a batch run to a YAML file at path.
func WriteReport(path string, out Outcome, opts Options) error {
	rep := Report{
		Timestamp: time.Now(),
		Options: ReportOptions{
			OutputDir: opts.OutputDir,
			ExtraArgs: opts.ExtraArgs,
		},
		Summary: ReportSummary{
			Converted: len(out.Successful),
			Failed:    len(out.Failed),
			Total:     out.Total(),
		},
		Outcome: out,
	}

	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
