// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs a list of DOCX files through a Converter one at a
// time, accumulating which inputs converted and which failed.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docx2md/internal/locate"
	"github.com/pdiddy/docx2md/pkg/types"
)

// Converter turns one DOCX file into Markdown. *pandoc.Tool is the
// production implementation.
type Converter interface {
	Convert(job types.ConversionJob) types.ConversionResult
}

// Options configures a single batch run.
type Options struct {
	// OutputDir is where Markdown files are written. Empty means next to
	// each input. Created (with parents) before the batch starts.
	OutputDir string

	// ExtraArgs are passed through verbatim to the converter for every job.
	ExtraArgs []string

	// OnProgress, when non-nil, receives the completion percentage before
	// each item starts and a final 100 after the last item. Calls arrive
	// from the goroutine running the batch, strictly in order.
	OnProgress func(pct int)
}

// Outcome lists the inputs that converted and those that did not. Each
// accepted input lands in exactly one of the two lists.
type Outcome struct {
	Successful []string `yaml:"successful,omitempty"`
	Failed     []string `yaml:"failed,omitempty"`
}

// HasFailures reports whether any input failed conversion.
func (o Outcome) HasFailures() bool { return len(o.Failed) > 0 }

// Total returns the number of inputs the batch attempted.
func (o Outcome) Total() int { return len(o.Successful) + len(o.Failed) }

// Runner drives batches through a Converter, writing per-file status lines
// to Log.
type Runner struct {
	Converter Converter
	Log       io.Writer
}

// Run converts inputs strictly sequentially, in the order given. Inputs
// without the .docx suffix are skipped with a diagnostic and count toward
// neither list. A failed item never aborts the batch; the only fatal error
// is output-directory creation, checked before the first conversion.
func (r *Runner) Run(inputs []string, opts Options) (Outcome, error) {
	var out Outcome

	log := r.Log
	if log == nil {
		log = io.Discard
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return out, fmt.Errorf("creating output directory %s: %w", opts.OutputDir, err)
		}
	}

	accepted := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if !locate.IsDocx(in) {
			fmt.Fprintf(log, "skipping non-DOCX file: %s\n", in)
			continue
		}
		accepted = append(accepted, in)
	}

	total := len(accepted)
	for i, input := range accepted {
		report(opts, 100*i/total)

		job := types.ConversionJob{Input: input, ExtraArgs: opts.ExtraArgs}
		if opts.OutputDir != "" {
			base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			job.Output = filepath.Join(opts.OutputDir, base+".md")
		}

		res := r.Converter.Convert(job)
		if res.Ok {
			out.Successful = append(out.Successful, input)
			fmt.Fprintf(log, "converted: %s\n", input)
		} else {
			out.Failed = append(out.Failed, input)
			fmt.Fprintf(log, "failed:    %s (%s)\n", input, res.Detail)
		}
	}
	if total > 0 {
		report(opts, 100)
	}

	return out, nil
}

func report(opts Options, pct int) {
	if opts.OnProgress != nil {
		opts.OnProgress(pct)
	}
}
