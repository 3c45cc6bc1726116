// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pandoc wraps the external pandoc binary that performs the actual
// DOCX-to-Markdown conversion. The binary is probed once at construction;
// each conversion spawns one pandoc process.
package pandoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/docx2md/pkg/types"
)

// DefaultBinary is the executable looked up on PATH when no explicit binary
// is configured.
const DefaultBinary = "pandoc"

// ErrToolUnavailable reports that the pandoc binary is missing or not
// operational. New returns errors wrapping it.
var ErrToolUnavailable = errors.New("pandoc unavailable")

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (stderr string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) (string, error) {
	var errBuf bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return errBuf.String(), err
}

var defaultExec executor = &osExecutor{}

// Tool is a verified handle on the pandoc binary. Frontends receive it from
// New rather than probing the binary themselves.
type Tool struct {
	bin  string
	exec executor
}

// New probes bin by running it with --version and returns a Tool when the
// probe exits 0. An empty bin selects DefaultBinary. A missing binary or a
// failing probe yields an error wrapping ErrToolUnavailable.
func New(bin string) (*Tool, error) {
	return newTool(bin, defaultExec)
}

func newTool(bin string, exec executor) (*Tool, error) {
	if bin == "" {
		bin = DefaultBinary
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%w: %s not found on PATH (see https://pandoc.org/installing.html)", ErrToolUnavailable, bin)
	}
	if stderr, err := exec.Run(bin, "--version"); err != nil {
		return nil, fmt.Errorf("%w: %s --version failed: %v %s", ErrToolUnavailable, bin, err, strings.TrimSpace(stderr))
	}
	return &Tool{bin: bin, exec: exec}, nil
}

// Binary returns the executable name the tool was verified with.
func (t *Tool) Binary() string { return t.bin }

// Convert runs pandoc for a single job. A missing input fails without
// spawning a process. A non-zero exit or a spawn error becomes a failure
// result carrying the captured stderr text; per-file problems never escape
// as Go errors.
func (t *Tool) Convert(job types.ConversionJob) types.ConversionResult {
	if _, err := os.Stat(job.Input); err != nil {
		return types.ConversionResult{
			Input:  job.Input,
			Detail: fmt.Sprintf("file not found: %s", job.Input),
		}
	}

	output := job.Output
	if output == "" {
		output = DeriveOutput(job.Input)
	}

	args := []string{job.Input, "-o", output, "--wrap=none"}
	args = append(args, job.ExtraArgs...)

	if stderr, err := t.exec.Run(t.bin, args...); err != nil {
		detail := strings.TrimSpace(stderr)
		if detail == "" {
			detail = err.Error()
		}
		return types.ConversionResult{Input: job.Input, Detail: detail}
	}

	return types.ConversionResult{Input: job.Input, Ok: true}
}

// DeriveOutput returns the Markdown path for input: same directory, same
// base name, .md extension.
func DeriveOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".md"
}
