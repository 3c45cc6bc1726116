// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	out := Outcome{
		Successful: []string{"a.docx", "b.docx"},
		Failed:     []string{"c.docx"},
	}
	opts := Options{
		OutputDir: "md",
		ExtraArgs: []string{"--toc"},
	}

	require.NoError(t, WriteReport(path, out, opts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rep Report
	require.NoError(t, yaml.Unmarshal(data, &rep))

	assert.Equal(t, 2, rep.Summary.Converted)
	assert.Equal(t, 1, rep.Summary.Failed)
	assert.Equal(t, 3, rep.Summary.Total)
	assert.Equal(t, out.Successful, rep.Outcome.Successful)
	assert.Equal(t, out.Failed, rep.Outcome.Failed)
	assert.Equal(t, "md", rep.Options.OutputDir)
	assert.Equal(t, []string{"--toc"}, rep.Options.ExtraArgs)
	assert.False(t, rep.Timestamp.IsZero(), "timestamp should be set")
}

func TestWriteReportUnwritablePath(t *testing.T) {
	out := Outcome{Successful: []string{"a.docx"}}

	err := WriteReport(filepath.Join(t.TempDir(), "missing", "run.yaml"), out, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing report")
}
