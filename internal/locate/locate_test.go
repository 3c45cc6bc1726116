// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDocx(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.docx", true},
		{"a.DOCX", true},
		{"a.Docx", true},
		{"a.doc", false},
		{"a.txt", false},
		{"a.docx.bak", false},
		{"docx", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDocx(tt.path), "IsDocx(%q)", tt.path)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, dir string) []string // returns input paths
		recursive bool
		want      func(dir string) []string // expected, relative to dir
		errMsg    string
	}{
		{
			name: "mixed files in a flat directory, no recursion",
			setup: func(t *testing.T, dir string) []string {
				writeFiles(t, dir, "x.docx", "y.txt", "z.DOCX")
				return []string{dir}
			},
			want: func(dir string) []string {
				return []string{filepath.Join(dir, "x.docx"), filepath.Join(dir, "z.DOCX")}
			},
		},
		{
			name: "no recursion ignores subdirectories",
			setup: func(t *testing.T, dir string) []string {
				writeFiles(t, dir, "top.docx")
				sub := filepath.Join(dir, "sub")
				require.NoError(t, os.MkdirAll(sub, 0o755))
				writeFiles(t, sub, "nested.docx")
				return []string{dir}
			},
			want: func(dir string) []string {
				return []string{filepath.Join(dir, "top.docx")}
			},
		},
		{
			name: "recursion reaches the full subtree",
			setup: func(t *testing.T, dir string) []string {
				writeFiles(t, dir, "top.docx")
				deep := filepath.Join(dir, "a", "b")
				require.NoError(t, os.MkdirAll(deep, 0o755))
				writeFiles(t, deep, "deep.docx", "ignored.pdf")
				return []string{dir}
			},
			recursive: true,
			want: func(dir string) []string {
				return []string{
					filepath.Join(dir, "a", "b", "deep.docx"),
					filepath.Join(dir, "top.docx"),
				}
			},
		},
		{
			name: "explicit file paths filtered by extension",
			setup: func(t *testing.T, dir string) []string {
				writeFiles(t, dir, "keep.docx", "drop.txt")
				return []string{filepath.Join(dir, "keep.docx"), filepath.Join(dir, "drop.txt")}
			},
			want: func(dir string) []string {
				return []string{filepath.Join(dir, "keep.docx")}
			},
		},
		{
			name: "duplicate inputs collapse to one entry",
			setup: func(t *testing.T, dir string) []string {
				writeFiles(t, dir, "once.docx")
				file := filepath.Join(dir, "once.docx")
				return []string{file, file, dir}
			},
			want: func(dir string) []string {
				return []string{filepath.Join(dir, "once.docx")}
			},
		},
		{
			name: "empty directory yields empty result",
			setup: func(t *testing.T, dir string) []string {
				return []string{dir}
			},
			want: func(dir string) []string { return []string{} },
		},
		{
			name: "nonexistent path fails fast",
			setup: func(t *testing.T, dir string) []string {
				return []string{filepath.Join(dir, "no-such-path")}
			},
			errMsg: "locating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inputs := tt.setup(t, dir)

			got, err := Find(inputs, tt.recursive)

			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(dir), got)
		})
	}
}

func TestFindPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.docx", "b.docx", "c.docx")

	inputs := []string{
		filepath.Join(dir, "c.docx"),
		filepath.Join(dir, "a.docx"),
		filepath.Join(dir, "b.docx"),
	}
	got, err := Find(inputs, false)
	require.NoError(t, err)
	assert.Equal(t, inputs, got)
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644))
	}
}
