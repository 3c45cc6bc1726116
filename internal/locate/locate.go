// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate discovers DOCX files from a mixed list of file and
// directory paths.
package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the input extension the locator accepts, matched case-insensitively.
const Ext = ".docx"

// IsDocx reports whether path has the DOCX extension, case-insensitively.
func IsDocx(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// Find returns the DOCX files reachable from paths, preserving input order.
// A file path is kept iff it has the .docx suffix. A directory contributes
// its matching files: the full subtree when recursive, its direct children
// otherwise. Duplicates across inputs are dropped, first occurrence wins.
// A nonexistent path or a traversal error aborts with a wrapped error
// rather than returning a partial listing.
func Find(paths []string, recursive bool) ([]string, error) {
	found := make([]string, 0, len(paths))
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			found = append(found, p)
		}
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("locating %s: %w", p, err)
		}

		if !info.IsDir() {
			if IsDocx(abs) {
				add(abs)
			}
			continue
		}

		if recursive {
			err := filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
				if walkErr != nil {
					return walkErr
				}
				if !d.IsDir() && IsDocx(path) {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", p, err)
			}
			continue
		}

		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		for _, e := range entries {
			if !e.IsDir() && IsDocx(e.Name()) {
				add(filepath.Join(abs, e.Name()))
			}
		}
	}

	return found, nil
}
