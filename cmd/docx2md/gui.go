// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/docx2md/internal/pandoc"
	"github.com/pdiddy/docx2md/internal/tui"
)

// runGUI verifies pandoc and hands control to the interactive frontend.
// A missing pandoc blocks the launch, mirroring the CLI path.
func runGUI() error {
	tool, err := pandoc.New(viper.GetString("pandoc.binary"))
	if err != nil {
		return err
	}
	return tui.Run(tool)
}
