// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxListedFiles = 8

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	successStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(1, 2)

	warnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(1, 2)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("DOCX to Markdown Converter"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseRunning:
		b.WriteString(m.viewRunning())
	case phaseSummary:
		b.WriteString(m.viewSummary())
	case phaseError:
		b.WriteString(m.viewError())
	default:
		b.WriteString(m.viewIdle())
	}

	return b.String()
}

func (m Model) viewIdle() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Selected files"))
	b.WriteString(fmt.Sprintf(" (%d)\n", len(m.selected)))
	if len(m.selected) == 0 {
		b.WriteString(dimStyle.Render("  none yet — add a file or folder below"))
		b.WriteString("\n")
	}
	for i, f := range m.selected {
		if i == maxListedFiles {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", len(m.selected)-maxListedFiles)))
			b.WriteString("\n")
			break
		}
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, filepath.Base(f)))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Add file or folder"))
	b.WriteString("\n" + m.pathInput.View() + "\n\n")

	b.WriteString(labelStyle.Render("Output directory"))
	b.WriteString("\n" + m.outputInput.View() + "\n\n")

	b.WriteString(labelStyle.Render("Extra pandoc args"))
	b.WriteString("\n" + m.argsInput.View() + "\n\n")

	check := "[ ]"
	if m.recursive {
		check = "[x]"
	}
	b.WriteString(fmt.Sprintf("%s recurse into subfolders\n\n", check))

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render(
		"tab: next field · enter: add path · ctrl+s: convert · ctrl+l: clear · ctrl+r: toggle recursion · esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Converting %d file(s)…\n\n", len(m.selected)))
	b.WriteString(m.bar.ViewAs(float64(m.pct) / 100))
	b.WriteString(fmt.Sprintf("\n\n%d%%\n", m.pct))
	return b.String()
}

func (m Model) viewSummary() string {
	ok := len(m.outcome.Successful)
	failed := len(m.outcome.Failed)

	if failed == 0 {
		body := fmt.Sprintf("Conversion complete\n\nSuccessfully converted all %d file(s).", ok)
		return successStyle.Render(body) + "\n\n" + dimStyle.Render("enter: back") + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Conversion results\n\n")
	fmt.Fprintf(&b, "Converted %d file(s) successfully.\n", ok)
	fmt.Fprintf(&b, "Failed to convert %d file(s):\n", failed)
	for _, f := range m.outcome.Failed {
		fmt.Fprintf(&b, "  - %s\n", filepath.Base(f))
	}
	return warnStyle.Render(strings.TrimRight(b.String(), "\n")) +
		"\n\n" + dimStyle.Render("enter: back") + "\n"
}

func (m Model) viewError() string {
	body := fmt.Sprintf("Error\n\n%s", m.errMsg)
	return errorStyle.Render(body) + "\n\n" + dimStyle.Render("enter: back") + "\n"
}
