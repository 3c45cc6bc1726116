// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui implements the interactive frontend: a Bubble Tea event loop
// over the same per-file batch pipeline the CLI uses. The user assembles a
// selection of DOCX files, then a single background worker runs the batch
// while progress events stream back into the loop.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdiddy/docx2md/internal/batch"
	"github.com/pdiddy/docx2md/internal/locate"
)

// phase is the interface state machine: idle -> running -> idle, with
// summary and error views shown on the way back to idle.
type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseSummary
	phaseError
)

// focusArea indexes the editable fields, cycled with tab.
type focusArea int

const (
	focusPath focusArea = iota
	focusOutputDir
	focusExtraArgs
	focusCount
)

// Messages produced by the batch worker. Delivered over an unbuffered
// channel and drained one per command, so they apply in production order.
type (
	progressMsg  int
	batchDoneMsg batch.Outcome
	batchErrMsg  struct{ err error }
)

// Model is the Bubble Tea model for the interactive frontend.
type Model struct {
	conv batch.Converter

	phase     phase
	focus     focusArea
	recursive bool

	pathInput   textinput.Model
	outputInput textinput.Model
	argsInput   textinput.Model

	selected []string
	seen     map[string]bool

	bar     progress.Model
	pct     int
	notice  string
	outcome batch.Outcome
	errMsg  string

	events chan tea.Msg
	width  int
}

// Run starts the interactive frontend and blocks until the user quits.
func Run(conv batch.Converter) error {
	_, err := tea.NewProgram(New(conv), tea.WithAltScreen()).Run()
	return err
}

// New builds the idle model around a verified converter.
func New(conv batch.Converter) Model {
	path := textinput.New()
	path.Placeholder = "path to a DOCX file or a folder"
	path.Prompt = "> "
	path.Focus()

	outDir := textinput.New()
	outDir.Placeholder = "same as input files"
	outDir.Prompt = "> "

	args := textinput.New()
	args.Placeholder = "e.g. --extract-media=media"
	args.Prompt = "> "

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 50

	return Model{
		conv:        conv,
		pathInput:   path,
		outputInput: outDir,
		argsInput:   args,
		bar:         bar,
		seen:        make(map[string]bool),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// listen returns a command that delivers the next worker event. Reissued
// after every progress message so events arrive strictly in order.
func listen(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 10
		if w > 60 {
			w = 60
		}
		if w > 10 {
			m.bar.Width = w
		}
		return m, nil

	case progressMsg:
		m.pct = int(msg)
		return m, listen(m.events)

	case batchDoneMsg:
		m.phase = phaseSummary
		m.outcome = batch.Outcome(msg)
		return m, nil

	case batchErrMsg:
		m.phase = phaseError
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseRunning:
		// No cancellation: the batch runs to completion.
		return m, nil
	case phaseSummary, phaseError:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
			m.phase = phaseIdle
			m.pct = 0
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		return m.cycleFocus(1)
	case tea.KeyShiftTab:
		return m.cycleFocus(-1)
	case tea.KeyCtrlL:
		m.selected = nil
		m.seen = make(map[string]bool)
		m.notice = ""
		return m, nil
	case tea.KeyCtrlR:
		m.recursive = !m.recursive
		return m, nil
	case tea.KeyCtrlS:
		cmd := m.start()
		return m, cmd
	case tea.KeyEnter:
		if m.focus == focusPath {
			m.addPath(m.pathInput.Value())
		}
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) cycleFocus(dir int) (tea.Model, tea.Cmd) {
	m.focus = focusArea((int(m.focus) + dir + int(focusCount)) % int(focusCount))

	inputs := []*textinput.Model{&m.pathInput, &m.outputInput, &m.argsInput}
	var cmd tea.Cmd
	for i, in := range inputs {
		if focusArea(i) == m.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return m, cmd
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusPath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case focusOutputDir:
		m.outputInput, cmd = m.outputInput.Update(msg)
	case focusExtraArgs:
		m.argsInput, cmd = m.argsInput.Update(msg)
	}
	return m, cmd
}

// addPath resolves the path field: a DOCX file is added directly, a folder
// contributes its DOCX files (subtree when recursion is on). A folder with
// no matches leaves the selection untouched and shows a notice.
func (m *Model) addPath(raw string) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}

	info, err := os.Stat(p)
	if err != nil {
		m.notice = fmt.Sprintf("not found: %s", p)
		return
	}

	if info.IsDir() {
		files, err := locate.Find([]string{p}, m.recursive)
		if err != nil {
			m.notice = err.Error()
			return
		}
		if len(files) == 0 {
			m.notice = fmt.Sprintf("no DOCX files found in %s", p)
			return
		}
		added := 0
		for _, f := range files {
			if m.addFile(f) {
				added++
			}
		}
		m.notice = fmt.Sprintf("added %d file(s) from %s", added, p)
	} else {
		if !locate.IsDocx(p) {
			m.notice = fmt.Sprintf("not a DOCX file: %s", p)
			return
		}
		if m.addFile(p) {
			m.notice = fmt.Sprintf("added %s", filepath.Base(p))
		} else {
			m.notice = fmt.Sprintf("already selected: %s", filepath.Base(p))
		}
	}
	m.pathInput.SetValue("")
}

// addFile appends path to the selection unless already present. Insertion
// order is kept.
func (m *Model) addFile(path string) bool {
	if m.seen[path] {
		return false
	}
	m.seen[path] = true
	m.selected = append(m.selected, path)
	return true
}

// start kicks off the batch on a single background worker. The selection is
// copied before the worker starts; while running all editing keys are
// rejected, so the worker is the only reader.
func (m *Model) start() tea.Cmd {
	if len(m.selected) == 0 {
		m.notice = "select at least one DOCX file to convert"
		return nil
	}

	m.phase = phaseRunning
	m.notice = ""
	m.pct = 0

	ch := make(chan tea.Msg)
	m.events = ch

	inputs := append([]string(nil), m.selected...)
	opts := batch.Options{
		OutputDir:  strings.TrimSpace(m.outputInput.Value()),
		ExtraArgs:  strings.Fields(m.argsInput.Value()),
		OnProgress: func(pct int) { ch <- progressMsg(pct) },
	}
	runner := &batch.Runner{Converter: m.conv, Log: io.Discard}

	go func() {
		out, err := runner.Run(inputs, opts)
		if err != nil {
			ch <- batchErrMsg{err}
			return
		}
		ch <- batchDoneMsg(out)
	}()

	return listen(ch)
}
