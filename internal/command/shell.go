// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/bgarena/bgarena/internal/config"
	"github.com/bgarena/bgarena/internal/log"
	"github.com/bgarena/bgarena/internal/meta"
	"github.com/bgarena/bgarena/internal/output"
)

const (
	historyFileName   = ".bgarena_history"
	defaultHistoryMax = 1000
)

// shellCommandAction is the action handler for the "shell" subcommand. It
// loads the catalog and runs an interactive session over it. When stdin is
// not a terminal the session reads one command per line instead.
func shellCommandAction(ctx context.Context, cmd *cli.Command) error {
	config.Config.Namespace = "shell"

	col, ascending, err := SortFromCommand(cmd)
	if err != nil {
		return err
	}

	games, err := LoadCatalog(ctx, cmd)
	if err != nil {
		return err
	}

	s := newSession(games, col, ascending, output.OptionsFromCommand(cmd))

	in := reader(cmd)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return runInteractiveShell(s, len(games))
	}
	log.Debugf("stdin is not a terminal, using line mode")
	return runLineShell(in, writer(cmd), s)
}

// runLineShell executes each input line and writes its output to w.
func runLineShell(r io.Reader, w io.Writer, s *session) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out, quit := s.Exec(scanner.Text())
		if out != "" {
			fmt.Fprintln(w, out)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// shellModel is the Bubble Tea model for the shell command.
type shellModel struct {
	input          textinput.Model
	history        []string // Full history for navigation, including the history file
	sessionHistory []string // Commands from this session, matched with outputs
	histIndex      int
	output         []string
	session        *session
	historyFile    string
	historyMax     int
}

func initialShellModel(s *session, catalogSize int) shellModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	historyMax, _ := config.GetInt("history.size", defaultHistoryMax)
	file := historyFile()

	return shellModel{
		input:          ti,
		history:        loadHistory(file),
		sessionHistory: []string{},
		histIndex:      -1,
		output: []string{
			fmt.Sprintf("Board game arena loaded. %s.", output.Footer(catalogSize, catalogSize)),
			"Type 'help' for commands, 'exit' or Ctrl+C to quit.",
		},
		session:     s,
		historyFile: file,
		historyMax:  historyMax,
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			entry := m.input.Value()
			if strings.TrimSpace(entry) != "" {
				result, quit := m.session.Exec(entry)
				if quit {
					return m, tea.Quit
				}

				m.history = append(m.history, entry)
				m.sessionHistory = append(m.sessionHistory, entry)
				m.histIndex = -1
				m.output = append(m.output, result)
				saveHistory(m.historyFile, m.history, m.historyMax)
			}
			m.input.SetValue("")
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d2691e"))

	var lines []string

	// Welcome lines first.
	if len(m.output) >= 2 {
		lines = append(lines, m.output[0], m.output[1])
	}

	// Each command of this session followed by its output.
	for i := 0; i < len(m.sessionHistory); i++ {
		lines = append(lines, promptStyle.Render("> ")+m.sessionHistory[i])
		if (i+2) < len(m.output) && m.output[i+2] != "" {
			lines = append(lines, m.output[i+2])
		}
	}

	lines = append(lines, promptStyle.Render("> ")+m.input.View())

	return strings.Join(lines, "\n")
}

func runInteractiveShell(s *session, catalogSize int) error {
	p := tea.NewProgram(initialShellModel(s, catalogSize))
	_, err := p.Run()
	return err
}

// historyFile returns the path to the shell history file.
func historyFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(homeDir, historyFileName)
}

func loadHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

// saveHistory writes the last limit entries of history to filename. Failures
// are logged and otherwise ignored.
func saveHistory(filename string, history []string, limit int) {
	if limit <= 0 {
		limit = defaultHistoryMax
	}
	start := 0
	if len(history) > limit {
		start = len(history) - limit
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Debugf("history not saved: %v", err)
		return
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, h := range history[start:] {
		fmt.Fprintln(writer, h)
	}
	if err := writer.Flush(); err != nil {
		log.Debugf("history not saved: %v", err)
	}
}

// shellCommandBuilder constructs the cli.Command for "shell".
func shellCommandBuilder(meta meta.Meta) *cli.Command {
	cfgPath := meta.Config.Source
	return &cli.Command{
		Name:      "shell",
		Usage:     "interactive planning session",
		UsageText: "bgarena shell [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewCatalogFlag("shell", cfgPath),
			NewSortFlag("shell", cfgPath),
			newDescFlag(),
		}, NewDisplayFlags("shell", cfgPath)...),
		DisableSliceFlagSeparator: true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: shellCommandAction,
	}
}
