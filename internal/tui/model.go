package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

// Model is the bubbletea model of one game.
type Model struct {
	cfg  *config.Config
	game *game.Game

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel creates a model playing g.
func NewModel(g *game.Game, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "A2-A3"
	ti.Prompt = MsgPrompt
	ti.CharLimit = 16
	ti.Width = 20

	return Model{
		cfg:   cfg,
		game:  g,
		m:     modeNormal,
		input: ti,
		logLines: []string{
			"ready (press i to enter a move, h for a hint, q to quit)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				if m.game.Finished() {
					m.appendLog(MsgFinished)
					return m, nil
				}
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			case "h":
				m.appendLog("legal: " + Hint(m.game))
				return m, nil
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				if line == "" {
					return m, nil
				}
				m.execMove(line)
				if m.game.Finished() {
					m.m = modeNormal
					m.input.Blur()
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execMove(line string) {
	m.appendLog(m.game.CurrentPlayer().String() + "> " + line)
	_, feedback := PlayLine(m.game, line)
	for _, s := range feedback {
		m.appendLog(s)
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) status() string {
	switch {
	case m.game.Finished():
		winner, _ := m.game.Winner()
		return "checkmate, " + winner.String() + " wins"
	case m.game.InCheck():
		return m.game.CurrentPlayer().String() + " to move, in check"
	}
	return m.game.CurrentPlayer().String() + " to move"
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("chess  [%s]  mode:%s", m.status(), modeStr))

	boardBox := boxStyle.Render(strings.TrimRight(output.BoardString(m.game.Board(), &m.cfg.Output), "\n"))

	logHeight := max(5, m.height-18)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(30, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move"
	}
	inputBox := boxStyle.Width(max(30, m.width-2)).Render(inputLine)

	return header + "\n" + boardBox + "\n" + logBox + "\n" + inputBox + "\n"
}

// Log returns the lines currently held in the log.
func (m Model) Log() []string {
	out := make([]string, len(m.logLines))
	copy(out, m.logLines)
	return out
}
