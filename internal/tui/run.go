package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Run plays g in a full-screen terminal UI until the user quits.
func Run(g *game.Game, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(g, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
