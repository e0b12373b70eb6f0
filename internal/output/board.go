// Package output renders boards and replay results as text or JSON.
package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Glyphs indexed by [colour][kind].
var unicodeGlyphs = [2][chess.NumKinds]string{
	chess.White: {"♙", "♘", "♗", "♖", "♕", "♔"},
	chess.Black: {"♟", "♞", "♝", "♜", "♛", "♚"},
}

// pieceSymbol returns the symbol for p, or "" for an empty tile.
func pieceSymbol(p *chess.Piece, unicode bool) string {
	if p == nil {
		return ""
	}
	if unicode {
		return unicodeGlyphs[p.Colour()][p.Kind()]
	}
	return string(p.Letter())
}

// tileStyles returns the lipgloss styles for light and dark tiles.
func tileStyles(cfg *config.OutputConfig) (light, dark lipgloss.Style) {
	base := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000"))
	return base.Copy().Background(lipgloss.Color(cfg.LightTile)),
		base.Copy().Background(lipgloss.Color(cfg.DarkTile))
}

// BoardString renders view with rank 8 at the top. Plain output uses one
// character per tile separated by spaces, with '.' for empty tiles.
// Styled output draws three-cell tiles coloured by their display colour.
func BoardString(view chess.BoardView, cfg *config.OutputConfig) string {
	var light, dark lipgloss.Style
	if cfg.Styled {
		light, dark = tileStyles(cfg)
	}

	var b strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		if cfg.Coordinates {
			b.WriteByte(byte(chess.RankBase + rank))
			b.WriteByte(' ')
		}
		for file := 0; file < chess.BoardSize; file++ {
			tile := view.TileAt(chess.Pos(file, rank))
			sym := pieceSymbol(tile.Occupant, cfg.Unicode)

			if cfg.Styled {
				if sym == "" {
					sym = " "
				}
				style := dark
				if tile.Colour == chess.Light {
					style = light
				}
				b.WriteString(style.Render(" " + sym + " "))
				continue
			}

			if file > 0 {
				b.WriteByte(' ')
			}
			if sym == "" {
				sym = "."
			}
			b.WriteString(sym)
		}
		b.WriteByte('\n')
	}

	if cfg.Coordinates {
		b.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			if cfg.Styled {
				b.WriteString(" " + string(rune(chess.FileBase+file)) + " ")
				continue
			}
			if file > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(byte(chess.FileBase + file))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderBoard writes view to w.
func RenderBoard(w io.Writer, view chess.BoardView, cfg *config.OutputConfig) error {
	_, err := io.WriteString(w, BoardString(view, cfg))
	return err
}
