package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// JSONResult represents a replayed script in JSON format.
type JSONResult struct {
	Line     int        `json:"line"`
	Moves    []JSONMove `json:"moves"`
	PlyCount int        `json:"plyCount"`
	Finished bool       `json:"finished"`
	Winner   string     `json:"winner,omitempty"`
	FinalFEN string     `json:"finalFEN,omitempty"`
	Error    string     `json:"error,omitempty"`
	ErrorPly int        `json:"errorPly,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply    int    `json:"ply"`
	Colour string `json:"colour"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a replay result to JSON format.
func ResultToJSON(r *processing.Result) *JSONResult {
	jr := &JSONResult{
		Line:     r.Script.Line,
		Moves:    make([]JSONMove, 0, len(r.Plies)),
		PlyCount: len(r.Plies),
		Finished: r.Finished,
		FinalFEN: r.FinalFEN,
	}

	colour := r.FirstToMove
	for i, m := range r.Plies {
		jr.Moves = append(jr.Moves, JSONMove{
			Ply:    i + 1,
			Colour: colourName(colour),
			From:   m.From.String(),
			To:     m.To.String(),
		})
		colour = colour.Opposite()
	}

	if r.Finished {
		jr.Winner = colourName(r.Winner)
	}
	if ply, msg := errorContext(r); msg != "" {
		jr.Error = msg
		jr.ErrorPly = ply
	}
	return jr
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// writeJSON encodes v indented.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
