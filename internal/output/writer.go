package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// ResultWriter is the interface for writing replay results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r *processing.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewResultWriter returns the writer selected by cfg.
func NewResultWriter(w io.Writer, cfg *config.OutputConfig) ResultWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// errorContext returns the failing ply and message of r, or "" if r is OK.
func errorContext(r *processing.Result) (int, string) {
	if r.Err == nil {
		return 0, ""
	}
	var ge *chesserrors.GameError
	if errors.As(r.Err, &ge) {
		return ge.Ply, ge.Detail()
	}
	return 0, r.Err.Error()
}

// TextWriter writes one summary line per result, optionally followed by
// the final board.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes r as text.
func (tw *TextWriter) WriteResult(r *processing.Result) error {
	var status string
	switch {
	case r.Err != nil:
		_, msg := errorContext(r)
		status = "error: " + msg
	case r.Finished:
		status = fmt.Sprintf("checkmate, %s wins", r.Winner)
	default:
		status = "in progress"
	}

	if _, err := fmt.Fprintf(tw.w, "line %d: %d plies, %s\n", r.Script.Line, len(r.Plies), status); err != nil {
		return err
	}
	if tw.cfg.ShowBoard && r.Board != nil {
		return RenderBoard(tw.w, r.Board, tw.cfg)
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*JSONResult
	single  bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers a result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(r *processing.Result) error {
	jr := ResultToJSON(r)
	if jw.single {
		return writeJSON(jw.w, jr)
	}
	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}
	err := writeJSON(jw.w, &JSONOutput{Results: jw.results})
	jw.results = jw.results[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
