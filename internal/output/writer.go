package output

import (
	"io"
)

// GameWriter is the interface for writing finished games.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes games as text summaries.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// WriteGame writes a game summary.
func (tw *TextWriter) WriteGame(rec GameRecord) error {
	OutputGame(tw.w, rec, tw.maxLineLength)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as one JSON document on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []GameRecord
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]GameRecord, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(rec GameRecord) error {
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	err := OutputGamesJSON(jw.w, jw.games)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// NewGameWriter returns a JSON or text writer.
func NewGameWriter(w io.Writer, jsonFormat bool) GameWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, 80)
}
