package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger writing to w at level and above. A nil w means
// stderr.
func New(w io.Writer, level slog.Leveler, extractors ...ContextExtractor) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(Wrap(h, extractors...))
}

// NewNope creates a logger that discards everything. Libraries use it until
// a caller supplies a real one.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
