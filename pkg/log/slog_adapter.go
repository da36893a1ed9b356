package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger.
// Useful for development when you want to see source activity in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("source_id", event.SourceID),
		slog.String("op", event.Op.String()),
	}
	if event.SourceName != "" {
		attrs = append(attrs, slog.String("source", event.SourceName))
	}

	switch {
	case event.Read != nil:
		attrs = append(attrs,
			slog.Bool("has_value", event.Read.HasValue),
			slog.Duration("duration", event.Read.Duration),
		)
		if event.Read.Status != "" {
			attrs = append(attrs, slog.String("status", event.Read.Status))
		}
		if event.Read.Ranged {
			attrs = append(attrs, slog.Bool("ranged", true))
		}
	case event.Write != nil:
		attrs = append(attrs,
			slog.String("status", event.Write.Status),
			slog.Duration("duration", event.Write.Duration),
		)
		if event.Write.Ranged {
			attrs = append(attrs, slog.Bool("ranged", true))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "datasource", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
