package checker

import (
	"context"
	"log/slog"
)

// LoggingObserver logs every check event using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer.
// A nil logger falls back to slog.Default().
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{
		logger: logger,
	}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	switch event.Type {
	case EventTableSkipped:
		level = slog.LevelWarn
	case EventCheckEnd:
		level = slog.LevelInfo
	}

	lo.logger.Log(context.Background(), level, "structure_check",
		"event", event.Type,
		"run_id", event.RunID,
		"collection", event.Collection,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
