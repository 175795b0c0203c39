package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flick-arena/internal/sim"
)

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	return newLoggerTo(flagLogFile, fallback)
}

// defaultLogFile is where play mode logs when --log-file is not set.
// Empty if the home directory is unknown.
func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".flick")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	return filepath.Join(dir, "flick.log")
}

func newLoggerTo(path string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flick",
		Level:           level,
	})
	return logger, closeFn, nil
}

// eventLog writes every engine event at debug level.
type eventLog struct {
	logger *log.Logger
}

// Emit implements sim.EventSink.
func (e eventLog) Emit(ev sim.Event) {
	e.logger.Debug("engine event", "event", ev.Kind, "level", ev.Level, "t", fmt.Sprintf("%.2f", ev.Time))
}
