package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog.Logger based on the requested format.
// format can be "text" (human-friendly console) or "json" (structured).
func Setup(format string) zerolog.Logger {
	return zerolog.New(consoleWriter(format)).With().Timestamp().Logger()
}

// SetupPipeline builds the run logger for a load: every severity goes to the
// console, error-and-above additionally goes to a per-run file named from
// the source label and start time (ErrorFileName). The returned closer owns
// the file; open it once at process start and close it at exit. Operators
// review the error file after the run.
func SetupPipeline(format, dir, label string, start time.Time) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, ErrorFileName(label, start))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open error log: %w", err)
	}

	errorSink := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: f},
		Level:  zerolog.ErrorLevel,
	}
	log := zerolog.New(zerolog.MultiLevelWriter(consoleWriter(format), errorSink)).
		With().Timestamp().Logger()

	return log, f, nil
}

// ErrorFileName derives the deterministic per-run error file name.
func ErrorFileName(label string, start time.Time) string {
	return fmt.Sprintf("errors-%s-%s.log", label, start.Format("20060102-150405"))
}

func consoleWriter(format string) io.Writer {
	if format == "text" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	return os.Stderr
}
