// Package logging sets up the zerolog logger: console plus log file, with
// an optional Graylog GELF sink when configured.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// ParseLevel converts a string log level to a zerolog level. Unknown values
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogFilePath builds a log file path using OS-appropriate path separators.
func LogFilePath(logsDir, name string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")),
	)
}

// Setup configures the global zerolog level and returns a logger writing
// console format to stdout and, when a file can be opened in the configured
// logs directory, an uncolored copy to that file. When graylog.enabled is
// set, GELF output is added as a third sink.
func Setup(name string) (zerolog.Logger, error) {
	zerolog.SetGlobalLevel(ParseLevel(viper.GetString("logLevel")))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		},
	}

	logsDir := viper.GetString("logsDir")
	if logsDir != "" {
		if err := os.MkdirAll(logsDir, 0o755); err == nil {
			file, err := os.OpenFile(
				LogFilePath(logsDir, name, time.Now().UTC()),
				os.O_CREATE|os.O_WRONLY|os.O_APPEND,
				0o644,
			)
			if err == nil {
				writers = append(writers, zerolog.ConsoleWriter{
					Out:        file,
					TimeFormat: time.RFC3339,
					NoColor:    true,
				})
			}
		}
	}

	if viper.GetBool("graylog.enabled") {
		gelfWriter, err := gelf.NewWriter(viper.GetString("graylog.address"))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("connecting to graylog: %w", err)
		}
		writers = append(writers, gelfWriter)
	}

	log := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Str("component", name).Logger()
	return log, nil
}
