// Package logger provides structured logging for the classify binary.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/feedlattice/classify/internal/ladder"
	"github.com/feedlattice/classify/internal/tracing"
)

// Level represents log levels.
type Level = zerolog.Level

// Log levels.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Logger wraps zerolog for structured logging.
type Logger struct {
	zl zerolog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level      Level
	Pretty     bool // Use console writer (colored output)
	Output     io.Writer
	TimeFormat string
	Component  string // Component name (e.g., "classify", "cli")
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      InfoLevel,
		Pretty:     true,
		Output:     os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// New creates a new logger with the given configuration.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}

	zerolog.TimeFieldFormat = cfg.TimeFormat

	var output io.Writer = cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	zl := zerolog.New(output).
		With().
		Timestamp().
		Logger().
		Level(cfg.Level)

	if cfg.Component != "" {
		zl = zl.With().Str("component", cfg.Component).Logger()
	}

	return &Logger{zl: zl}
}

// NewDefault creates a logger with default configuration.
func NewDefault() *Logger {
	return New(DefaultConfig())
}

// NewJSON creates a JSON-only logger (no pretty printing).
func NewJSON(level Level) *Logger {
	return New(Config{
		Level:  level,
		Pretty: false,
		Output: os.Stderr,
	})
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// WithField returns a new logger with an additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a new logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// WithChannel returns a new logger with the channel field set.
func (l *Logger) WithChannel(channel string) *Logger {
	return &Logger{zl: l.zl.With().Str("channel", channel).Logger()}
}

// WithRung returns a new logger with the rung field set.
func (l *Logger) WithRung(rung ladder.Rung) *Logger {
	return &Logger{zl: l.zl.With().Str("rung", rung.String()).Logger()}
}

// WithItemCount returns a new logger with the item_count field set.
func (l *Logger) WithItemCount(count int) *Logger {
	return &Logger{zl: l.zl.With().Int("item_count", count).Logger()}
}

// WithIdentifierHash returns a new logger with the identifier_hash field
// set.
func (l *Logger) WithIdentifierHash(hash string) *Logger {
	return &Logger{zl: l.zl.With().Str("identifier_hash", hash).Logger()}
}

// WithError returns a new logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}

// WithDuration returns a new logger with a duration field.
func (l *Logger) WithDuration(d time.Duration) *Logger {
	return &Logger{zl: l.zl.With().Dur("duration", d).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) { l.zl.Debug().Msg(msg) }

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) { l.zl.Debug().Msgf(format, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string) { l.zl.Info().Msg(msg) }

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) { l.zl.Info().Msgf(format, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string) { l.zl.Warn().Msg(msg) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) { l.zl.Warn().Msgf(format, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string) { l.zl.Error().Msg(msg) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) { l.zl.Error().Msgf(format, args...) }

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string) { l.zl.Fatal().Msg(msg) }

// Event returns a zerolog Event for complex logging.
func (l *Logger) Event(level Level) *zerolog.Event {
	switch level {
	case DebugLevel:
		return l.zl.Debug()
	case InfoLevel:
		return l.zl.Info()
	case WarnLevel:
		return l.zl.Warn()
	case ErrorLevel:
		return l.zl.Error()
	case FatalLevel:
		return l.zl.Fatal()
	default:
		return l.zl.Info()
	}
}

// ClassifyEvent logs a classification result with standard fields.
func (l *Logger) ClassifyEvent(channel string, rung ladder.Rung, inserts, updates int) {
	l.zl.Info().
		Str("channel", channel).
		Str("rung", rung.String()).
		Int("inserts", inserts).
		Int("updates", updates).
		Msg("batch classified")
}

// StatsEvent logs a summary of arbitrary counters.
func (l *Logger) StatsEvent(stats map[string]interface{}) {
	event := l.zl.Info()
	for k, v := range stats {
		event = event.Interface(k, v)
	}
	event.Msg("classification statistics")
}

// SetLevel changes the log level.
func (l *Logger) SetLevel(level Level) {
	l.zl = l.zl.Level(level)
}

// ParseLevel parses a level string.
func ParseLevel(levelStr string) (Level, error) {
	return zerolog.ParseLevel(levelStr)
}

// Global logger instance.
var globalLogger = NewDefault()

// SetGlobal sets the global logger.
func SetGlobal(l *Logger) { globalLogger = l }

// Global returns the global logger.
func Global() *Logger { return globalLogger }

// TraceSink adapts the engine's trace event stream (internal/tracing)
// into structured log lines on l, one per event, at debug level. Pass
// the result as a classifyengine.Policy.Trace.
func TraceSink(l *Logger) tracing.Sink {
	return func(ev tracing.Event) {
		switch e := ev.(type) {
		case tracing.DepthResolved:
			l.Event(DebugLevel).Str("rung", e.Depth.String()).Bool("changed", e.Changed).Msg("identityDepth.resolved")
		case tracing.CandidatesFound:
			l.Event(DebugLevel).Str("phase", e.Phase).Str("source", e.Source.String()).Int("count", e.Count).Msg("candidates.found")
		case tracing.CandidatesGated:
			l.Event(DebugLevel).Str("phase", e.Phase).Str("source", e.Source.String()).
				Str("gate", e.GateName).Str("reason", e.Reason).
				Int("before", e.Before).Int("after", e.After).Msg("candidates.gated")
		case tracing.CandidatesDepthFiltered:
			l.Event(DebugLevel).Int("before", e.Before).Int("after", e.After).
				Str("rung", e.IdentityDepth.String()).Msg("candidates.depthFiltered")
		case tracing.MatchSelected:
			l.Event(DebugLevel).Str("phase", e.Phase).Str("source", e.Source.String()).
				Str("existing_item_id", e.ExistingItemID).Msg("match.selected")
		case tracing.MatchAmbiguous:
			l.Event(DebugLevel).Str("phase", e.Phase).Str("source", e.Source.String()).
				Int("count", e.Count).Msg("match.ambiguous")
		case tracing.MatchNone:
			l.Event(DebugLevel).Str("phase", e.Phase).Msg("match.none")
		case tracing.ClassifyInsert:
			l.Event(DebugLevel).Str("identifier_hash", string(e.IdentifierHash)).Msg("classify.insert")
		case tracing.ClassifyUpdate:
			l.Event(DebugLevel).Str("identifier_hash", string(e.IdentifierHash)).
				Str("existing_item_id", e.ExistingItemID).Msg("classify.update")
		case tracing.ClassifySkip:
			l.Event(DebugLevel).Str("existing_item_id", e.ExistingItemID).Msg("classify.skip")
		}
	}
}
