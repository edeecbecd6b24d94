package logger

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// callerSkip points the caller field at the code calling ZeroLogger, not at ZeroLogger itself.
const callerSkip = 3

// ZeroLogger writes JSON lines with zerolog. Each instance owns its own zerolog.Logger.
type ZeroLogger struct {
	mu            sync.RWMutex
	writer        io.Writer
	level         Level
	defaultFields Fields
	zl            zerolog.Logger
}

// NewZeroLogger returns a logger writing to writer at level, stamping every line with defaultFields.
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	l := &ZeroLogger{writer: writer, defaultFields: Fields{}}
	for k, v := range defaultFields {
		l.defaultFields[k] = v
	}
	l.SetLevel(level)
	return l
}

func zerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZeroLogger) logger() *zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zl := l.zl
	return &zl
}

func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.logger().Info().Fields(properties).Msg(message)
}

func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	if err == nil {
		return
	}
	l.logger().Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal logs and exits the process.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	event := l.logger().Fatal().Fields(properties)
	if err != nil {
		event = event.Err(err)
		event.Msg(err.Error())
		return
	}
	event.Msg("fatal")
}

func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.logger().Debug().Fields(properties).Msg(message)
}

// SetLevel rebuilds the underlying logger at level.
func (l *ZeroLogger) SetLevel(level Level) {
	zl := zerolog.New(l.writer).
		With().
		Fields(map[string]interface{}(l.defaultFields)).
		Timestamp().
		CallerWithSkipFrameCount(callerSkip).
		Logger().
		Level(zerologLevel(level))

	l.mu.Lock()
	l.level = level
	l.zl = zl
	l.mu.Unlock()
}
