package yawg

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type LogLevelType uint8

const (
	LevelVerbose LogLevelType = 50
	LevelDebug   LogLevelType = 40
	LevelInfo    LogLevelType = 30
	LevelWarn    LogLevelType = 20
	LevelError   LogLevelType = 10
	LevelQuiet   LogLevelType = 0
)

var (
	nameToLevels = map[string]LogLevelType{
		"verbose": LevelVerbose,
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"error":   LevelError,
		"quiet":   LevelQuiet,
	}
	levelToZerolog = map[LogLevelType]zerolog.Level{
		LevelVerbose: zerolog.TraceLevel,
		LevelDebug:   zerolog.DebugLevel,
		LevelInfo:    zerolog.InfoLevel,
		LevelWarn:    zerolog.WarnLevel,
		LevelError:   zerolog.ErrorLevel,
		LevelQuiet:   zerolog.Disabled,
	}
)

var (
	logLevel LogLevelType = LevelInfo
	logger                = newLogger(os.Stderr, LevelInfo)
)

func newLogger(w io.Writer, level LogLevelType) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(levelToZerolog[level]).With().Timestamp().Logger()
}

// SetLogOutput redirects log lines, keeping the current level.
func SetLogOutput(w io.Writer) {
	logger = newLogger(w, logLevel)
}

func SetLogLevel(level LogLevelType) {
	logLevel = level
	logger = logger.Level(levelToZerolog[level])
}

func SetLogLevelByName(name string) error {
	level, ok := nameToLevels[name]
	if !ok {
		return errors.Errorf("unknown log level: %s", name)
	}
	SetLogLevel(level)
	return nil
}

func GetLogLevel() LogLevelType {
	return logLevel
}

func Logf(level LogLevelType, format string, args ...interface{}) {
	if level > logLevel || level == LevelQuiet {
		return
	}
	logger.WithLevel(levelToZerolog[level]).Msgf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Logf(LevelError, format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logf(LevelWarn, format, args...)
}

func Infof(format string, args ...interface{}) {
	Logf(LevelInfo, format, args...)
}

func Debugf(format string, args ...interface{}) {
	Logf(LevelDebug, format, args...)
}

func Verbosef(format string, args ...interface{}) {
	Logf(LevelVerbose, format, args...)
}

// LogProperties dumps all properties at debug level.
func LogProperties(p Properties) {
	if logLevel < LevelDebug {
		return
	}
	for _, k := range p.Keys() {
		Debugf("property %s=%q", k, p[k])
	}
}
