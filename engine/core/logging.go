package core

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

type LogLevel = log.Level

const (
	DebugLevel = log.DebugLevel
	InfoLevel  = log.InfoLevel
	WarnLevel  = log.WarnLevel
	ErrorLevel = log.ErrorLevel
	FatalLevel = log.FatalLevel
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

// One child per prefix. Instances share it and carry their own keyvals, so
// the registry only grows with the number of components.
var (
	derivedMu sync.Mutex
	derived   = map[string]*log.Logger{}
)

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Engine 🏎️ ",
			})
			l.SetLevel(log.InfoLevel)
			singleton = &logger{l}
		})
	return singleton
}

// SetLogLevel changes the level of the engine logger and of every logger
// derived from it through NewLogger.
func SetLogLevel(level LogLevel) {
	getLogger().SetLevel(level)
	derivedMu.Lock()
	defer derivedMu.Unlock()
	for _, l := range derived {
		l.SetLevel(level)
	}
}

func GetLogLevel() LogLevel {
	return getLogger().GetLevel()
}

// SetLogOutput redirects the engine logger. Mostly useful in tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
	derivedMu.Lock()
	defer derivedMu.Unlock()
	for _, l := range derived {
		l.SetOutput(w)
	}
}

// ParseLogLevel accepts the level names used in config files and flags.
func ParseLogLevel(s string) (LogLevel, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}

// Logger is a prefixed child of the engine logger. Every line it writes
// carries the key/value pairs it was created with.
type Logger struct {
	l       *log.Logger
	keyvals []interface{}
}

// NewLogger returns a child of the engine logger with a different prefix
// and the given key/value pairs attached to every line. It follows the
// level and output of the engine logger.
func NewLogger(prefix string, keyvals ...interface{}) *Logger {
	derivedMu.Lock()
	defer derivedMu.Unlock()
	l, ok := derived[prefix]
	if !ok {
		l = getLogger().With()
		l.SetPrefix(prefix)
		derived[prefix] = l
	}
	return &Logger{l: l, keyvals: keyvals}
}

func (l *Logger) with(keyvals []interface{}) []interface{} {
	if len(l.keyvals) == 0 {
		return keyvals
	}
	return append(l.keyvals[:len(l.keyvals):len(l.keyvals)], keyvals...)
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.l.Helper()
	l.l.Debug(msg, l.with(keyvals)...)
}

func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.l.Helper()
	l.l.Info(msg, l.with(keyvals)...)
}

func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.l.Helper()
	l.l.Warn(msg, l.with(keyvals)...)
}

func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.l.Helper()
	l.l.Error(msg, l.with(keyvals)...)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Helper()
	getLogger().Fatalf(msg, args...)
}
