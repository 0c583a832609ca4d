package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatPretty  = "pretty"
	FormatJSON    = "json"
)

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	logger  zerolog.Logger
	service string
}

// Init initializes the global logger from config.
func Init(cfg *Config) {
	cfg.ApplyDefaults()
	SetGlobalLogger(New(cfg, cfg.ServiceName))
}

// New creates a new logger instance with configuration.
func New(cfg *Config, serviceName string) *Logger {
	return NewWithWriter(outputWriter(cfg.Output), cfg, serviceName)
}

// NewWithWriter creates a logger that writes to w instead of the configured output.
func NewWithWriter(w io.Writer, cfg *Config, serviceName string) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case FormatConsole, FormatPretty:
		zl = zerolog.New(consoleWriter(w, cfg.NoColor, serviceName))
	default:
		zl = zerolog.New(w)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	return &Logger{logger: zl, service: serviceName}
}

// NewDefault creates a logger with default configuration.
func NewDefault(serviceName string) *Logger {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return New(cfg, serviceName)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger:  l.logger.With().Str(FieldComponent, name).Logger(),
		service: l.service,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), service: l.service}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger:  l.logger.With().Err(err).Logger(),
		service: l.service,
	}
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Debug(), msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Info(), msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Warn(), msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	emit(l.logger.Error(), msg, fields...)
}

// --- Global logger ---

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = NewDefault("prism")
	}
	return globalLogger
}

// Package-level convenience functions delegate to the global logger.

func Debug(msg string, fields ...map[string]interface{}) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...map[string]interface{}) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...map[string]interface{}) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...map[string]interface{}) {
	GetGlobalLogger().Error(msg, fields...)
}

// WithComponent returns a component-tagged logger from the global logger.
func WithComponent(name string) *Logger {
	return GetGlobalLogger().WithComponent(name)
}

// --- internal helpers ---

func emit(event *zerolog.Event, msg string, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

var levelTags = map[string]string{
	"TRACE": "[TRC]",
	"DEBUG": "[DBG]",
	"INFO":  "[INF]",
	"WARN":  "[WRN]",
	"ERROR": "[ERR]",
	"FATAL": "[FTL]",
}

var levelColors = map[string]string{
	"DEBUG": "\033[36m",
	"INFO":  "\033[32m",
	"WARN":  "\033[33m",
	"ERROR": "\033[31m",
	"FATAL": "\033[35m",
}

func consoleWriter(w io.Writer, noColor bool, serviceName string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag, ok := levelTags[lvl]
			if !ok {
				tag = fmt.Sprintf("[%s]", lvl)
			}
			if color, ok := levelColors[lvl]; ok && !noColor {
				tag = color + tag + "\033[0m"
			}
			if len(serviceName) >= 3 {
				svc := fmt.Sprintf("[%s]", strings.ToUpper(serviceName[:3]))
				if !noColor {
					svc = "\033[34m" + svc + "\033[0m"
				}
				return svc + tag
			}
			return tag
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
	}
}
