package log

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled log lines to a terminal, a rotated log file, or both.
type Logger struct {
	terminal io.Writer
	file     io.Writer

	Name  string
	Level LogLevel

	TimeFormat string
	NoColor    bool
	JSON       bool
}

// LoggerRotation configures the rotation of the log file.
type LoggerRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

// DefaultRotation is the rotation used for log files.
var DefaultRotation = LoggerRotation{
	MaxSize:    16,
	MaxBackups: 3,
	MaxAge:     28,
}

// NewLogger returns a logger writing to terminal (if not nil), and to
// the given file (if not empty), rotated according to DefaultRotation.
func NewLogger(name string, level LogLevel, terminal io.Writer, file string) *Logger {
	l := &Logger{
		terminal:   terminal,
		Name:       name,
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}

	if file != "" {
		l.file = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    DefaultRotation.MaxSize,
			MaxBackups: DefaultRotation.MaxBackups,
			MaxAge:     DefaultRotation.MaxAge,
			Compress:   DefaultRotation.Compress,
		}
	}

	return l
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formattedMsg := fmt.Sprintf(msg, args...)

	var line string

	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formattedMsg,
		}

		jsonBytes, _ := json.Marshal(entry)
		line = string(jsonBytes)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}

		line = prefix + " " + formattedMsg
	}

	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}

	if l.terminal == nil {
		return
	}

	if l.NoColor || l.JSON {
		fmt.Fprintln(l.terminal, line)
	} else {
		level.Color().Fprintln(l.terminal, line)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named returns a logger sharing the same outputs, with name appended.
func (l *Logger) Named(name string) *Logger {
	named := *l

	if l.Name != "" {
		named.Name = fmt.Sprintf("%s/%s", l.Name, name)
	} else {
		named.Name = name
	}

	return &named
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if closer, ok := l.file.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}
