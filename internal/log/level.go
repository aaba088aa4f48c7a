package log

import (
	"strings"

	"github.com/fatih/color"

	"github.com/reeflective/hsh/internal/validation"
)

// LogLevel is the severity of a log entry.
type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
)

// Levels returns the names of all levels, in ascending severity.
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Color returns the terminal color of the level.
func (l LogLevel) Color() *color.Color {
	switch l {
	case Debug:
		return color.New(color.FgBlue)
	case Info:
		return color.New(color.FgGreen)
	case Warn:
		return color.New(color.FgYellow)
	case Error:
		return color.New(color.FgRed)
	default:
		return color.New(color.Reset)
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(level string) (LogLevel, error) {
	level = strings.ToLower(level)

	if err := validation.Choice(level, Levels()); err != nil {
		return Info, err
	}

	switch level {
	case "debug":
		return Debug, nil
	case "warn":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Info, nil
	}
}
