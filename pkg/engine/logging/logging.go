// Package logging provides named, colour-tagged loggers for the host process.
// Lines look like "[APP] [INFO] message".
package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/gookit/color"
)

// ColorGreen is the prefix colour of the host process logger
var ColorGreen = color.Style{color.FgGreen, color.OpBold}

var (
	levelInfo  = color.Style{color.FgGreen}
	levelWarn  = color.Style{color.FgYellow}
	levelError = color.Style{color.FgRed, color.OpBold}
)

// Logger writes prefixed lines for one component
type Logger struct {
	name string
	out  *log.Logger
}

// New creates a logger for the named component, writing to w
func New(name string, style color.Style, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, fmt.Errorf("logger name must not be empty")
	}
	if w == nil {
		return nil, fmt.Errorf("logger %s: writer must not be nil", name)
	}
	prefix := style.Sprintf("[%s] ", name)
	return &Logger{name: name, out: log.New(w, prefix, log.LstdFlags)}, nil
}

// Name returns the component name
func (l *Logger) Name() string {
	return l.name
}

// Info logs an informational message
func (l *Logger) Info(msg string) {
	l.out.Print(levelInfo.Sprint("[INFO] ") + msg)
}

// Warn logs a warning
func (l *Logger) Warn(msg string) {
	l.out.Print(levelWarn.Sprint("[WARN] ") + msg)
}

// Error logs an error
func (l *Logger) Error(msg string) {
	l.out.Print(levelError.Sprint("[ERROR] ") + msg)
}

// Infof logs a formatted informational message
func (l *Logger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning
func (l *Logger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error
func (l *Logger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
