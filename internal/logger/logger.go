// Package logger is the CLI's output surface: pterm-backed leveled
// events with a chainable Msgf, nothing else.
package logger

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

type Logger struct {
	mu      sync.Mutex
	verbose bool
	debug   bool
}

var DefaultLogger *Logger

func init() {
	DefaultLogger = &Logger{}

	pterm.EnableDebugMessages()

	safeWriter := NewSafeWriter(os.Stdout)

	pterm.Info = *pterm.Info.WithWriter(safeWriter)
	pterm.Debug = *pterm.Debug.WithWriter(safeWriter)
	pterm.Error = *pterm.Error.WithWriter(safeWriter)
	pterm.Warning = *pterm.Warning.WithWriter(safeWriter)
	pterm.Success = *pterm.Success.WithWriter(safeWriter)
}

type Event struct {
	logger  *Logger
	printer pterm.PrefixPrinter
}

type SafeWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

func (sw *SafeWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	newP := make([]byte, 0, len(p)+2)
	newP = append(newP, '\r')
	newP = append(newP, p...)
	if !bytes.HasSuffix(newP, []byte("\n")) {
		newP = append(newP, '\n')
	}

	return sw.w.Write(newP)
}

func (l *Logger) newEvent(printer pterm.PrefixPrinter) *Event {
	return &Event{logger: l, printer: printer}
}

func Info() *Event {
	return DefaultLogger.newEvent(pterm.Info)
}

func Success() *Event {
	return DefaultLogger.newEvent(pterm.Success)
}

func Error() *Event {
	return DefaultLogger.newEvent(pterm.Error)
}

func Warning() *Event {
	return DefaultLogger.newEvent(pterm.Warning)
}

func Debug() *Event {
	if !DefaultLogger.IsDebugEnabled() {
		return nil
	}
	return DefaultLogger.newEvent(pterm.Debug)
}

func Verbose() *Event {
	if !DefaultLogger.IsVerboseEnabled() {
		return nil
	}
	return DefaultLogger.newEvent(pterm.Info)
}

func (e *Event) Msgf(format string, args ...any) {
	if e == nil {
		return
	}
	e.logger.mu.Lock()
	defer e.logger.mu.Unlock()
	e.printer.Printfln(format, args...)
}

func (l *Logger) EnableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = true
}

func (l *Logger) EnableVerbose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = true
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) IsVerboseEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func EnableDebug() {
	DefaultLogger.EnableDebug()
}

func EnableVerbose() {
	DefaultLogger.EnableVerbose()
}
