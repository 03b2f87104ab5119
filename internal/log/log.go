// Package log supports leveled, context-aware logging for the huff command.
package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"

	"cloud.google.com/go/logging"
)

// Severity is the level of a log entry.
type Severity = logging.Severity

// Severities understood by SetLevel.
const (
	SeverityDefault  = logging.Default
	SeverityDebug    = logging.Debug
	SeverityInfo     = logging.Info
	SeverityWarning  = logging.Warning
	SeverityError    = logging.Error
	SeverityCritical = logging.Critical
)

var (
	mu     sync.Mutex
	logger interface {
		log(context.Context, Severity, interface{})
	} = newStdlibLogger(os.Stderr)

	// currentLevel holds the current minimum severity. Entries below it are
	// dropped. SeverityDefault lets everything through.
	currentLevel = SeverityDefault
)

// fileKey is the type of the context key for the name of the file being
// processed.
type fileKey struct{}

// NewContextWithFile creates a new context from ctx that adds the name of
// the file being processed. Entries logged with the result are tagged with
// it.
func NewContextWithFile(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, fileKey{}, name)
}

// stdlibLogger uses the Go standard library logger.
type stdlibLogger struct {
	l *stdlog.Logger
}

func newStdlibLogger(w io.Writer) stdlibLogger {
	return stdlibLogger{l: stdlog.New(w, "", stdlog.LstdFlags)}
}

func (sl stdlibLogger) log(ctx context.Context, s Severity, payload interface{}) {
	file, _ := ctx.Value(fileKey{}).(string) // if not present, file is ""
	if file != "" {
		sl.l.Printf("%s (%s): %+v", s, file, payload)
	} else {
		sl.l.Printf("%s: %+v", s, payload)
	}
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newStdlibLogger(w)
}

// SetLevel sets the minimum severity that will be logged. It accepts the
// usual severity names, case-insensitively, plus "fatal" as an alias for
// "critical". An empty or unknown name selects SeverityDefault, which logs
// everything.
func SetLevel(v string) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = toLevel(v)
}

func getLevel() Severity {
	mu.Lock()
	defer mu.Unlock()
	return currentLevel
}

func toLevel(v string) Severity {
	if strings.EqualFold(v, "fatal") {
		return SeverityCritical
	}
	return logging.ParseSeverity(v)
}

// Debugf logs a formatted string at the Debug level.
func Debugf(ctx context.Context, format string, args ...interface{}) {
	logf(ctx, SeverityDebug, format, args)
}

// Infof logs a formatted string at the Info level.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logf(ctx, SeverityInfo, format, args)
}

// Warningf logs a formatted string at the Warning level.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logf(ctx, SeverityWarning, format, args)
}

// Errorf logs a formatted string at the Error level.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logf(ctx, SeverityError, format, args)
}

// Fatalf is equivalent to Errorf followed by exiting the program.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	Errorf(ctx, format, args...)
	os.Exit(1)
}

func logf(ctx context.Context, s Severity, format string, args []interface{}) {
	doLog(ctx, s, fmt.Sprintf(format, args...))
}

// Debug logs arg, which can be a string or a struct, at the Debug level.
func Debug(ctx context.Context, arg interface{}) { doLog(ctx, SeverityDebug, arg) }

// Info logs arg, which can be a string or a struct, at the Info level.
func Info(ctx context.Context, arg interface{}) { doLog(ctx, SeverityInfo, arg) }

// Error logs arg, which can be a string or a struct, at the Error level.
func Error(ctx context.Context, arg interface{}) { doLog(ctx, SeverityError, arg) }

func doLog(ctx context.Context, s Severity, payload interface{}) {
	mu.Lock()
	l := logger
	level := currentLevel
	mu.Unlock()
	if s < level {
		return
	}
	l.log(ctx, s, payload)
}
