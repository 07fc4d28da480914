package slg

/*
The process-wide default logger and the package-level functions delegating
to it. Most programs need exactly one logging configuration, so the package
surface mirrors the whole Logger API against a lazily created shared
instance:

	slg.SetProgram("myapp").SetLevel(slg.SEV_WARNING)
	slg.Warning("running low")

Programs wanting several independent loggers construct them with Init or
InitWithParams instead.
*/

import (
	"io"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger, creating it with default
// parameters on first use. Creation is race-free under concurrent first
// access.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = Init()
	})
	return defaultLogger
}

// SetProgram sets the system log identity of the default logger.
func SetProgram(name string) *Logger { return Default().SetProgram(name) }

// SetColor toggles ANSI coloring on the default logger.
func SetColor(enabled bool) *Logger { return Default().SetColor(enabled) }

// SetLevel sets the severity floor of the default logger.
func SetLevel(level Severity) *Logger { return Default().SetLevel(level) }

// SetOutput replaces the destination set of the default logger.
func SetOutput(sinks SinkSet) *Logger { return Default().SetOutput(sinks) }

// SetFile sets the file sink destination of the default logger.
func SetFile(path string) *Logger { return Default().SetFile(path) }

// SetConsole redirects the console streams of the default logger.
func SetConsole(out, err io.Writer) *Logger { return Default().SetConsole(out, err) }

// SetSystemSink injects a system log backend into the default logger.
func SetSystemSink(s SystemSink) *Logger { return Default().SetSystemSink(s) }

// Now stores a one-shot destination override on the default logger.
func Now(sinks SinkSet) *Logger { return Default().Now(sinks) }

// Close releases the backend handles of the default logger.
func Close() { Default().Close() }

// Writer returns an io.Writer that logs through the default logger at the
// pinned severity.
func Writer(sev Severity) io.Writer { return Default().Writer(sev) }

// Debugging emits v through the default logger at the most verbose severity.
func Debugging(v any) { Default().Debugging(v) }

// D is the single-letter alias for Debugging.
func D(v any) { Default().D(v) }

// Alert emits v through the default logger at ALERT severity.
func Alert(v any) { Default().Alert(v) }

// A is the single-letter alias for Alert.
func A(v any) { Default().A(v) }

// Critical emits v through the default logger at CRITICAL severity.
func Critical(v any) { Default().Critical(v) }

// C is the single-letter alias for Critical.
func C(v any) { Default().C(v) }

// Error emits v through the default logger at ERROR severity.
func Error(v any) { Default().Error(v) }

// E is the single-letter alias for Error.
func E(v any) { Default().E(v) }

// Warning emits v through the default logger at WARNING severity.
func Warning(v any) { Default().Warning(v) }

// W is the single-letter alias for Warning.
func W(v any) { Default().W(v) }

// Notice emits v through the default logger at NOTICE severity.
func Notice(v any) { Default().Notice(v) }

// N is the single-letter alias for Notice.
func N(v any) { Default().N(v) }

// Information emits v through the default logger at the least urgent
// severity.
func Information(v any) { Default().Information(v) }

// I is the single-letter alias for Information.
func I(v any) { Default().I(v) }
