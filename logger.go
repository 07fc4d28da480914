// A process-wide, severity-classified logging package for Go. Routes messages
// to any combination of the system log, the console streams and an append-mode
// text file under one shared configuration, with timestamped, colorized and
// filtered output.
package slg

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Logger is the central state holder: the shared configuration, the one-shot
// sink override and the backend handles. One mutex guards all of it; every
// setter applies under the lock and every emit holds the lock from the
// threshold check to the last backend write, so concurrent callers never
// interleave their output.
//
// The zero value is not ready to use; construct with Init or InitWithParams,
// or share the process-wide instance returned by Default.
type Logger struct {
	mu sync.Mutex

	program string   // identity announced to the system log
	sinks   SinkSet  // default destination set
	level   Severity // least urgent severity still emitted
	color   bool     // wrap console lines in ANSI color by severity
	oneshot SinkSet  // pending one-shot destination override (SINK_NONE when absent)

	fpath  string   // file sink destination
	file   *os.File // lazily opened append handle, nil until the first write
	fileOK bool     // false after a file failure until the path changes

	conout io.Writer // standard console stream
	conerr io.Writer // urgent console stream

	system  SystemSink // open system log attachment, nil until first use
	sysfail bool       // last lazy system attach failed, do not retry

	msgbuf *bytes.Buffer // buffer reused while building formatted output
}

// Init creates a logger with default parameters: console output only, every
// severity passed, colors off, program identity taken from the executable
// name.
//
// Preferred usage example:
//
//	func main() {
//	    log := slg.Init().SetProgram("myapp").SetFile("/var/log/myapp.log")
//	    defer log.Close()
//	    ...
//	}
func Init() *Logger {
	return InitWithParams(DEFAULT_SEVERITY, DEFAULT_SINKS)
}

// InitWithParams constructs a logger with an explicit severity floor and
// destination set.
func InitWithParams(level Severity, sinks SinkSet) *Logger {
	l := new(Logger)
	l.program = filepath.Base(os.Args[0])
	l.conout = os.Stdout
	l.conerr = os.Stderr
	l.fileOK = true
	l.msgbuf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	l.SetLevel(level)
	l.SetOutput(sinks)
	return l
}

// SetProgram sets the identity announced to the system log. Any open system
// log attachment is closed and reopened lazily under the new name.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetProgram(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.program = name
	l.closeSystem()
	return l
}

// SetColor toggles ANSI coloring of console lines.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetColor(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = enabled
	return l
}

// SetLevel sets the severity floor. Messages less urgent than the floor are
// dropped; an out-of-range value falls back to DEFAULT_SEVERITY, which passes
// everything.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetLevel(level Severity) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = normSeverity(level)
	return l
}

// SetOutput replaces the default destination set. Unknown bits are masked
// off; the empty set is valid and silences the logger.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetOutput(sinks SinkSet) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = normSinks(sinks)
	return l
}

// SetFile sets the file sink destination. Any previously open handle is
// closed here; the new path is opened lazily on the next write attempt, so an
// invalid path surfaces as a reported failure then, never as an error from
// this setter.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetFile(path string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeFile()
	l.fpath = path
	l.fileOK = true
	return l
}

// SetConsole replaces the console stream writers, e.g. with buffers in tests
// or with wrapped streams. A nil writer restores the corresponding process
// stream, [os.Stdout] or [os.Stderr].
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetConsole(out, err io.Writer) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if err == nil {
		err = os.Stderr
	}
	l.conout = out
	l.conerr = err
	return l
}

// SetSystemSink replaces the system log attachment, closing any open one.
// Passing nil reverts to the lazily attached platform backend.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetSystemSink(sink SystemSink) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeSystem()
	l.system = sink
	return l
}

// Now stores a one-shot destination override consumed by exactly the next
// emitted message, even one filtered out by the severity floor. It returns
// the same logger so the override chains straight into an emit:
//
//	log.Now(slg.Sinks().Console()).Error("to console only")
//
// An empty set cancels a previously stored override; storing twice keeps the
// later set.
func (l *Logger) Now(sinks SinkSet) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.oneshot = normSinks(sinks)
	return l
}

// Close releases the backend handles: the log file and the system log
// attachment. A file close failure is reported through the remaining sinks,
// never returned. The logger stays usable after Close; backends reopen
// lazily on the next write.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeFile()
	l.closeSystem()
}
