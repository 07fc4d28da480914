package slg

// SystemSink is the narrow contract to the platform system log: accept one
// raw message with its severity, release the attachment on Close. The
// platform backend (syslog on unix, the event log on Windows) implements
// it; tests and embedders may inject their own with SetSystemSink.
type SystemSink interface {
	Emit(sev Severity, msg string) error
	Close() error
}

// emitSystem hands the raw, undecorated message to the system log, attaching
// lazily under the configured program name on first use. The system log is
// best effort: all failures are swallowed, and a failed attach is remembered
// and not retried until the program name changes or a sink is injected.
// Runs with l.mu held.
func (l *Logger) emitSystem(sev Severity, msg string) {
	if l.system == nil {
		if l.sysfail {
			return
		}
		sink, err := openSystemSink(l.program)
		if err != nil {
			l.sysfail = true
			return
		}
		l.system = sink
	}
	l.system.Emit(sev, msg)
}

// closeSystem releases the system log attachment if one is open. Close
// failures are swallowed like every other system log failure. Runs with
// l.mu held.
func (l *Logger) closeSystem() {
	if l.system != nil {
		l.system.Close()
		l.system = nil
	}
	l.sysfail = false
}
