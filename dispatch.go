package slg

/*
The dispatch pipeline. One emit call is a single critical section: consume
the one-shot override, check the severity floor, resolve the effective sink
set and fan the message out to the backends in a fixed order (system log,
console, file). Internal failure diagnostics re-enter the pipeline through
report, which always masks the file sink out, so a failing file backend can
never be re-entered.

Everything below emit, including the per-sink writers it reaches, runs with
l.mu held.
*/

import (
	"bytes"
	"fmt"
	"time"
)

// emit routes one message. The one-shot override is consumed before the
// threshold check, so a message filtered by the floor still spends it.
func (l *Logger) emit(sev Severity, v any) {
	// render outside the lock, a Stringer value may itself log
	msg := fmt.Sprint(v)
	sev = normSeverity(sev)
	l.mu.Lock()
	defer l.mu.Unlock()
	sinks := l.oneshot
	l.oneshot = SINK_NONE
	if sev > l.level {
		return
	}
	if sinks == SINK_NONE {
		sinks = l.sinks
	}
	l.writeSinks(sev, sinks, msg)
}

// report re-enters the pipeline for internal diagnostics. The severity floor
// still applies and the pending override is left untouched.
func (l *Logger) report(sev Severity, sinks SinkSet, msg string) {
	if sev > l.level {
		return
	}
	l.writeSinks(sev, sinks&^SINK_FILE, msg)
}

// writeSinks walks the active sinks in the fixed order system log, console,
// file. Console and file share one timestamp so both show the same instant
// for a single call.
func (l *Logger) writeSinks(sev Severity, sinks SinkSet, msg string) {
	if sinks.Has(SINK_SYSTEM) {
		l.emitSystem(sev, msg)
	}
	if !sinks.Has(SINK_CONSOLE | SINK_FILE) {
		return
	}
	stamp := time.Now().Format(DEFAULT_TIME_FORMAT)
	if sinks.Has(SINK_CONSOLE) {
		l.writeConsole(sev, stamp, msg)
	}
	if sinks.Has(SINK_FILE) {
		l.writeFile(sev, stamp, msg, sinks)
	}
}

// buildLine assembles one output line into the provided buffer:
//
//	<timestamp> [SEVERITY]: <message>\n
//
// With color requested the piece from the severity prefix through the
// message is wrapped in the ANSI fragments for the severity.
func buildLine(buf *bytes.Buffer, stamp string, sev Severity, msg string, color bool) {
	buf.Reset()
	sev = normSeverity(sev)
	buf.WriteString(stamp)
	buf.WriteByte(' ')
	if color {
		buf.WriteString(ANSI_COL_PRFX)
		buf.WriteString(SevColorOnBlackMap[sev])
		buf.WriteString(ANSI_COL_SUFX)
	}
	buf.WriteByte('[')
	buf.WriteString(SevNames[sev])
	buf.WriteString("]: ")
	buf.WriteString(msg)
	if color {
		buf.WriteString(ANSI_COL_RESET)
	}
	buf.WriteByte('\n')
}
