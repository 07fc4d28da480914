package slg

// Console backend. Stream selection is fixed: ERROR and more urgent
// severities go to the error stream, the rest to the standard stream.
// Console output is best effort, write errors are dropped.

// writeConsole picks the stream by urgency and writes one formatted line,
// colorized when the color flag is on. Runs with l.mu held.
func (l *Logger) writeConsole(sev Severity, stamp, msg string) {
	out := l.conout
	if sev <= SEV_ERROR {
		out = l.conerr
	}
	buildLine(l.msgbuf, stamp, sev, msg, l.color)
	l.msgbuf.WriteTo(out)
}
