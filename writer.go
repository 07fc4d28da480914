package slg

/*********************************************************************************
io.Writer adapter

Writer pins a severity and logs every Write call as one message, which plugs
the logger into fmt.Fprintf and into libraries expecting a plain writer:

	fmt.Fprintf(log.Writer(slg.SEV_WARNING), "disk low: %d%%", percent)

One trailing newline is trimmed from the payload; the backends add the line
terminator back.
*/

import (
	"io"
	"strings"
)

// sevWriter forwards writes to its logger at a fixed severity.
type sevWriter struct {
	logger *Logger
	sev    Severity
}

// Writer returns an io.Writer that emits each Write as one message at the
// given severity (normalized to the valid range).
func (l *Logger) Writer(sev Severity) io.Writer {
	return &sevWriter{logger: l, sev: normSeverity(sev)}
}

// Write implements io.Writer. A nil payload is treated as a zero-length
// write. The returned error is always nil: delivery problems are contained
// by the dispatcher, not surfaced through the writer.
func (w *sevWriter) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	w.logger.emit(w.sev, strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
