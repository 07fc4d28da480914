package slg

/*
File backend. The append handle is opened lazily on the first write after a
path change and kept open across writes; missing directories are never
created and the file is never rotated or truncated. Any open, write or close
failure disables the sink until the path is set again and reports the
failure through the remaining sinks: one ERROR diagnostic naming the path,
then an INFORMATION follow-up carrying the underlying error.

Everything here runs with l.mu held.
*/

import (
	"os"

	"github.com/pkg/errors"
)

// writeFile appends one formatted line to the log file, opening the handle
// first if needed. active is the sink set of the current dispatch, used to
// route failure diagnostics.
func (l *Logger) writeFile(sev Severity, stamp, msg string, active SinkSet) {
	if !l.fileOK {
		return
	}
	if l.file == nil {
		f, err := os.OpenFile(l.fpath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			l.failFile("open", err, active)
			return
		}
		l.file = f
	}
	buildLine(l.msgbuf, stamp, sev, msg, false)
	if _, err := l.msgbuf.WriteTo(l.file); err != nil {
		l.failFile("write", err, active)
	}
}

// closeFile closes the append handle if one is open. A close failure gets
// the same disable-and-report treatment as open and write failures.
func (l *Logger) closeFile() {
	if l.file == nil {
		return
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		l.failFile("close", err, l.sinks)
	}
}

// failFile disables the file sink and reports the failure through the
// remaining sinks. The caller returns normally, file trouble is never
// raised to application code.
func (l *Logger) failFile(op string, err error, active SinkSet) {
	l.fileOK = false
	l.report(SEV_ERROR, active, "log file unusable: "+l.fpath)
	l.report(SEV_INFORMATION, active, errors.Wrapf(err, "%s log file %s", op, l.fpath).Error())
}
