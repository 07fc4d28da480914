//go:build unix

package slg

import (
	"log/syslog"

	"github.com/pkg/errors"
)

// syslogSink adapts the platform syslog writer to the SystemSink contract.
type syslogSink struct {
	w *syslog.Writer
}

// openSystemSink attaches to the local syslog daemon under the given program
// name.
func openSystemSink(program string) (SystemSink, error) {
	w, err := syslog.New(syslog.LOG_USER|syslog.LOG_INFO, program)
	if err != nil {
		return nil, errors.Wrap(err, "attach syslog")
	}
	return &syslogSink{w: w}, nil
}

// Emit forwards the message at the syslog priority matching the severity.
// DEBUGGING keeps its verbose meaning and maps to the debug priority, not to
// the emergency slot its ordinal occupies.
func (s *syslogSink) Emit(sev Severity, msg string) error {
	switch normSeverity(sev) {
	case SEV_DEBUGGING:
		return s.w.Debug(msg)
	case SEV_ALERT:
		return s.w.Alert(msg)
	case SEV_CRITICAL:
		return s.w.Crit(msg)
	case SEV_ERROR:
		return s.w.Err(msg)
	case SEV_WARNING:
		return s.w.Warning(msg)
	case SEV_NOTICE:
		return s.w.Notice(msg)
	default:
		return s.w.Info(msg)
	}
}

func (s *syslogSink) Close() error {
	return s.w.Close()
}
