//go:build windows

package slg

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows/svc/eventlog"
)

// Event identifier stamped on every record; the facility defines no message
// catalog.
const _WINLOG_EVENT_ID = 1

// eventlogSink adapts the Windows event log to the SystemSink contract.
type eventlogSink struct {
	log *eventlog.Log
}

// openSystemSink attaches to the Windows event log under the given source
// name. The source is expected to exist already; registering one needs
// elevated rights and is an installer concern.
func openSystemSink(program string) (SystemSink, error) {
	log, err := eventlog.Open(program)
	if err != nil {
		return nil, errors.Wrap(err, "open event log")
	}
	return &eventlogSink{log: log}, nil
}

// Emit writes the message with the event type matching the severity: ALERT,
// CRITICAL and ERROR as errors, WARNING as a warning, everything else as
// information.
func (s *eventlogSink) Emit(sev Severity, msg string) error {
	switch normSeverity(sev) {
	case SEV_ALERT, SEV_CRITICAL, SEV_ERROR:
		return s.log.Error(_WINLOG_EVENT_ID, msg)
	case SEV_WARNING:
		return s.log.Warning(_WINLOG_EVENT_ID, msg)
	default:
		return s.log.Info(_WINLOG_EVENT_ID, msg)
	}
}

func (s *eventlogSink) Close() error {
	return s.log.Close()
}
