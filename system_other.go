//go:build !unix && !windows

package slg

import "github.com/pkg/errors"

// openSystemSink has no backend on this platform. The attach failure is
// swallowed by the dispatcher like any other system log failure, so the
// SINK_SYSTEM bit is simply inert here.
func openSystemSink(program string) (SystemSink, error) {
	return nil, errors.New("system log is not supported on this platform")
}
