package slg

/*
Defines the core data types and package-wide constants used by the logger:
  - basetype and byte-sized typed aliases for the enums
  - Severity: the ordered seven-step urgency scale
  - SinkSet: accumulable bitmask of output destinations
  - name and color tables indexed by severity
  - ANSI/color related constants
  - normalization and parsing helpers
*/

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type Severity basetype // Message urgency (alias for byte)
type SinkSet basetype  // Bitmask of output destinations (alias for byte)

// SevMap is a fixed-size array with one entry per severity. Used for
// severity names and colors.
type SevMap [_SEV_MAX_for_checks_only]string

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// Severity values in the syslog numeric layout, with DEBUGGING occupying
	// slot zero. Smaller values are more urgent, so DEBUGGING passes every
	// threshold and shares the urgent console stream. The trailing
	// _SEV_MAX_for_checks_only is used as an exclusive upper bound for
	// normalization checks.
	SEV_DEBUGGING Severity = iota
	SEV_ALERT
	SEV_CRITICAL
	SEV_ERROR
	SEV_WARNING
	SEV_NOTICE
	SEV_INFORMATION
	_SEV_MAX_for_checks_only
)

const (
	// Sink membership bits. SINK_NONE is the empty set (a valid configuration
	// that silences the logger), SINK_ALL the mask of every valid bit.
	SINK_SYSTEM SinkSet = 1 << iota
	SINK_CONSOLE
	SINK_FILE

	SINK_NONE SinkSet = 0
	SINK_ALL  SinkSet = SINK_SYSTEM | SINK_CONSOLE | SINK_FILE
)

const (
	// Default values for the short init forms
	DEFAULT_SEVERITY    = SEV_INFORMATION // pass everything
	DEFAULT_SINKS       = SINK_CONSOLE
	DEFAULT_TIME_FORMAT = "2006.01.02 15:04:05"
	DEFAULT_OUT_BUFF    = 256 // initial buffer size for formatted line output
)

const (
	// ANSI colored text fragments prefix/suffix used when colors are requested.
	// For a colored piece of text the sequence will be:
	// ANSI_COL_PRFX + colorSpec + ANSI_COL_SUFX + text + ANSI_COL_RESET
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

/////////////////////////////////////////////////////////////////////////////////////////

// Severity display names, also used as the bracketed line prefix.
var SevNames = &SevMap{
	"DEBUGGING",   //SEV_DEBUGGING
	"ALERT",       //SEV_ALERT
	"CRITICAL",    //SEV_CRITICAL
	"ERROR",       //SEV_ERROR
	"WARNING",     //SEV_WARNING
	"NOTICE",      //SEV_NOTICE
	"INFORMATION", //SEV_INFORMATION
}

// Per-severity ANSI color fragments for a terminal with a dark background.
var SevColorOnBlackMap = &SevMap{
	"0;90",     //SEV_DEBUGGING
	"101;1;33", //SEV_ALERT
	"1;91",     //SEV_CRITICAL
	"0;91",     //SEV_ERROR
	"0;33",     //SEV_WARNING
	"0;96",     //SEV_NOTICE
	"0;97",     //SEV_INFORMATION
}

// Generic byte normalization helper.
func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}

// Ensures a provided Severity is within the valid range
func normSeverity(sev Severity) Severity {
	return norm_byte(sev, _SEV_MAX_for_checks_only, DEFAULT_SEVERITY)
}

// Ensures a provided SinkSet holds only valid membership bits
func normSinks(sinks SinkSet) SinkSet {
	return sinks & SINK_ALL
}

// String returns the display name of the severity ("ERROR", "NOTICE", ...).
func (sev Severity) String() string {
	if sev < _SEV_MAX_for_checks_only {
		return SevNames[sev]
	}
	return "SEVERITY(" + strconv.Itoa(int(sev)) + ")"
}

// ParseSeverity converts a severity name, full or single-letter, any case,
// to its Severity value.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUGGING", "D":
		return SEV_DEBUGGING, nil
	case "ALERT", "A":
		return SEV_ALERT, nil
	case "CRITICAL", "C":
		return SEV_CRITICAL, nil
	case "ERROR", "E":
		return SEV_ERROR, nil
	case "WARNING", "W":
		return SEV_WARNING, nil
	case "NOTICE", "N":
		return SEV_NOTICE, nil
	case "INFORMATION", "I":
		return SEV_INFORMATION, nil
	}
	return DEFAULT_SEVERITY, errors.Errorf("unknown severity %q", s)
}

/////////////////////////////////////////////////////////////////////////////////////////

// Sinks starts an empty sink set. Members are accumulated with the chainable
// SystemLog/Console/File methods:
//
//	log.SetOutput(slg.Sinks().Console().File())
func Sinks() SinkSet {
	return SINK_NONE
}

// SystemLog returns the set with the system log sink added.
func (s SinkSet) SystemLog() SinkSet { return s | SINK_SYSTEM }

// Console returns the set with the console sink added.
func (s SinkSet) Console() SinkSet { return s | SINK_CONSOLE }

// File returns the set with the file sink added.
func (s SinkSet) File() SinkSet { return s | SINK_FILE }

// Has reports whether the set contains member.
func (s SinkSet) Has(member SinkSet) bool { return s&member != SINK_NONE }

// String lists the members of the set ("system|console|file", "none", ...).
func (s SinkSet) String() string {
	if s == SINK_NONE {
		return "none"
	}
	parts := make([]string, 0, 3)
	if s.Has(SINK_SYSTEM) {
		parts = append(parts, "system")
	}
	if s.Has(SINK_CONSOLE) {
		parts = append(parts, "console")
	}
	if s.Has(SINK_FILE) {
		parts = append(parts, "file")
	}
	return strings.Join(parts, "|")
}

// ParseSinks converts a comma- or pipe-separated list of sink names
// ("console,file") to a SinkSet.
func ParseSinks(s string) (SinkSet, error) {
	set := Sinks()
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "system", "systemlog", "syslog":
			set = set.SystemLog()
		case "console":
			set = set.Console()
		case "file":
			set = set.File()
		case "none", "":
			// tolerated, adds nothing
		default:
			return SINK_NONE, errors.Errorf("unknown sink %q", name)
		}
	}
	return set, nil
}
