package slg

/*
Severity-tagged emission helpers: one method per severity plus a
single-letter alias, each accepting any value convertible to a display
string with fmt.Sprint. None of them return anything — delivery problems
are contained by the dispatcher and reported through the remaining sinks,
never to the caller.
*/

// Debugging emits v at the most verbose severity. Note that DEBUGGING sits
// in the most urgent slot of the scale, so it passes every severity floor
// and is written to the urgent console stream.
func (l *Logger) Debugging(v any) { l.emit(SEV_DEBUGGING, v) }

// D is the single-letter alias for Debugging.
func (l *Logger) D(v any) { l.emit(SEV_DEBUGGING, v) }

// Alert emits v at ALERT severity: a condition demanding immediate
// attention.
func (l *Logger) Alert(v any) { l.emit(SEV_ALERT, v) }

// A is the single-letter alias for Alert.
func (l *Logger) A(v any) { l.emit(SEV_ALERT, v) }

// Critical emits v at CRITICAL severity: a failing component.
func (l *Logger) Critical(v any) { l.emit(SEV_CRITICAL, v) }

// C is the single-letter alias for Critical.
func (l *Logger) C(v any) { l.emit(SEV_CRITICAL, v) }

// Error emits v at ERROR severity. Errors and more urgent messages are
// written to the error console stream.
func (l *Logger) Error(v any) { l.emit(SEV_ERROR, v) }

// E is the single-letter alias for Error.
func (l *Logger) E(v any) { l.emit(SEV_ERROR, v) }

// Warning emits v at WARNING severity: a recoverable or noteworthy
// condition that deserves attention.
func (l *Logger) Warning(v any) { l.emit(SEV_WARNING, v) }

// W is the single-letter alias for Warning.
func (l *Logger) W(v any) { l.emit(SEV_WARNING, v) }

// Notice emits v at NOTICE severity: a normal but significant event.
func (l *Logger) Notice(v any) { l.emit(SEV_NOTICE, v) }

// N is the single-letter alias for Notice.
func (l *Logger) N(v any) { l.emit(SEV_NOTICE, v) }

// Information emits v at the least urgent severity, for routine operational
// messages.
func (l *Logger) Information(v any) { l.emit(SEV_INFORMATION, v) }

// I is the single-letter alias for Information.
func (l *Logger) I(v any) { l.emit(SEV_INFORMATION, v) }
