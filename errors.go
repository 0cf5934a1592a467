package jobsched

import "fmt"

// PreconditionViolation marks a call that broke the contract between
// the engine and its driver: assigning to a busy core, releasing with
// a mismatched job id, quantum expiry on an idle core or under a
// non-RR policy, or an out-of-range core id. These are programming
// errors, not recoverable runtime conditions, so the engine reports
// them by panicking with this type rather than returning an error.
type PreconditionViolation struct {
	Msg string
}

func (e *PreconditionViolation) Error() string {
	return e.Msg
}

func violatef(format string, args ...any) {
	panic(&PreconditionViolation{Msg: fmt.Sprintf(format, args...)})
}
