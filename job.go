package jobsched

// unset marks a Job field that has no meaningful value yet: a job
// that has never run has no FirstDispatchTime, and a queued job has
// no LastDispatchTime.
const unset int64 = -1

// Job is the unit of scheduling. Every field except RemainingTime,
// FirstDispatchTime, and LastDispatchTime is immutable once the job
// is constructed by JobArrived.
type Job struct {
	ID       uint64
	Priority int

	ArrivalTime int64
	RunTime     int64

	// RemainingTime decreases monotonically while the job occupies a
	// core and reaches zero exactly when the driver reports the job
	// finished.
	RemainingTime int64

	// FirstDispatchTime is the time the job first ran for a non-zero
	// interval. It is unset until then; see Engine's time-advance
	// step for the exact crediting rule.
	FirstDispatchTime int64

	// LastDispatchTime is the time the job was most recently placed
	// on a core, or unset while the job is queued.
	LastDispatchTime int64
}

func newJob(id uint64, arrival, runTime int64, priority int) *Job {
	return &Job{
		ID:                id,
		Priority:          priority,
		ArrivalTime:       arrival,
		RunTime:           runTime,
		RemainingTime:     runTime,
		FirstDispatchTime: unset,
		LastDispatchTime:  unset,
	}
}

// HasDispatched reports whether the job has ever run for a non-zero
// interval.
func (j *Job) HasDispatched() bool {
	return j.FirstDispatchTime != unset
}

// Queued reports whether the job currently sits in the ready queue
// rather than on a core.
func (j *Job) Queued() bool {
	return j.LastDispatchTime == unset
}
