package jobsched

import "github.com/go-foundations/jobsched/queue"

// NoDispatch is the sentinel returned by the event handlers when no
// core changes what it is running.
const NoDispatch int64 = -1

// Engine is the scheduling decision engine: the comparator-ordered
// ready queue, the core array, the simulated clock, and the
// statistics accumulators, all owned by a single instance per
// simulation run. It has no internal thread of control; every method
// runs to completion synchronously and the driver is responsible for
// calling event handlers with non-decreasing timestamps.
type Engine struct {
	policy Policy
	clock  int64
	cores  *CoreArray
	ready  *queue.Queue[*Job]
	stats  Stats
}

// NewEngine starts up an engine with the given core count and
// policy. It must be called exactly once before any event is
// delivered to the returned Engine.
func NewEngine(cores int, policy Policy) *Engine {
	e := &Engine{
		policy: policy,
		cores:  newCoreArray(cores),
	}
	e.ready = queue.New[*Job](func(a, b *Job) int {
		return compare(e.policy, a, b)
	})
	return e
}

// advanceTime credits elapsed running intervals to every occupied
// core and moves the clock forward. It must run first in every event
// handler. Response time is credited here, not at assign, so that a
// job preempted before any time elapses is never counted as
// responded.
func (e *Engine) advanceTime(time int64) {
	for _, job := range e.cores.Occupants() {
		if !job.HasDispatched() && job.LastDispatchTime < time {
			job.FirstDispatchTime = job.LastDispatchTime
			e.stats.creditResponse(job.FirstDispatchTime - job.ArrivalTime)
		}
		job.RemainingTime -= time - job.LastDispatchTime
		job.LastDispatchTime = time
	}
	e.clock = time
}

// JobArrived admits a newly arrived job and returns the id of the
// core it begins running on, or NoDispatch if it was enqueued
// instead.
func (e *Engine) JobArrived(id uint64, time, runTime int64, priority int) int64 {
	e.advanceTime(time)
	job := newJob(id, time, runTime, priority)

	if coreID, ok := e.cores.FirstIdle(); ok {
		e.cores.Assign(coreID, job, e.clock)
		return int64(coreID)
	}

	if e.policy.Preemptive() {
		if victimID, ok := e.cores.FindVictim(e.policy, job); ok {
			displaced := e.cores.Occupant(victimID)
			e.cores.Release(victimID, displaced.ID)
			e.ready.Offer(displaced)
			e.cores.Assign(victimID, job, e.clock)
			return int64(victimID)
		}
	}

	e.ready.Offer(job)
	return NoDispatch
}

// JobFinished releases core coreID, which must currently hold job
// id, credits its wait and turnaround time, and dispatches the next
// ready job to that core if one is waiting. Returns the id of the
// newly assigned job, or NoDispatch if the core goes idle.
func (e *Engine) JobFinished(coreID int, id uint64, time int64) int64 {
	e.advanceTime(time)
	job := e.cores.Release(coreID, id)

	wait := e.clock - job.ArrivalTime - job.RunTime
	turnaround := e.clock - job.ArrivalTime
	e.stats.creditCompletion(wait, turnaround)

	return e.dispatchNext(coreID)
}

// QuantumExpired re-enqueues the job running on coreID at the tail of
// the ready queue and dispatches the next ready job to that core.
// Valid only under RR. Returns the id of the newly assigned job,
// which may be the same job if the queue was otherwise empty.
func (e *Engine) QuantumExpired(coreID int, time int64) int64 {
	if e.policy != RR {
		violatef("quantum_expired is only valid under RR, engine policy is %s", e.policy)
	}

	e.advanceTime(time)
	occ := e.cores.Occupant(coreID)
	if occ == nil {
		violatef("core %d is idle, cannot expire its quantum", coreID)
	}
	e.cores.Release(coreID, occ.ID)
	e.ready.Offer(occ)

	return e.dispatchNext(coreID)
}

func (e *Engine) dispatchNext(coreID int) int64 {
	next, ok := e.ready.Poll()
	if !ok {
		return NoDispatch
	}
	e.cores.Assign(coreID, next, e.clock)
	return int64(next.ID)
}

// AverageWaitingTime returns the mean wait time across every job
// that has finished.
func (e *Engine) AverageWaitingTime() float64 {
	return e.stats.AverageWait()
}

// AverageTurnaroundTime returns the mean turnaround time across every
// job that has finished.
func (e *Engine) AverageTurnaroundTime() float64 {
	return e.stats.AverageTurnaround()
}

// AverageResponseTime returns the mean response time across every
// job that has actually executed.
func (e *Engine) AverageResponseTime() float64 {
	return e.stats.AverageResponse()
}

// ReadyQueueIDs returns the ids of jobs currently in the ready queue,
// head first. It is a read-only snapshot for introspection; it does
// not mutate the queue.
func (e *Engine) ReadyQueueIDs() []uint64 {
	snap := e.ready.Snapshot()
	ids := make([]uint64, len(snap))
	for i, job := range snap {
		ids[i] = job.ID
	}
	return ids
}

// CoreOccupants returns every job currently running, core-index
// order. Idle cores contribute nothing.
func (e *Engine) CoreOccupants() []*Job {
	return e.cores.Occupants()
}

// CleanUp releases every job still owned by the engine, draining the
// ready queue and clearing every core. It is the terminal call of a
// simulation run.
func (e *Engine) CleanUp() {
	e.ready.Drain()
	for i := 0; i < e.cores.Len(); i++ {
		if e.cores.Occupant(i) != nil {
			e.cores.Release(i, e.cores.Occupant(i).ID)
		}
	}
}
