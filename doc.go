// Package jobsched is a discrete-event simulation engine for a
// multi-core CPU job scheduler. A driving harness feeds job arrival,
// completion, and quantum-expiry events at externally supplied
// simulated timestamps; the engine returns a dispatch decision for
// each event and reports average wait, turnaround, and response
// times on demand.
//
// The engine supports six scheduling policies — FCFS, SJF, PSJF, PRI,
// PPRI, RR — selected at construction and immutable for the life of
// the Engine. It is synchronous and single-threaded: every method
// runs to completion before returning, and a caller sharing an Engine
// across goroutines must serialize access itself.
package jobsched
