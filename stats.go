package jobsched

// Stats accumulates the three running sums spec.md's statistics
// aggregator defines, each with its own counter so a job that never
// dispatched still contributes to wait and turnaround without
// skewing the response average.
type Stats struct {
	waitSum       int64
	waitCount     int64
	turnSum       int64
	turnCount     int64
	responseSum   int64
	responseCount int64
}

func (s *Stats) creditCompletion(wait, turnaround int64) {
	s.waitSum += wait
	s.waitCount++
	s.turnSum += turnaround
	s.turnCount++
}

func (s *Stats) creditResponse(response int64) {
	s.responseSum += response
	s.responseCount++
}

// AverageWait returns the mean wait time, or 0 if no job has
// finished.
func (s *Stats) AverageWait() float64 {
	return average(s.waitSum, s.waitCount)
}

// AverageTurnaround returns the mean turnaround time, or 0 if no job
// has finished.
func (s *Stats) AverageTurnaround() float64 {
	return average(s.turnSum, s.turnCount)
}

// AverageResponse returns the mean response time, or 0 if no job has
// ever actually executed.
func (s *Stats) AverageResponse() float64 {
	return average(s.responseSum, s.responseCount)
}

func average(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}
