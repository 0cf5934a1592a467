package jobsched

// CoreArray is a fixed-size vector of optional job occupants indexed
// by core id. A core is idle iff its slot is nil.
type CoreArray struct {
	slots []*Job
}

func newCoreArray(n int) *CoreArray {
	if n <= 0 {
		violatef("core count must be positive, got %d", n)
	}
	return &CoreArray{slots: make([]*Job, n)}
}

// Len returns the number of cores.
func (c *CoreArray) Len() int {
	return len(c.slots)
}

// FirstIdle returns the lowest-index empty slot, or false if none.
func (c *CoreArray) FirstIdle() (int, bool) {
	for i, occ := range c.slots {
		if occ == nil {
			return i, true
		}
	}
	return 0, false
}

// Assign places job on coreID, which must currently be idle, and
// records its dispatch time.
func (c *CoreArray) Assign(coreID int, job *Job, clock int64) {
	c.checkRange(coreID)
	if c.slots[coreID] != nil {
		violatef("core %d is busy, cannot assign job %d", coreID, job.ID)
	}
	job.LastDispatchTime = clock
	c.slots[coreID] = job
}

// Release clears coreID, which must currently hold a job whose id
// equals expectedID, and returns that job.
func (c *CoreArray) Release(coreID int, expectedID uint64) *Job {
	c.checkRange(coreID)
	occ := c.slots[coreID]
	if occ == nil || occ.ID != expectedID {
		violatef("core %d does not hold job %d", coreID, expectedID)
	}
	c.slots[coreID] = nil
	occ.LastDispatchTime = unset
	return occ
}

// Occupant returns the job on coreID, or nil if idle.
func (c *CoreArray) Occupant(coreID int) *Job {
	c.checkRange(coreID)
	return c.slots[coreID]
}

// Occupants returns every non-idle job, core order, without
// mutating the array.
func (c *CoreArray) Occupants() []*Job {
	out := make([]*Job, 0, len(c.slots))
	for _, occ := range c.slots {
		if occ != nil {
			out = append(out, occ)
		}
	}
	return out
}

// FindVictim scans every occupied core for the one whose occupant
// compares strictly worse than candidate under policy's comparator — the largest
// comparator key among those strictly greater than candidate's —
// breaking ties at the latest arrival time. Returns false if no
// occupant is strictly worse than candidate.
func (c *CoreArray) FindVictim(policy Policy, candidate *Job) (int, bool) {
	victim := -1
	for i, occ := range c.slots {
		if occ == nil {
			continue
		}
		if compare(policy, occ, candidate) <= 0 {
			continue
		}
		if victim == -1 {
			victim = i
			continue
		}
		cur := c.slots[victim]
		switch {
		case compare(policy, occ, cur) > 0:
			victim = i
		case compare(policy, occ, cur) == 0 && occ.ArrivalTime > cur.ArrivalTime:
			victim = i
		}
	}
	if victim == -1 {
		return 0, false
	}
	return victim, true
}

func (c *CoreArray) checkRange(coreID int) {
	if coreID < 0 || coreID >= len(c.slots) {
		violatef("core id %d out of range [0,%d)", coreID, len(c.slots))
	}
}
