package inventory

// Stats counts applied and rejected actions.
type Stats struct {
	Succeeded map[Action]int
	Failed    map[Action]int
}

func newStats() Stats {
	return Stats{
		Succeeded: make(map[Action]int, len(actionNames)),
		Failed:    make(map[Action]int, len(actionNames)),
	}
}

func (s Stats) record(o Outcome) {
	if !o.Action.Valid() {
		return
	}
	if o.OK() {
		s.Succeeded[o.Action]++
		return
	}
	s.Failed[o.Action]++
}

func (s Stats) clone() Stats {
	out := newStats()
	for a, n := range s.Succeeded {
		out.Succeeded[a] = n
	}
	for a, n := range s.Failed {
		out.Failed[a] = n
	}
	return out
}

// Total returns the number of recorded actions.
func (s Stats) Total() int {
	n := 0
	for _, v := range s.Succeeded {
		n += v
	}
	for _, v := range s.Failed {
		n += v
	}
	return n
}
