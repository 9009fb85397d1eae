package paging

// Stats of a single simulation
type Stats struct {
	Faults        int
	Evictions     int
	SecondChances int
}

// Simulator replays traces against a page table with a fixed number of pages
type Simulator struct {
	pages int
	hand  *Hand
}

type SimulatorOption func(*Simulator)

// WithSharedHand makes every simulation move the same clock hand, so the hand
// keeps its position from one simulation to the next
func WithSharedHand(hand *Hand) SimulatorOption {
	return func(s *Simulator) {
		s.hand = hand
	}
}

func NewSimulator(pages int, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		pages: pages,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Pages returns the size of the page table used by each simulation
func (s *Simulator) Pages() int {
	return s.pages
}

// Simulate returns the number of page faults of the trace with the given frames
func (s *Simulator) Simulate(trace Trace, frames int) int {
	return s.Run(trace, frames).Faults
}

// Run replays the trace on a fresh page table with the given number of frames.
// Every reference sets the page's reference bit. A reference to a page that is
// not resident is a fault: the page takes a free frame if there is one,
// otherwise the frame of a page evicted by the clock.
func (s *Simulator) Run(trace Trace, frames int) Stats {
	stats := Stats{}
	if len(trace) == 0 {
		return stats
	}
	if frames < 1 {
		panic("simulator: need at least one frame")
	}

	hand := s.hand
	if hand == nil {
		hand = NewHand()
	}
	evictor := NewClockEvictor(hand)
	pageTable := NewPageTable(s.pages)
	free := frames

	for _, page := range trace {
		pageTable[page].Referenced = true
		if pageTable[page].Resident {
			continue
		}
		stats.Faults++
		var frame int
		if free > 0 {
			free--
			frame = free
		} else {
			// free hit zero, so frames >= 1 pages are resident
			frame = evictor.Evict(pageTable)
			stats.Evictions++
		}
		pageTable.Load(page, frame)
	}

	stats.SecondChances = evictor.SecondChances()
	return stats
}

// Simulate returns the number of page faults of the trace over pages pages with
// the given frames, starting from a fresh page table and clock hand
func Simulate(trace Trace, frames, pages int) int {
	return NewSimulator(pages).Simulate(trace, frames)
}
