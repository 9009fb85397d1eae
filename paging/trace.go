package paging

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Trace is the ordered sequence of page references replayed by a simulation
type Trace []int

// Len returns the number of references in the trace
func (t Trace) Len() int {
	return len(t)
}

// Distinct returns the number of different pages referenced in the trace
func (t Trace) Distinct() int {
	seen := make(map[int]bool)
	for _, page := range t {
		seen[page] = true
	}
	return len(seen)
}

// TraceGenerator produces random traces where a page is never referenced twice in a row
type TraceGenerator struct {
	rand rand.Source
}

// NewTraceGenerator creates a generator drawing from the given source
func NewTraceGenerator(src rand.Source) *TraceGenerator {
	return &TraceGenerator{
		rand: src,
	}
}

// NewSeededTraceGenerator creates a generator with its own source.
// A zero seed means the source is seeded from the clock.
func NewSeededTraceGenerator(seed uint64) *TraceGenerator {
	return NewTraceGenerator(rand.NewSource(ClockSeed(seed)))
}

// ClockSeed returns seed, or a seed taken from the clock when seed is zero
func ClockSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// Generate returns a trace of n references over pages [0, p).
// The first page is uniform over all p pages, every next one is uniform over
// the p-1 pages that differ from its predecessor.
func (g *TraceGenerator) Generate(n, p int) Trace {
	trace := make(Trace, n)
	if n == 0 || p == 0 {
		return trace
	}

	weights := make([]float64, p)
	for i := range weights {
		weights[i] = 1
	}
	// Take zeroes the weight of the drawn page, so the sampler never returns
	// the page drawn last. Restoring the one before it keeps p-1 candidates.
	sampler := sampleuv.NewWeighted(weights, g.rand)

	prev := -1
	for i := 0; i < n; i++ {
		page, ok := sampler.Take()
		if !ok {
			// only reachable with a single page
			page = 0
		}
		if prev >= 0 && prev != page {
			sampler.Reweight(prev, 1)
		}
		trace[i] = page
		prev = page
	}
	return trace
}
