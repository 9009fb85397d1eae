package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulateAlternatingPages(t *testing.T) {
	trace := Trace{0, 1, 0, 1, 0, 1, 0, 1}
	assert.Equal(t, 2, Simulate(trace, 4, 2))
}

func TestSimulateHandComputed(t *testing.T) {
	hand := NewHand()
	s := NewSimulator(4, WithSharedHand(hand))

	stats := s.Run(Trace{0, 1, 2, 0, 3}, 2)

	assert.Equal(t, Stats{Faults: 5, Evictions: 3, SecondChances: 4}, stats)
	assert.Equal(t, 3, hand.Position())
}

func TestSimulateAllPagesFit(t *testing.T) {
	g := NewSeededTraceGenerator(11)
	for p := 8; p <= 16; p++ {
		trace := g.Generate(64, p)
		stats := NewSimulator(p).Run(trace, p)
		assert.Equal(t, trace.Distinct(), stats.Faults)
		assert.Zero(t, stats.Evictions)
	}
}

func TestSimulateBounds(t *testing.T) {
	g := NewSeededTraceGenerator(5)
	trace := g.Generate(16, 8)
	for f := 1; f <= 8; f++ {
		faults := Simulate(trace, f, 8)
		assert.GreaterOrEqual(t, faults, 0)
		assert.LessOrEqual(t, faults, trace.Len())
	}
	faults := Simulate(trace, 4, 8)
	assert.Greater(t, faults, 0)
}

func TestSimulateDeterministic(t *testing.T) {
	trace := NewSeededTraceGenerator(9).Generate(256, 12)
	first := Simulate(trace, 5, 12)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Simulate(trace, 5, 12))
	}
}

func TestSimulateSharedHandCarriesOver(t *testing.T) {
	trace := NewSeededTraceGenerator(21).Generate(200, 10)
	hand := NewHand()
	s := NewSimulator(10, WithSharedHand(hand))

	s.Simulate(trace, 4)
	after := hand.Position()
	s.Simulate(trace, 4)

	// a fresh simulator is unaffected by the shared hand
	hand.Reset()
	assert.Equal(t, Simulate(trace, 4, 10), s.Simulate(trace, 4))
	assert.GreaterOrEqual(t, after, 0)
	assert.Less(t, after, 10)
}

func TestSimulateEmptyTrace(t *testing.T) {
	assert.Zero(t, Simulate(Trace{}, 4, 8))
}

func TestSimulateNoFramesPanics(t *testing.T) {
	assert.Panics(t, func() {
		Simulate(Trace{0, 1}, 0, 2)
	})
}
