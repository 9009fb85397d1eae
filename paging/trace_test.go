package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProperties(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		g := NewSeededTraceGenerator(seed)
		n, p := 16+int(seed), 8+int(seed%5)
		trace := g.Generate(n, p)

		require.Len(t, trace, n)
		for i, page := range trace {
			assert.GreaterOrEqual(t, page, 0)
			assert.Less(t, page, p)
			if i > 0 {
				assert.NotEqual(t, trace[i-1], page, "seed %d: repeated page at %d", seed, i)
			}
		}
	}
}

func TestGenerateSameSeed(t *testing.T) {
	first := NewSeededTraceGenerator(42).Generate(64, 8)
	second := NewSeededTraceGenerator(42).Generate(64, 8)
	assert.Equal(t, first, second)
}

func TestGenerateTwoPagesAlternates(t *testing.T) {
	trace := NewSeededTraceGenerator(7).Generate(32, 2)
	for i := 1; i < len(trace); i++ {
		assert.Equal(t, 1-trace[i-1], trace[i])
	}
}

func TestGenerateCoversPages(t *testing.T) {
	p := 8
	trace := NewSeededTraceGenerator(3).Generate(4096, p)
	counts := make([]int, p)
	for _, page := range trace {
		counts[page]++
	}
	// 4096 draws over 8 pages, each page expects ~512
	for page, c := range counts {
		assert.Greater(t, c, 300, "page %d drawn %d times", page, c)
	}
	assert.Equal(t, p, trace.Distinct())
}
