package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeladyAnomalies(t *testing.T) {
	ds := DataSet{
		{Frames: 4, Faults: 12},
		{Frames: 5, Faults: 13},
		{Frames: 6, Faults: 9},
		{Frames: 7, Faults: 9},
		{Frames: 8, Faults: 10},
	}
	anomalies := BeladyAnomalies(ds)
	require.Len(t, anomalies, 2)
	assert.Equal(t, 5, anomalies[0].Frames)
	assert.Equal(t, 8, anomalies[1].Frames)
}

func TestBeladyAnomaliesMonotone(t *testing.T) {
	ds := DataSet{{Frames: 4, Faults: 10}, {Frames: 5, Faults: 8}, {Frames: 6, Faults: 8}}
	assert.Empty(t, BeladyAnomalies(ds))
	assert.Empty(t, BeladyAnomalies(DataSet{}))
}

func TestPlotComparator(t *testing.T) {
	plotPath := filepath.Join(t.TempDir(), "plots", "pageFaults.png")
	ds := DataSet{{Frames: 4, Faults: 10}, {Frames: 5, Faults: 8}, {Frames: 6, Faults: 7}}

	require.NoError(t, PlotComparator(plotPath)(ds))
	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestStatsComparatorEmpty(t *testing.T) {
	assert.NoError(t, StatsComparator()(DataSet{}))
}
