package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSweep(t *testing.T) {
	assert.NoError(t, ValidateSweep(16, 8))
	assert.ErrorIs(t, ValidateSweep(15, 8), ErrTraceLength)
	assert.ErrorIs(t, ValidateSweep(16, 7), ErrPageCount)
	// trace length is checked first
	assert.ErrorIs(t, ValidateSweep(1, 1), ErrTraceLength)
}

func TestReadSweepConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sweep.yaml")
	content := "n: 64\np: 12\nseed: 99\nlegacy_hand: true\nplot: faults.png\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	cfg, err := ReadSweepConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.TraceLength)
	assert.Equal(t, 12, cfg.Pages)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.LegacyHand)
	assert.Equal(t, "faults.png", cfg.PlotPath)
	// unset keys keep their defaults
	assert.Equal(t, DefaultReportPath, cfg.ReportPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestReadSweepConfigMissing(t *testing.T) {
	_, err := ReadSweepConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
