package types

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MinTraceLength is the shortest trace a sweep accepts
	MinTraceLength = 16
	// MinPages is the smallest page count a sweep accepts
	MinPages = 8
	// MinFrames is the frame count every sweep starts from
	MinFrames = 4

	DefaultReportPath = "pageFaults.csv"
)

var (
	ErrTraceLength = errors.New("n must be >= 16")
	ErrPageCount   = errors.New("p must be >= 8")
)

// SweepConfig contains the parameters of a frame count sweep
type SweepConfig struct {
	TraceLength int    `yaml:"n"`
	Pages       int    `yaml:"p"`
	Seed        uint64 `yaml:"seed"`        // 0 seeds from the clock
	LegacyHand  bool   `yaml:"legacy_hand"` // share one clock hand across all trials
	ReportPath  string `yaml:"save"`
	PlotPath    string `yaml:"plot"`
	Progress    bool   `yaml:"progress"`
	LogLevel    string `yaml:"log_level"`
}

func DefaultSweepConfig() *SweepConfig {
	return &SweepConfig{
		ReportPath: DefaultReportPath,
		LogLevel:   "info",
	}
}

// ReadSweepConfig reads a yaml file on top of the default configuration
func ReadSweepConfig(path string) (*SweepConfig, error) {
	cfg := DefaultSweepConfig()
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the trace length and page count
func (c *SweepConfig) Validate() error {
	return ValidateSweep(c.TraceLength, c.Pages)
}

func ValidateSweep(n, p int) error {
	if n < MinTraceLength {
		return fmt.Errorf("%w, got %d", ErrTraceLength, n)
	}
	if p < MinPages {
		return fmt.Errorf("%w, got %d", ErrPageCount, p)
	}
	return nil
}
