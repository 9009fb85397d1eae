package types

import (
	"context"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/zeu5/pagefault-sweep/paging"
)

// Experiment is a single trial of the sweep: the trace replayed with a fixed number of frames
type Experiment struct {
	Name   string
	Frames int
}

// NewExperiment creates the trial for the given number of frames
func NewExperiment(frames int) *Experiment {
	return &Experiment{
		Name:   "frames-" + strconv.Itoa(frames),
		Frames: frames,
	}
}

// Run the trial on the simulator
func (e *Experiment) Run(s *paging.Simulator, trace paging.Trace) Result {
	stats := s.Run(trace, e.Frames)
	log.WithFields(log.Fields{
		"experiment":     e.Name,
		"faults":         stats.Faults,
		"evictions":      stats.Evictions,
		"second_chances": stats.SecondChances,
	}).Debug("trial done")
	return Result{
		Frames:        e.Frames,
		Faults:        stats.Faults,
		Evictions:     stats.Evictions,
		SecondChances: stats.SecondChances,
	}
}

// Result of one trial
type Result struct {
	Frames        int `json:"frames"`
	Faults        int `json:"faults"`
	Evictions     int `json:"evictions"`
	SecondChances int `json:"second_chances"`
}

// DataSet contains the results of the trials in the order they ran
type DataSet []Result

// Comparator consumes the results of a sweep, e.g. by writing a report
type Comparator func(DataSet) error

func NoopComparator() Comparator {
	return func(DataSet) error { return nil }
}

// ComparisonConfig contains the configuration for the comparison
type ComparisonConfig struct {
	Trace      paging.Trace // trace replayed by every trial
	Pages      int          // size of the page table
	LegacyHand bool         // one clock hand for all trials instead of one per trial
	Progress   bool         // live progress on the terminal
}

// Comparison replays one trace for every experiment
// The results are then handed to the comparators
type Comparison struct {
	Experiments []*Experiment
	comparators map[string]Comparator
	names       []string
	cConfig     *ComparisonConfig
	simulator   *paging.Simulator
}

// NewComparison creates a comparison instance
func NewComparison(config *ComparisonConfig) *Comparison {
	opts := make([]paging.SimulatorOption, 0)
	if config.LegacyHand {
		opts = append(opts, paging.WithSharedHand(paging.NewHand()))
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		comparators: make(map[string]Comparator),
		names:       make([]string, 0),
		cConfig:     config,
		simulator:   paging.NewSimulator(config.Pages, opts...),
	}
}

// NewSweep creates a comparison with one experiment for every frame count in [MinFrames, pages]
func NewSweep(config *ComparisonConfig) *Comparison {
	c := NewComparison(config)
	for f := MinFrames; f <= config.Pages; f++ {
		c.AddExperiment(NewExperiment(f))
	}
	return c
}

// AddAnalysis adds a comparator to the comparison.
// Comparators run in the order they were added.
func (c *Comparison) AddAnalysis(name string, comparator Comparator) {
	if _, ok := c.comparators[name]; !ok {
		c.names = append(c.names, name)
	}
	c.comparators[name] = comparator
}

// Add experiments to compare
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison
func (c *Comparison) Run(ctx context.Context) (DataSet, error) {
	var progress *Progress
	if c.cConfig.Progress {
		progress = NewProgress(len(c.Experiments))
		progress.Start()
		defer progress.Stop()
	}

	dataSet := make(DataSet, 0, len(c.Experiments))
	for _, e := range c.Experiments {
		select {
		case <-ctx.Done():
			return dataSet, ctx.Err()
		default:
		}
		r := e.Run(c.simulator, c.cConfig.Trace)
		dataSet = append(dataSet, r)
		if progress != nil {
			progress.Update(e.Name, r)
		}
	}

	for _, name := range c.names {
		if err := c.comparators[name](dataSet); err != nil {
			return dataSet, fmt.Errorf("comparator %s: %w", name, err)
		}
	}
	return dataSet, nil
}
