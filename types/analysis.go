package types

import (
	"encoding/csv"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/zeu5/pagefault-sweep/util"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CSVComparator writes the "Frames,Page Faults" report to path
func CSVComparator(path string) Comparator {
	return func(ds DataSet) error {
		f, err := util.CreateFile(path)
		if err != nil {
			return err
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write([]string{"Frames", "Page Faults"}); err != nil {
			return err
		}
		for _, r := range ds {
			if err := w.Write([]string{strconv.Itoa(r.Frames), strconv.Itoa(r.Faults)}); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		log.WithField("path", path).Info("wrote page fault report")
		return nil
	}
}

// PlotComparator draws page faults against frames and saves the figure to path
func PlotComparator(path string) Comparator {
	return func(ds DataSet) error {
		p := plot.New()
		p.Title.Text = "Second chance page faults"
		p.X.Label.Text = "Frames"
		p.Y.Label.Text = "Page Faults"

		points := make(plotter.XYs, len(ds))
		for i, r := range ds {
			points[i] = plotter.XY{
				X: float64(r.Frames),
				Y: float64(r.Faults),
			}
		}
		line, scatter, err := plotter.NewLinePoints(points)
		if err != nil {
			return fmt.Errorf("error building plot: %w", err)
		}
		line.Color = plotutil.Color(0)
		scatter.Color = plotutil.Color(0)
		p.Add(line, scatter, plotter.NewGrid())

		if err := util.EnsureDir(path); err != nil {
			return err
		}
		if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
			return fmt.Errorf("error saving plot: %w", err)
		}
		log.WithField("path", path).Info("saved page fault plot")
		return nil
	}
}

// StatsComparator logs summary statistics of the sweep and every Belady anomaly in it
func StatsComparator() Comparator {
	return func(ds DataSet) error {
		if len(ds) == 0 {
			return nil
		}
		faults := make([]float64, len(ds))
		for i, r := range ds {
			faults[i] = float64(r.Faults)
		}
		mean, std := stat.MeanStdDev(faults, nil)
		log.WithFields(log.Fields{
			"trials":  len(ds),
			"mean":    fmt.Sprintf("%.2f", mean),
			"std_dev": fmt.Sprintf("%.2f", std),
			"min":     floats.Min(faults),
			"max":     floats.Max(faults),
		}).Info("page fault summary")

		for _, r := range BeladyAnomalies(ds) {
			log.WithFields(log.Fields{
				"frames": r.Frames,
				"faults": r.Faults,
			}).Warn("more faults than with one frame less")
		}
		return nil
	}
}

// BeladyAnomalies returns the results with more faults than the result before them
func BeladyAnomalies(ds DataSet) []Result {
	anomalies := make([]Result, 0)
	for i := 1; i < len(ds); i++ {
		if ds[i].Frames > ds[i-1].Frames && ds[i].Faults > ds[i-1].Faults {
			anomalies = append(anomalies, ds[i])
		}
	}
	return anomalies
}
