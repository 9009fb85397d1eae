package benchmarks

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	log "github.com/sirupsen/logrus"
)

// startProfiling starts the cpu profile if requested.
// The returned function stops it and writes the heap profile if requested.
func startProfiling() (func(), error) {
	var cpuFile *os.File
	if cpuprofile != "" {
		log.WithField("path", cpuprofile).Info("profiling cpu")
		f, err := os.Create(cpuprofile)
		if err != nil {
			return nil, fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("could not start CPU profile: %w", err)
		}
		cpuFile = f
	}

	return func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}
		if memprofile == "" {
			return
		}
		log.WithField("path", memprofile).Info("profiling memory")
		f, err := os.Create(memprofile)
		if err != nil {
			log.Errorf("could not create memory profile: %s", err)
			return
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Errorf("could not write memory profile: %s", err)
		}
	}, nil
}
