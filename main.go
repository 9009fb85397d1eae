package main

import (
	"fmt"
	"os"

	"github.com/zeu5/pagefault-sweep/benchmarks"
)

// main entry point to the sweep
func main() {
	// rootCommand parses the trace length and page count (and a few flags) and runs the sweep
	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}
