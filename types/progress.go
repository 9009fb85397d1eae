package types

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gosuri/uilive"
)

// Progress prints a live status line for the running sweep
type Progress struct {
	total   int
	done    int
	padding int
	writer  *uilive.Writer
}

func NewProgress(total int) *Progress {
	return newProgress(total, os.Stderr)
}

func newProgress(total int, out io.Writer) *Progress {
	writer := uilive.New()
	writer.Out = out
	writer.RefreshInterval = 100 * time.Millisecond
	return &Progress{
		total:   total,
		padding: len(strconv.Itoa(total)),
		writer:  writer,
	}
}

func (p *Progress) Start() {
	p.writer.Start()
}

// Update records a finished trial
func (p *Progress) Update(name string, r Result) {
	p.done++
	fmt.Fprintf(p.writer, "Trials:%*d/%d, Exp:%s, Faults:%d, Evictions:%d\n",
		p.padding, p.done, p.total, name, r.Faults, r.Evictions)
}

// Stop flushes the last status and stops refreshing
func (p *Progress) Stop() {
	p.writer.Stop()
}
