package paging

import "fmt"

// Hand is the clock cursor: the next page table index to examine
type Hand struct {
	pos int
}

func NewHand() *Hand {
	return &Hand{}
}

// Position of the hand
func (h *Hand) Position() int {
	return h.pos
}

// Reset moves the hand back to the first entry
func (h *Hand) Reset() {
	h.pos = 0
}

// ring walks a page table circularly, starting from the hand and moving it along
type ring struct {
	hand  *Hand
	table PageTable
}

func (h *Hand) sweep(pt PageTable) *ring {
	h.pos %= len(pt)
	return &ring{hand: h, table: pt}
}

// Index of the entry under the hand
func (r *ring) Index() int {
	return r.hand.pos
}

// Entry under the hand
func (r *ring) Entry() *Entry {
	return &r.table[r.hand.pos]
}

// Next advances the hand, wrapping at the end of the table
func (r *ring) Next() {
	r.hand.pos = (r.hand.pos + 1) % len(r.table)
}

// ClockEvictor picks victims with the second chance algorithm
type ClockEvictor struct {
	hand          *Hand
	secondChances int
}

// NewClockEvictor creates an evictor that moves the given hand.
// A nil hand gets a fresh one starting at the first entry.
func NewClockEvictor(hand *Hand) *ClockEvictor {
	if hand == nil {
		hand = NewHand()
	}
	return &ClockEvictor{
		hand: hand,
	}
}

// SecondChances returns the number of reference bits cleared so far
func (c *ClockEvictor) SecondChances() int {
	return c.secondChances
}

// Evict scans the table from the hand, clearing the reference bit of every
// referenced resident page it passes, and evicts the first resident page that
// is not referenced. It returns the frame of the evicted page.
//
// At least one page must be resident. Two full sweeps always find a victim
// when that holds, so running past them panics.
func (c *ClockEvictor) Evict(pt PageTable) int {
	if len(pt) == 0 {
		panic("clock: evict on empty page table")
	}
	r := c.hand.sweep(pt)
	for steps := 0; steps < 2*len(pt); steps++ {
		e := r.Entry()
		if !e.Resident {
			r.Next()
			continue
		}
		if e.Referenced {
			e.Referenced = false
			c.secondChances++
			r.Next()
			continue
		}
		frame := pt.unload(r.Index())
		r.Next()
		return frame
	}
	panic(fmt.Sprintf("clock: no resident page among %d entries", len(pt)))
}
