package paging

// NoFrame marks a page that does not occupy any frame
const NoFrame = -1

// Entry is the residency state of one page
type Entry struct {
	Frame      int
	Resident   bool
	Referenced bool
}

// PageTable has one entry per page, indexed by page number
type PageTable []Entry

// NewPageTable returns a table of pages entries, none of them resident
func NewPageTable(pages int) PageTable {
	pt := make(PageTable, pages)
	for i := range pt {
		pt[i].Frame = NoFrame
	}
	return pt
}

// Resident counts the pages currently occupying a frame
func (pt PageTable) Resident() int {
	count := 0
	for _, e := range pt {
		if e.Resident {
			count++
		}
	}
	return count
}

// Load places page in frame and marks it resident
func (pt PageTable) Load(page, frame int) {
	pt[page].Frame = frame
	pt[page].Resident = true
}

// unload clears the residency of page and returns the frame it was using.
// The reference bit is left as is.
func (pt PageTable) unload(page int) int {
	frame := pt[page].Frame
	pt[page].Resident = false
	pt[page].Frame = NoFrame
	return frame
}
