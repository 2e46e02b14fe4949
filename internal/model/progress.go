package model

import "fmt"

// Progress is a snapshot of the batch counters.
// Index is the zero-based index of the item the snapshot refers to, -1 before the first item.
type Progress struct {
	Completed int
	Failed    int
	Total     int
	Index     int
}

// Done returns the number of items that reached a result
func (p Progress) Done() int {
	return p.Completed + p.Failed
}

// String renders "c/t done (failed: f)"
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d done (failed: %d)", p.Completed, p.Total, p.Failed)
}

// Summary describes a finished batch
type Summary struct {
	BatchID   string
	Completed int
	Failed    int
	Skipped   int // URLs abandoned or interrupted because of a stop request
	Total     int
	Stopped   bool
}

// AllSucceeded reports whether no URL failed. A stopped batch with no failures counts as success.
func (s Summary) AllSucceeded() bool {
	return s.Failed == 0
}

// String renders "completed: c/t, failed: f"
func (s Summary) String() string {
	return fmt.Sprintf("completed: %d/%d, failed: %d", s.Completed, s.Total, s.Failed)
}
