package model

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// BatchItem represents one URL of a batch and what happened to it
type BatchItem struct {
	ID         string
	Index      int // zero-based position in the batch
	URL        string
	Status     ItemStatus
	LastError  string // last error message if any
	ErrorKind  string // best-effort failure category, empty on success
	OutputPath string // path reported by the extractor
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewBatchItem creates a pending item for the URL at index
func NewBatchItem(index int, url string) *BatchItem {
	return &BatchItem{
		ID:     uuid.NewString(),
		Index:  index,
		URL:    url,
		Status: ItemStatusPending,
	}
}

// Position returns the one-based "[i/n]" prefix used in log lines
func (bi *BatchItem) Position(total int) string {
	return fmt.Sprintf("[%d/%d]", bi.Index+1, total)
}

// Duration returns how long the adapter call took, or zero if it has not finished
func (bi *BatchItem) Duration() time.Duration {
	if bi.StartedAt.IsZero() || bi.FinishedAt.IsZero() {
		return 0
	}
	return bi.FinishedAt.Sub(bi.StartedAt)
}

// GetDisplayTitle returns the downloaded file name without extension, or the URL
func (bi *BatchItem) GetDisplayTitle() string {
	if bi.OutputPath != "" {
		name := filepath.Base(bi.OutputPath)
		if ext := filepath.Ext(name); ext != "" && len(ext) < len(name) {
			name = name[:len(name)-len(ext)]
		}
		return name
	}
	return bi.URL
}
