package batch

import "github.com/ytget/tiktok-downloader/internal/model"

// EventType identifies what happened in a batch
type EventType string

const (
	EventStarted       EventType = "started"
	EventItemStarted   EventType = "item_started"
	EventItemProgress  EventType = "item_progress"
	EventItemCompleted EventType = "item_completed"
	EventItemFailed    EventType = "item_failed"
	EventItemStopped   EventType = "item_stopped"
	EventPaused        EventType = "paused"
	EventResumed       EventType = "resumed"
	EventFinished      EventType = "finished"
)

// Event is a single progress notification from the worker.
// Item is a copy and is zero for batch-level events.
type Event struct {
	Type     EventType
	BatchID  string
	Item     model.BatchItem
	Progress model.Progress
	Percent  float64 // in-flight percent for EventItemProgress
	Err      error   // set for EventItemFailed and EventItemStopped
	Summary  model.Summary
}

// IsItemResult reports whether the event closes an item
func (e Event) IsItemResult() bool {
	return e.Type == EventItemCompleted || e.Type == EventItemFailed || e.Type == EventItemStopped
}
