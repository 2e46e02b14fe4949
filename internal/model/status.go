package model

// BatchState represents the lifecycle of a batch run
type BatchState string

const (
	// BatchStateIdle means no batch has been started yet
	BatchStateIdle BatchState = "Idle"

	// BatchStateRunning means the worker is processing URLs
	BatchStateRunning BatchState = "Running"

	// BatchStatePaused means the worker will not start the next URL until resumed
	BatchStatePaused BatchState = "Paused"

	// BatchStateStopping means a stop was requested and the worker is winding down
	BatchStateStopping BatchState = "Stopping"

	// BatchStateFinished means the worker exited, either after the last URL or on stop
	BatchStateFinished BatchState = "Finished"
)

// String returns the string representation of BatchState
func (bs BatchState) String() string {
	return string(bs)
}

// IsActive returns true while a worker goroutine owns the batch
func (bs BatchState) IsActive() bool {
	return bs == BatchStateRunning || bs == BatchStatePaused || bs == BatchStateStopping
}

// CanStart returns true if a new batch may be started from this state
func (bs BatchState) CanStart() bool {
	return !bs.IsActive()
}

// ItemStatus represents the status of a single URL in a batch
type ItemStatus string

const (
	// ItemStatusPending means the URL is queued but not started
	ItemStatusPending ItemStatus = "Pending"

	// ItemStatusDownloading means the adapter call is in flight
	ItemStatusDownloading ItemStatus = "Downloading"

	// ItemStatusCompleted means the adapter reported success
	ItemStatusCompleted ItemStatus = "Completed"

	// ItemStatusFailed means the adapter reported failure
	ItemStatusFailed ItemStatus = "Failed"

	// ItemStatusStopped means the call was interrupted by a stop request
	ItemStatusStopped ItemStatus = "Stopped"
)

// String returns the string representation of ItemStatus
func (is ItemStatus) String() string {
	return string(is)
}
