package batch

import "errors"

var (
	ErrNoURLs         = errors.New("no valid URLs to download")
	ErrAlreadyRunning = errors.New("batch already running")
	ErrNotRunning     = errors.New("batch is not running")
)
