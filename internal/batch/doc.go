package batch

// Package batch runs a list of URLs through a download.Downloader one at a
// time on a single worker goroutine. Pause blocks the worker before the next
// URL until Resume; Stop cancels the run context, which also interrupts the
// in-flight download. Progress is published as Events on a channel that the
// caller must drain until it is closed.
