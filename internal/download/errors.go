package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind is a best-effort failure category. It only enriches log lines; callers
// still treat every failure the same way.
type Kind string

const (
	KindNetwork     Kind = "network"
	KindUnsupported Kind = "unsupported"
	KindUnavailable Kind = "unavailable"
	KindFormat      Kind = "format"
	KindFilesystem  Kind = "filesystem"
	KindMissingTool Kind = "missing-tool"
	KindCanceled    Kind = "canceled"
	KindUnknown     Kind = "unknown"
)

// Error describes a failed download
type Error struct {
	URL  string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("download %s failed (%s): %v", e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the category of err, KindUnknown for foreign errors
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// newError wraps err with a classification based on err and the tool's stderr
func newError(url string, err error, stderr string) *Error {
	return &Error{URL: url, Kind: classify(err, stderr), Err: err}
}

// classify maps yt-dlp error text to a Kind
func classify(err error, stderr string) Kind {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}

	text := strings.ToLower(stderr)
	if err != nil {
		text += " " + strings.ToLower(err.Error())
	}

	switch {
	case strings.Contains(text, "executable file not found"),
		strings.Contains(text, "yt-dlp not found"):
		return KindMissingTool
	case strings.Contains(text, "unsupported url"):
		return KindUnsupported
	case strings.Contains(text, "requested format is not available"),
		strings.Contains(text, "format not available"):
		return KindFormat
	case strings.Contains(text, "video unavailable"),
		strings.Contains(text, "private"),
		strings.Contains(text, "not available in your country"),
		strings.Contains(text, "http error 404"):
		return KindUnavailable
	case strings.Contains(text, "permission denied"),
		strings.Contains(text, "no space left"),
		strings.Contains(text, "read-only file system"):
		return KindFilesystem
	case strings.Contains(text, "unable to download"),
		strings.Contains(text, "connection"),
		strings.Contains(text, "timed out"),
		strings.Contains(text, "timeout"),
		strings.Contains(text, "network"),
		strings.Contains(text, "http error"):
		return KindNetwork
	}
	return KindUnknown
}
