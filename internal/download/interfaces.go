package download

import "context"

// Downloader defines the single operation the batch runner needs.
// Download blocks until the URL is fetched, fails, or ctx is cancelled.
type Downloader interface {
	Download(ctx context.Context, url string, onProgress ProgressFunc) (*Result, error)
}

// ProgressFunc receives in-flight progress for one URL. It may be nil.
type ProgressFunc func(Progress)

// Progress is a single progress sample reported by the extractor
type Progress struct {
	Percent  float64 // 0 to 100
	Filename string
	Finished bool
}

// Result describes a successful download
type Result struct {
	URL        string
	OutputPath string
	Format     string
}
