package download

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/tiktok-downloader/internal/logger"
	"github.com/ytget/tiktok-downloader/internal/platform"
)

// Progress reporting interval
const (
	ProgressInterval = 500 * time.Millisecond
)

// YTDLP downloads URLs by running yt-dlp
type YTDLP struct {
	options func() Options
}

// NewYTDLP creates an adapter reading options from the provider on every call
func NewYTDLP(options func() Options) *YTDLP {
	return &YTDLP{options: options}
}

// Download fetches a single URL. Any failure, including a cancelled context,
// is returned as *Error.
func (y *YTDLP) Download(ctx context.Context, url string, onProgress ProgressFunc) (*Result, error) {
	opts := y.options()
	cfg := opts.Config()

	if err := platform.CreateDirectoryIfNotExists(opts.OutputDir); err != nil {
		return nil, &Error{URL: url, Kind: KindFilesystem, Err: fmt.Errorf("prepare output directory: %w", err)}
	}

	dl := ytdlp.New().
		Output(cfg.OutputTemplate).
		Format(cfg.Format).
		NoWarnings()
	if cfg.Quiet {
		dl = dl.Quiet()
	}
	if opts.Executable != "" {
		dl = dl.SetExecutable(opts.Executable)
	}

	var (
		fileMu   sync.Mutex
		lastFile string
	)
	if onProgress != nil {
		// --progress keeps progress lines flowing while quiet
		dl = dl.Progress().ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			if update.Filename != "" {
				fileMu.Lock()
				lastFile = update.Filename
				fileMu.Unlock()
			}
			onProgress(Progress{
				Percent:  update.Percent(),
				Filename: update.Filename,
				Finished: update.Status == ytdlp.ProgressStatusFinished,
			})
		})
	}

	logger.Debug("Running yt-dlp", "url", url, "format", cfg.Format, "output", cfg.OutputTemplate)

	res, err := dl.Run(ctx, url)
	if err != nil {
		stderr := ""
		if res != nil {
			stderr = res.Stderr
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %v", ctx.Err(), err)
		}
		return nil, newError(url, err, stderr)
	}

	fileMu.Lock()
	result := &Result{URL: url, Format: cfg.Format, OutputPath: lastFile}
	fileMu.Unlock()
	if info, infoErr := res.GetExtractedInfo(); infoErr == nil && len(info) > 0 && info[0].Filename != nil {
		result.OutputPath = *info[0].Filename
	}
	return result, nil
}

// EnsureInstalled resolves the yt-dlp binary, downloading it into the cache
// when allowDownload is set and none is found on the system.
func EnsureInstalled(ctx context.Context, allowDownload bool) (string, error) {
	resolved, err := ytdlp.Install(ctx, &ytdlp.InstallOptions{
		DisableDownload:      !allowDownload,
		AllowVersionMismatch: true,
	})
	if err != nil {
		return "", fmt.Errorf("resolve yt-dlp: %w", err)
	}
	logger.Info("yt-dlp resolved", "executable", resolved.Executable, "version", strings.TrimSpace(resolved.Version))
	return resolved.Executable, nil
}
