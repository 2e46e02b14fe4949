// Command tiktok-batch downloads a list of TikTok URLs from a terminal.
//
// URLs are read one per line from -file or stdin. While running, press p to
// pause or resume and s, q or Esc to stop.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/eiannone/keyboard"

	"github.com/ytget/tiktok-downloader/internal/batch"
	"github.com/ytget/tiktok-downloader/internal/collect"
	"github.com/ytget/tiktok-downloader/internal/config"
	"github.com/ytget/tiktok-downloader/internal/download"
	"github.com/ytget/tiktok-downloader/internal/logger"
)

// Flags
type Flags struct {
	File      string
	Dir       string
	Quality   string
	Watermark bool
	LogLevel  string
}

func main() {
	settings := config.Load()

	var flags Flags
	flag.StringVar(&flags.File, "file", "", "File with one URL per line (default: stdin)")
	flag.StringVar(&flags.Dir, "dir", settings.GetDownloadDirectory(), "Directory to save downloads")
	flag.StringVar(&flags.Quality, "quality", string(settings.GetQualityPreset()), "Quality preset: best, worst, 720p, 480p, 360p")
	flag.BoolVar(&flags.Watermark, "watermark", settings.GetRemoveWatermark(), "Prefer the mp4 format without watermark")
	flag.StringVar(&flags.LogLevel, "log-level", settings.GetLogLevel(), "Log level: debug, info, warn, error")
	flag.Parse()

	logger.Setup(os.Stderr, flags.LogLevel)
	applyFlags(settings, flags)

	os.Exit(run(settings, flags))
}

// applyFlags copies command line values over the environment settings
func applyFlags(settings *config.Settings, flags Flags) {
	settings.SetDownloadDirectory(flags.Dir)
	settings.SetQualityPreset(config.QualityPreset(flags.Quality))
	settings.SetRemoveWatermark(flags.Watermark)
}

func run(settings *config.Settings, flags Flags) int {
	urls, total, err := readURLs(flags.File, os.Stdin)
	if err != nil {
		logger.Error("Failed to read URLs", "error", err)
		return 2
	}
	logger.Info("URLs collected", "lines", total, "valid", len(urls))
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "no valid TikTok URLs given")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if settings.GetYTDLPPath() == "" {
		path, err := download.EnsureInstalled(ctx, settings.GetInstallYTDLP())
		if err != nil {
			logger.Error("yt-dlp unavailable", "error", err)
			return 1
		}
		settings.SetYTDLPPath(path)
	}

	// Options are fixed for the whole run
	opts := download.FromSettings(settings)()
	logger.Debug("Download options", "dir", opts.OutputDir, "format", download.FormatSelector(opts), "executable", opts.Executable)
	runner := batch.NewRunner(download.NewYTDLP(download.Static(opts)))
	events, err := runner.Start(ctx, urls)
	if err != nil {
		logger.Error("Failed to start batch", "error", err)
		return 1
	}

	keys := openKeys()
	if keys != nil {
		defer keyboard.Close()
		fmt.Fprintln(os.Stderr, "p: pause/resume  s/q/Esc: stop")
	}

	out := newConsole(os.Stderr, len(urls))
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return exitCode(out.summary)
			}
			out.handle(ev)
		case kev, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			if kev.Err != nil {
				logger.Warn("Keyboard read failed", "error", kev.Err)
				keys = nil
				continue
			}
			applyAction(runner, out, actionForKey(kev.Rune, kev.Key))
		}
	}
}

// openKeys starts reading single key presses, or returns nil when no terminal is attached
func openKeys() <-chan keyboard.KeyEvent {
	keys, err := keyboard.GetKeys(8)
	if err != nil {
		logger.Warn("Keyboard controls disabled", "error", err)
		return nil
	}
	return keys
}

// readURLs reads the URL list from path, or from stdin when path is empty
func readURLs(path string, stdin io.Reader) ([]string, int, error) {
	var r io.Reader = stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, fmt.Errorf("open url file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read urls: %w", err)
	}
	res := collect.Parse(string(data))
	return res.URLs, res.TotalLines, nil
}
