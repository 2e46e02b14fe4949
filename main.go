package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/tiktok-downloader/internal/batch"
	"github.com/ytget/tiktok-downloader/internal/config"
	"github.com/ytget/tiktok-downloader/internal/download"
	"github.com/ytget/tiktok-downloader/internal/logger"
	"github.com/ytget/tiktok-downloader/internal/platform"
	"github.com/ytget/tiktok-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.tiktok-downloader"
	AppName = "TikTok Downloader"

	WindowWidth  = 640
	WindowHeight = 720

	InstallTimeout = 2 * time.Minute
)

func main() {
	settings := config.Load()
	logger.Setup(os.Stdout, settings.GetLogLevel())
	logger.Info("Starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAccentTheme())
	myApp.SetIcon(ui.LogoResource)

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		logger.Warn("Failed to ensure downloads dir", "dir", settings.GetDownloadDirectory(), "error", err)
	}

	runner := batch.NewRunner(download.NewYTDLP(download.FromSettings(settings)))
	rootUI := ui.NewRootUI(myWindow, settings, runner)

	if settings.GetYTDLPPath() == "" {
		go resolveDownloader(settings, rootUI)
	}

	myWindow.ShowAndRun()
}

// resolveDownloader locates yt-dlp, fetching it when allowed, and stores the path for later downloads
func resolveDownloader(settings *config.Settings, rootUI *ui.RootUI) {
	ctx, cancel := context.WithTimeout(context.Background(), InstallTimeout)
	defer cancel()

	path, err := download.EnsureInstalled(ctx, settings.GetInstallYTDLP())
	if err != nil {
		logger.Error("yt-dlp unavailable", "error", err)
		fyne.Do(func() {
			rootUI.NotifyDownloaderMissing(err)
		})
		return
	}
	settings.SetYTDLPPath(path)
}
