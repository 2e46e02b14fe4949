package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "tiktok-downloader.png"
)

//go:embed tiktok-downloader.png
var appIconPNG []byte

// LogoResource is the application icon bundled into the binary
var LogoResource = fyne.NewStaticResource(AppIcon, appIconPNG)
