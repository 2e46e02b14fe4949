package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons
const (
	IconFolder = "📁"
	IconPause  = "⏸"
	IconPlay   = "▶"
	IconStop   = "⏹"
)

// Text fragments
const (
	LogTimeFormat = "15:04:05"
	LogLineFormat = "%s  %s"
)

// Layout sizing
const (
	URLEntryRows                = 6
	QualitySelectWidth  float32 = 110
	LogMinHeight        float32 = 160
	ResultDialogWidth   float32 = 320
	ResultDialogHeight  float32 = 160
	FolderEntryMinWidth float32 = 280
)
