package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/ytget/tiktok-downloader/internal/platform"
)

// Quality presets for downloads
type QualityPreset string

const (
	QualityBest  QualityPreset = "best"
	QualityWorst QualityPreset = "worst"
	Quality720p  QualityPreset = "720p"
	Quality480p  QualityPreset = "480p"
	Quality360p  QualityPreset = "360p"
)

// Format selectors handed to yt-dlp
const (
	FormatBest         = "best"
	FormatWorst        = "worst"
	FormatMP4Preferred = "best[ext=mp4]/best"
	formatHeightLimit  = "best[height<=%s]/best"
)

// FormatSelector returns the yt-dlp format expression for the preset.
// Unknown presets fall back to "best".
func (q QualityPreset) FormatSelector() string {
	switch q {
	case QualityWorst:
		return FormatWorst
	case Quality720p, Quality480p, Quality360p:
		return fmt.Sprintf(formatHeightLimit, strings.TrimSuffix(string(q), "p"))
	default:
		return FormatBest
	}
}

// IsValid reports whether q is one of the known presets
func (q QualityPreset) IsValid() bool {
	for _, p := range QualityPresetOptions() {
		if p == q {
			return true
		}
	}
	return false
}

// QualityPresetOptions returns available quality presets in display order
func QualityPresetOptions() []QualityPreset {
	return []QualityPreset{QualityBest, QualityWorst, Quality720p, Quality480p, Quality360p}
}

// Environment keys
const (
	EnvDownloadDir     = "TIKTOK_DOWNLOAD_DIR"
	EnvQuality         = "TIKTOK_QUALITY"
	EnvRemoveWatermark = "TIKTOK_REMOVE_WATERMARK"
	EnvLanguage        = "TIKTOK_LANGUAGE"
	EnvLogLevel        = "TIKTOK_LOG_LEVEL"
	EnvYTDLPPath       = "TIKTOK_YTDLP_PATH"
	EnvYTDLPInstall    = "TIKTOK_YTDLP_INSTALL"
)

// Default values
const (
	DefaultQualityPreset   = QualityBest
	DefaultRemoveWatermark = true
	DefaultLanguage        = "system"
	DefaultLogLevel        = "info"
	DefaultYTDLPInstall    = true
	FallbackDownloadDir    = "/tmp/downloads"
)

// Settings holds session configuration. It is seeded from the environment once
// and changed only in memory; nothing is written back.
type Settings struct {
	mu              sync.RWMutex
	downloadDir     string
	quality         QualityPreset
	removeWatermark bool
	language        string
	logLevel        string
	ytdlpPath       string
	installYTDLP    bool
}

// NewSettings creates settings with default values
func NewSettings() *Settings {
	dir, err := platform.DefaultDownloadDir()
	if err != nil {
		dir = FallbackDownloadDir
	}
	return &Settings{
		downloadDir:     dir,
		quality:         DefaultQualityPreset,
		removeWatermark: DefaultRemoveWatermark,
		language:        DefaultLanguage,
		logLevel:        DefaultLogLevel,
		installYTDLP:    DefaultYTDLPInstall,
	}
}

// Load reads optional .env files and then the process environment
func Load(envFiles ...string) *Settings {
	// A missing .env file is not an error
	_ = godotenv.Load(envFiles...)
	return FromEnv(os.LookupEnv)
}

// FromEnv builds settings from a lookup function, keeping defaults for unset or invalid values
func FromEnv(lookup func(string) (string, bool)) *Settings {
	s := NewSettings()

	if v, ok := lookup(EnvDownloadDir); ok && strings.TrimSpace(v) != "" {
		s.downloadDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvQuality); ok {
		if q := QualityPreset(strings.ToLower(strings.TrimSpace(v))); q.IsValid() {
			s.quality = q
		}
	}
	if v, ok := lookup(EnvRemoveWatermark); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			s.removeWatermark = b
		}
	}
	if v, ok := lookup(EnvLanguage); ok && strings.TrimSpace(v) != "" {
		s.language = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		s.logLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvYTDLPPath); ok {
		s.ytdlpPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvYTDLPInstall); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			s.installYTDLP = b
		}
	}
	return s
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.downloadDir
}

// SetDownloadDirectory sets the download directory; empty values are ignored
func (s *Settings) SetDownloadDirectory(dir string) {
	if strings.TrimSpace(dir) == "" {
		return
	}
	s.mu.Lock()
	s.downloadDir = dir
	s.mu.Unlock()
}

// GetQualityPreset returns the configured quality preset
func (s *Settings) GetQualityPreset() QualityPreset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quality
}

// SetQualityPreset sets the quality preset; unknown presets reset to the default
func (s *Settings) SetQualityPreset(preset QualityPreset) {
	if !preset.IsValid() {
		preset = DefaultQualityPreset
	}
	s.mu.Lock()
	s.quality = preset
	s.mu.Unlock()
}

// GetRemoveWatermark returns whether the mp4-first format is forced
func (s *Settings) GetRemoveWatermark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.removeWatermark
}

// SetRemoveWatermark sets the watermark removal preference
func (s *Settings) SetRemoveWatermark(remove bool) {
	s.mu.Lock()
	s.removeWatermark = remove
	s.mu.Unlock()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
}

// GetLogLevel returns the diagnostic log level name
func (s *Settings) GetLogLevel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logLevel
}

// GetYTDLPPath returns an explicit yt-dlp executable path, empty to resolve automatically
func (s *Settings) GetYTDLPPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ytdlpPath
}

// SetYTDLPPath sets the yt-dlp executable used for the next download
func (s *Settings) SetYTDLPPath(path string) {
	s.mu.Lock()
	s.ytdlpPath = strings.TrimSpace(path)
	s.mu.Unlock()
}

// GetInstallYTDLP returns whether a missing yt-dlp may be downloaded
func (s *Settings) GetInstallYTDLP() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.installYTDLP
}
