package download

import (
	"path/filepath"

	"github.com/ytget/tiktok-downloader/internal/config"
)

// OutputTemplate is the yt-dlp file name template inside the output directory
const OutputTemplate = "%(title)s.%(ext)s"

// Options is the session-wide configuration used for every URL
type Options struct {
	OutputDir       string
	Quality         config.QualityPreset
	RemoveWatermark bool
	Executable      string // explicit yt-dlp binary, empty to resolve from PATH/cache
}

// Config is the resolved configuration handed to yt-dlp
type Config struct {
	OutputTemplate string
	Format         string
	Quiet          bool
}

// FormatSelector returns the yt-dlp format expression for the options.
// Watermark removal forces the mp4-first selector regardless of quality.
func FormatSelector(opts Options) string {
	if opts.RemoveWatermark {
		return config.FormatMP4Preferred
	}
	return opts.Quality.FormatSelector()
}

// Config resolves the output template and format selector
func (o Options) Config() Config {
	return Config{
		OutputTemplate: filepath.Join(o.OutputDir, OutputTemplate),
		Format:         FormatSelector(o),
		Quiet:          true,
	}
}

// FromSettings returns an options provider reading the current session settings.
// Settings are read on every call so changes apply to the next URL.
func FromSettings(s *config.Settings) func() Options {
	return func() Options {
		return Options{
			OutputDir:       s.GetDownloadDirectory(),
			Quality:         s.GetQualityPreset(),
			RemoveWatermark: s.GetRemoveWatermark(),
			Executable:      s.GetYTDLPPath(),
		}
	}
}

// Static returns a provider that always yields opts
func Static(opts Options) func() Options {
	return func() Options { return opts }
}
