package download

// Package download wraps yt-dlp (via github.com/lrstanley/go-ytdlp) behind a
// single blocking "download one URL" operation. It builds the yt-dlp
// configuration from session options, forwards progress, and converts any
// failure into a classified *Error.
