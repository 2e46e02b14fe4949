package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ytget/tiktok-downloader/internal/config"
)

const testURL = "https://www.tiktok.com/@user/video/1"

// fakeExecutable writes a shell script standing in for yt-dlp
func fakeExecutable(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "yt-dlp")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write fake yt-dlp: %v", err)
	}
	return path
}

func TestYTDLP_DownloadSuccess(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args.txt")
	exe := fakeExecutable(t, `printf '%s\n' "$@" > "`+argsFile+`"`)

	dl := NewYTDLP(Static(Options{
		OutputDir:       dir,
		Quality:         config.Quality480p,
		RemoveWatermark: true,
		Executable:      exe,
	}))

	res, err := dl.Download(context.Background(), testURL, nil)
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if res == nil || res.URL != testURL {
		t.Fatalf("Unexpected result: %+v", res)
	}
	if res.Format != config.FormatMP4Preferred {
		t.Errorf("Expected format %s, got %s", config.FormatMP4Preferred, res.Format)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	args := string(data)
	for _, want := range []string{config.FormatMP4Preferred, filepath.Join(dir, OutputTemplate), testURL} {
		if !strings.Contains(args, want) {
			t.Errorf("yt-dlp args missing %q:\n%s", want, args)
		}
	}
}

func TestYTDLP_DownloadCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "TikTok")
	exe := fakeExecutable(t, "exit 0")

	dl := NewYTDLP(Static(Options{OutputDir: dir, Executable: exe}))
	if _, err := dl.Download(context.Background(), testURL, nil); err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Output directory was not created: %v", err)
	}
}

func TestYTDLP_DownloadFailureIsClassified(t *testing.T) {
	exe := fakeExecutable(t, `echo "ERROR: Unsupported URL: $1" >&2
exit 1`)

	dl := NewYTDLP(Static(Options{OutputDir: t.TempDir(), Executable: exe}))
	res, err := dl.Download(context.Background(), testURL, nil)
	if err == nil {
		t.Fatal("Expected an error for a failing yt-dlp run")
	}
	if res != nil {
		t.Errorf("Expected no result on failure, got %+v", res)
	}

	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if de.URL != testURL {
		t.Errorf("Expected URL %s, got %s", testURL, de.URL)
	}
	if KindOf(err) != KindUnsupported {
		t.Errorf("Expected %s, got %s", KindUnsupported, KindOf(err))
	}
}

func TestYTDLP_DownloadCanceled(t *testing.T) {
	exe := fakeExecutable(t, "exec sleep 5")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	dl := NewYTDLP(Static(Options{OutputDir: t.TempDir(), Executable: exe}))
	start := time.Now()
	_, err := dl.Download(ctx, testURL, nil)
	if err == nil {
		t.Fatal("Expected an error when the context ends")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Cancellation took %v, expected the process to be killed", elapsed)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected the context error to be wrapped, got %v", err)
	}
	if KindOf(err) != KindCanceled {
		t.Errorf("Expected %s, got %s", KindCanceled, KindOf(err))
	}
}

func TestYTDLP_DownloadOutputDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	exe := fakeExecutable(t, "exit 0")

	dl := NewYTDLP(Static(Options{OutputDir: file, Executable: exe}))
	_, err := dl.Download(context.Background(), testURL, nil)
	if err == nil {
		t.Fatal("Expected an error when the output path is a file")
	}
	if KindOf(err) != KindFilesystem {
		t.Errorf("Expected %s, got %s", KindFilesystem, KindOf(err))
	}
}
