package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ytget/tiktok-downloader/internal/batch"
	"github.com/ytget/tiktok-downloader/internal/model"
)

// console renders batch events as a progress bar with log lines above it
type console struct {
	out     io.Writer
	bar     *progressbar.ProgressBar
	total   int
	summary model.Summary
}

func newConsole(out io.Writer, total int) *console {
	return &console{
		out:   out,
		total: total,
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("waiting"),
			progressbar.OptionSetItsString("video"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

// handle applies one worker event
func (c *console) handle(ev batch.Event) {
	pos := ev.Item.Position(c.total)

	switch ev.Type {
	case batch.EventItemStarted:
		c.bar.Describe(pos + " downloading")
		c.note(fmt.Sprintf("%s start %s", pos, ev.Item.URL))
	case batch.EventItemProgress:
		c.bar.Describe(fmt.Sprintf("%s %5.1f%%", pos, ev.Percent))
	case batch.EventItemCompleted:
		c.note(fmt.Sprintf("%s done %s", pos, ev.Item.GetDisplayTitle()))
	case batch.EventItemFailed:
		c.note(fmt.Sprintf("%s failed (%s): %s", pos, ev.Item.ErrorKind, ev.Item.LastError))
	case batch.EventItemStopped:
		c.note(pos + " interrupted")
	case batch.EventPaused:
		c.bar.Describe("paused")
	case batch.EventResumed:
		c.bar.Describe("resumed")
	case batch.EventFinished:
		c.summary = ev.Summary
		_ = c.bar.Finish()
		fmt.Fprintln(c.out)
		if ev.Summary.Stopped {
			fmt.Fprintln(c.out, "stopped by user")
		}
		fmt.Fprintln(c.out, ev.Summary.String())
	}

	if ev.IsItemResult() {
		_ = c.bar.Set(ev.Progress.Done())
	}
}

// note prints a timestamped line above the bar
func (c *console) note(msg string) {
	_ = c.bar.Clear()
	fmt.Fprintf(c.out, "%s %s\n", time.Now().Format("15:04:05"), msg)
	_ = c.bar.RenderBlank()
}

// exitCode is 0 only when every URL was downloaded
func exitCode(s model.Summary) int {
	if s.Total > 0 && !s.Stopped && s.Completed == s.Total {
		return 0
	}
	return 1
}
