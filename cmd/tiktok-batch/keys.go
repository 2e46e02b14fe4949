package main

import (
	"github.com/eiannone/keyboard"

	"github.com/ytget/tiktok-downloader/internal/batch"
	"github.com/ytget/tiktok-downloader/internal/logger"
)

// Action is a control request typed by the user
type Action int

const (
	ActionNone Action = iota
	ActionTogglePause
	ActionStop
)

// actionForKey maps a key press to an action
func actionForKey(char rune, key keyboard.Key) Action {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return ActionStop
	}
	switch char {
	case 'p', 'P', ' ':
		return ActionTogglePause
	case 's', 'S', 'q', 'Q':
		return ActionStop
	}
	return ActionNone
}

// controller is the part of the runner the key handler drives
type controller interface {
	TogglePause() (bool, error)
	Stop() error
}

// applyAction forwards an action to the runner and reports it on the console
func applyAction(c controller, out *console, action Action) {
	switch action {
	case ActionTogglePause:
		paused, err := c.TogglePause()
		if err != nil {
			logger.Debug("Pause toggle ignored", "error", err)
			return
		}
		if paused {
			out.note("pause requested, waiting for the current download")
		} else {
			out.note("resumed")
		}
	case ActionStop:
		if err := c.Stop(); err != nil {
			logger.Debug("Stop ignored", "error", err)
			return
		}
		out.note("stop requested")
	}
}

var _ controller = (*batch.Runner)(nil)
