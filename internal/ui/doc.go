package ui

// Package ui contains the Fyne-based desktop user interface. It collects the
// URL list and session options, drives a batch.Runner, and applies runner
// events on the UI thread via fyne.Do. All UI strings go through Localization.
