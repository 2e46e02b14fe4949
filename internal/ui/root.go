package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tiktok-downloader/internal/batch"
	"github.com/ytget/tiktok-downloader/internal/collect"
	"github.com/ytget/tiktok-downloader/internal/config"
	"github.com/ytget/tiktok-downloader/internal/logger"
	"github.com/ytget/tiktok-downloader/internal/model"
	"github.com/ytget/tiktok-downloader/internal/platform"
)

// BatchController drives a batch on a background worker
type BatchController interface {
	Start(ctx context.Context, urls []string) (<-chan batch.Event, error)
	TogglePause() (bool, error)
	Stop() error
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	runner       BatchController

	titleLabel     *widget.Label
	urlEntry       *widget.Entry
	urlCountLabel  *widget.Label
	folderLabel    *widget.Label
	folderEntry    *widget.Entry
	browseBtn      *widget.Button
	qualityLabel   *widget.Label
	qualitySelect  *widget.Select
	watermarkCheck *widget.Check
	startBtn       *widget.Button
	pauseBtn       *widget.Button
	stopBtn        *widget.Button
	batchLabel     *widget.Label
	statusLabel    *widget.Label
	progressBar    *widget.ProgressBar
	logCard        *widget.Card
	logLines       binding.StringList
	logList        *widget.List

	total  int
	paused bool

	// openFolder is swapped in tests
	openFolder func(string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, runner BatchController) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		runner:       runner,
		logLines:     binding.NewStringList(),
		openFolder:   platform.OpenFolder,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL input
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetMinRowsVisible(URLEntryRows)
	ui.urlEntry.Wrapping = fyne.TextWrapOff
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.urlCountLabel = widget.NewLabel(ui.localization.GetText(KeyURLCountEmpty))
	ui.urlEntry.OnChanged = ui.onURLTextChanged

	// Save folder row
	ui.folderLabel = widget.NewLabel(ui.localization.GetText(KeySaveFolder))
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.folderEntry.Disable()
	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowseClick)
	folderRow := container.NewBorder(nil, nil, ui.folderLabel, ui.browseBtn,
		container.NewGridWrap(fyne.NewSize(FolderEntryMinWidth, ui.folderEntry.MinSize().Height), ui.folderEntry))

	// Quality and watermark row
	ui.qualityLabel = widget.NewLabel(ui.localization.GetText(KeyQuality))
	options := make([]string, 0, len(config.QualityPresetOptions()))
	for _, preset := range config.QualityPresetOptions() {
		options = append(options, string(preset))
	}
	ui.qualitySelect = widget.NewSelect(options, func(selected string) {
		ui.settings.SetQualityPreset(config.QualityPreset(selected))
	})
	ui.qualitySelect.SetSelected(string(ui.settings.GetQualityPreset()))
	ui.watermarkCheck = widget.NewCheck(ui.localization.GetText(KeyRemoveWatermark), ui.settings.SetRemoveWatermark)
	ui.watermarkCheck.SetChecked(ui.settings.GetRemoveWatermark())
	optionsRow := container.NewHBox(
		ui.qualityLabel,
		container.NewGridWrap(fyne.NewSize(QualitySelectWidth, ui.qualitySelect.MinSize().Height), ui.qualitySelect),
		ui.watermarkCheck,
	)

	// Controls
	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyDownloadAll), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.pauseBtn = widget.NewButton(ui.pauseText(), ui.onPauseClick)
	ui.stopBtn = widget.NewButton(IconStop+" "+ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.pauseBtn.Disable()
	ui.stopBtn.Disable()

	ui.batchLabel = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyWaiting))
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.TextFormatter = func() string {
		return fmt.Sprintf("%d/%d", int(ui.progressBar.Value), int(ui.progressBar.Max))
	}
	controlsRow := container.NewHBox(ui.startBtn, ui.pauseBtn, ui.stopBtn, ui.batchLabel)

	// Log
	ui.logList = widget.NewListWithData(ui.logLines,
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(item binding.DataItem, obj fyne.CanvasObject) {
			obj.(*widget.Label).Bind(item.(binding.String))
		},
	)
	ui.logCard = widget.NewCard("", ui.localization.GetText(KeyLog), nil)
	logMin := canvas.NewRectangle(color.Transparent)
	logMin.SetMinSize(fyne.NewSize(0, LogMinHeight))
	logArea := container.NewBorder(ui.logCard, nil, nil, nil, container.NewStack(logMin, ui.logList))

	top := container.NewVBox(
		ui.header(),
		widget.NewLabel(ui.localization.GetText(KeyURLInput)),
		ui.urlEntry,
		ui.urlCountLabel,
		folderRow,
		optionsRow,
		widget.NewSeparator(),
		controlsRow,
		ui.statusLabel,
		ui.progressBar,
	)

	ui.window.SetContent(container.NewPadded(container.NewBorder(top, nil, nil, nil, logArea)))
}

// header returns the logo row
func (ui *RootUI) header() fyne.CanvasObject {
	img := canvas.NewImageFromResource(LogoResource)
	img.SetMinSize(fyne.NewSize(32, 32))
	img.FillMode = canvas.ImageFillContain
	ui.titleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewHBox(img, ui.titleLabel)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem),
		languageMenu,
	))
}

// onLanguageChange switches the UI language and refreshes visible texts
func (ui *RootUI) onLanguageChange(code string) {
	ui.settings.SetLanguage(code)
	ui.localization.SetLanguage(code)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.refreshTexts()
}

// refreshTexts reapplies localized strings to widgets
func (ui *RootUI) refreshTexts() {
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyURLPlaceholder))
	ui.onURLTextChanged(ui.urlEntry.Text)
	ui.folderLabel.SetText(ui.localization.GetText(KeySaveFolder))
	ui.browseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyBrowse))
	ui.qualityLabel.SetText(ui.localization.GetText(KeyQuality))
	ui.watermarkCheck.Text = ui.localization.GetText(KeyRemoveWatermark)
	ui.watermarkCheck.Refresh()
	ui.startBtn.SetText(ui.localization.GetText(KeyDownloadAll))
	ui.pauseBtn.SetText(ui.pauseText())
	ui.stopBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStop))
	ui.logCard.SetSubTitle(ui.localization.GetText(KeyLog))
	if ui.startBtn.Disabled() {
		return
	}
	ui.statusLabel.SetText(ui.localization.GetText(KeyWaiting))
}

// onURLTextChanged updates the URL counter
func (ui *RootUI) onURLTextChanged(text string) {
	res := collect.Parse(text)
	if res.TotalLines == 0 {
		ui.urlCountLabel.SetText(ui.localization.GetText(KeyURLCountEmpty))
		return
	}
	ui.urlCountLabel.SetText(ui.localization.Format(KeyURLCount, res.TotalLines, res.ValidLines()))
}

// onBrowseClick lets the user pick the save folder
func (ui *RootUI) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setDownloadDirectory(uri.Path())
	}, ui.window)
}

// setDownloadDirectory stores dir as the save folder
func (ui *RootUI) setDownloadDirectory(dir string) {
	if dir == "" {
		return
	}
	ui.settings.SetDownloadDirectory(dir)
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.appendLog(ui.localization.Format(KeyFolderChanged, dir))
}

// onOpenFolder opens the save folder in the system file manager
func (ui *RootUI) onOpenFolder() {
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorCreatingDir), err), ui.window)
		return
	}
	if err := ui.openFolder(dir); err != nil {
		logger.Error("Failed to open folder", "dir", dir, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
	}
}

// onStartClick validates the input and starts a batch
func (ui *RootUI) onStartClick() {
	urls := collect.URLs(ui.urlEntry.Text)
	if len(urls) == 0 {
		dialog.ShowError(errors.New(ui.localization.GetText(KeyNoValidURLs)), ui.window)
		return
	}

	dir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorCreatingDir), err), ui.window)
		return
	}

	events, err := ui.runner.Start(context.Background(), urls)
	if err != nil {
		logger.Error("Failed to start batch", "error", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.total = len(urls)
	ui.paused = false
	ui.setRunningControls(true)
	ui.progressBar.Max = float64(ui.total)
	ui.progressBar.SetValue(0)

	go ui.consume(events)
}

// consume applies worker events on the UI thread until the channel closes
func (ui *RootUI) consume(events <-chan batch.Event) {
	for ev := range events {
		ev := ev
		fyne.Do(func() {
			ui.applyEvent(ev)
		})
	}
}

// applyEvent reflects one worker event into the widgets. Must run on the UI thread.
func (ui *RootUI) applyEvent(ev batch.Event) {
	pos := ev.Item.Position(ui.total)

	switch ev.Type {
	case batch.EventStarted:
		ui.appendLog(ui.localization.Format(KeyBatchStarted, ev.Progress.Total))
		ui.updateBatchLabel(ev.Progress)
	case batch.EventItemStarted:
		ui.statusLabel.SetText(ui.localization.Format(KeyItemDownloading, pos))
		ui.appendLog(ui.localization.Format(KeyItemStarted, pos, ev.Item.URL))
	case batch.EventItemProgress:
		ui.statusLabel.SetText(ui.localization.Format(KeyItemPercent, pos, ev.Percent))
	case batch.EventItemCompleted:
		ui.appendLog(ui.localization.Format(KeyItemDone, pos))
	case batch.EventItemFailed:
		ui.appendLog(ui.localization.Format(KeyItemFailed, pos, errText(ev.Err)))
	case batch.EventItemStopped:
		ui.appendLog(ui.localization.Format(KeyItemStopped, pos))
	case batch.EventPaused:
		ui.statusLabel.SetText(ui.localization.GetText(KeyWaitingResume))
		ui.appendLog(ui.localization.GetText(KeyPaused))
	case batch.EventResumed:
		ui.appendLog(ui.localization.GetText(KeyResumed))
	case batch.EventFinished:
		ui.onBatchFinished(ev.Summary)
	}

	if ev.IsItemResult() {
		ui.updateBatchLabel(ev.Progress)
	}
}

// onBatchFinished restores idle controls and shows the summary
func (ui *RootUI) onBatchFinished(summary model.Summary) {
	ui.paused = false
	ui.setRunningControls(false)
	ui.updateBatchLabel(model.Progress{Completed: summary.Completed, Failed: summary.Failed, Total: summary.Total})
	ui.statusLabel.SetText(ui.localization.Format(KeyBatchFinished, summary.Completed, summary.Total, summary.Failed))

	if summary.Stopped {
		ui.appendLog(ui.localization.GetText(KeyStoppedByUser))
	}
	ui.appendLog(ui.localization.Format(KeyBatchFinishedLog, summary.Completed, summary.Failed))

	title := ui.localization.GetText(KeyComplete)
	if summary.AllSucceeded() {
		dialog.ShowInformation(title, ui.localization.Format(KeyAllSucceeded, summary.Completed, summary.Total), ui.window)
		return
	}

	message := ui.localization.Format(KeySomeFailed, summary.Completed, summary.Total, summary.Failed, summary.Total)
	content := container.NewBorder(nil, nil, widget.NewIcon(theme.WarningIcon()), nil, widget.NewLabel(message))
	d := dialog.NewCustom(title, "OK", content, ui.window)
	d.Resize(fyne.NewSize(ResultDialogWidth, ResultDialogHeight))
	d.Show()
}

// onPauseClick toggles pause on the running batch
func (ui *RootUI) onPauseClick() {
	paused, err := ui.runner.TogglePause()
	if err != nil {
		logger.Warn("Pause toggle ignored", "error", err)
		return
	}
	ui.paused = paused
	ui.pauseBtn.SetText(ui.pauseText())
	if !paused {
		ui.statusLabel.SetText(ui.localization.GetText(KeyResumed))
	}
}

// onStopClick requests the batch to stop
func (ui *RootUI) onStopClick() {
	if err := ui.runner.Stop(); err != nil {
		logger.Warn("Stop ignored", "error", err)
		return
	}
	ui.pauseBtn.Disable()
	ui.stopBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStopRequested))
	ui.appendLog(ui.localization.GetText(KeyStopRequested))
}

// setRunningControls toggles widget enablement between running and idle
func (ui *RootUI) setRunningControls(running bool) {
	ui.pauseBtn.SetText(ui.pauseText())
	if running {
		ui.startBtn.Disable()
		ui.browseBtn.Disable()
		ui.qualitySelect.Disable()
		ui.watermarkCheck.Disable()
		ui.pauseBtn.Enable()
		ui.stopBtn.Enable()
		return
	}
	ui.startBtn.Enable()
	ui.browseBtn.Enable()
	ui.qualitySelect.Enable()
	ui.watermarkCheck.Enable()
	ui.pauseBtn.Disable()
	ui.stopBtn.Disable()
}

func (ui *RootUI) pauseText() string {
	if ui.paused {
		return IconPlay + " " + ui.localization.GetText(KeyResume)
	}
	return IconPause + " " + ui.localization.GetText(KeyPause)
}

// updateBatchLabel shows the counters and moves the progress bar past every finished item
func (ui *RootUI) updateBatchLabel(p model.Progress) {
	ui.batchLabel.SetText(ui.localization.Format(KeyBatchProgress, p.Completed, p.Total, p.Failed))
	ui.progressBar.SetValue(float64(p.Done()))
}

// appendLog adds a timestamped line to the log view and mirrors it to the logger
func (ui *RootUI) appendLog(message string) {
	line := fmt.Sprintf(LogLineFormat, time.Now().Format(LogTimeFormat), message)
	if err := ui.logLines.Append(line); err != nil {
		logger.Error("Failed to append log line", "error", err)
	}
	ui.logList.ScrollToBottom()
	logger.Info(message)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// NotifyDownloaderMissing logs that yt-dlp could not be resolved
func (ui *RootUI) NotifyDownloaderMissing(err error) {
	ui.appendLog(ui.localization.Format(KeyDownloaderMissing, errText(err)))
}
