package ui

import (
	"context"
	"errors"
	"fmt"

	"VisualShell/internal/config"
	"VisualShell/internal/logger"
	"VisualShell/internal/runner"
	"VisualShell/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Options configure RunApp.
type Options struct {
	Logger *logger.Logger
	// InitialFile is loaded once the window is up. Empty means none.
	InitialFile string
}

type appUI struct {
	win      fyne.Window
	board    *BoardWidget
	toolbar  *Toolbar
	settings *config.Settings
	log      *logger.Logger

	settingsDialog *SettingsDialog
}

// RunApp builds the main window and blocks until it is closed.
func RunApp(a fyne.App, opts Options) {
	ui := newAppUI(a, opts.Logger)
	if opts.InitialFile != "" {
		ui.loadPath(opts.InitialFile)
	}
	ui.win.ShowAndRun()
}

func newAppUI(a fyne.App, log *logger.Logger) *appUI {
	if log == nil {
		log = logger.Nop()
	}
	settings := config.NewSettings(a)

	ui := &appUI{
		win:      a.NewWindow("Visual Shell"),
		settings: settings,
		log:      log,
	}

	board := state.NewBoard(settings.GetMaxShapes())
	ui.board = NewBoardWidget(board, settings.GetCanvasSize(), log)
	ui.board.OnRectDrawn = ui.onRectDrawn
	ui.board.OnShapeSecondaryTapped = ui.onShapeSecondaryTapped

	ui.toolbar = NewToolbar(ui.board, Actions{
		OnNew:      ui.onNew,
		OnErase:    ui.onErase,
		OnSave:     ui.onSave,
		OnLoad:     ui.onLoad,
		OnExport:   ui.onExportPDF,
		OnSettings: ui.onSettings,
	})
	ui.board.OnCountChanged = ui.toolbar.SetCount

	content := container.NewBorder(
		ui.toolbar.Content(),
		ui.board.StatusBar(),
		nil, nil,
		container.NewCenter(ui.board),
	)
	ui.win.SetContent(content)
	size := settings.GetCanvasSize()
	ui.win.Resize(fyne.NewSize(size.Width+200, size.Height+140))

	log.Info("app", "window ready", map[string]interface{}{
		"session": board.Session(),
		"max":     board.Max(),
	})
	return ui
}

func (a *appUI) onNew() {
	a.board.NewDrawing()
}

func (a *appUI) onErase() {
	if err := a.board.Erase(); err != nil {
		if errors.Is(err, state.ErrNothingToErase) {
			dialog.ShowInformation("Erase", "No shape to erase.", a.win)
			return
		}
		dialog.ShowError(err, a.win)
	}
}

func (a *appUI) onSettings() {
	if a.settingsDialog == nil {
		a.settingsDialog = NewSettingsDialog(a.settings, a.board, a.win)
		a.settingsDialog.OnApplied = a.applySettings
	}
	a.settingsDialog.Show()
}

// applySettings refreshes what depends on the board limit and size.
func (a *appUI) applySettings() {
	b := a.board.Board()
	a.toolbar.SetCount(b.Len(), b.Max())
	a.win.Content().Refresh()
}

func (a *appUI) onRectDrawn(r state.Rect) {
	newShapeForm(r, a.win, func(name, command string) {
		if err := a.board.AddShape(r, name, command); err != nil {
			dialog.ShowError(err, a.win)
		}
	}).Show()
}

func (a *appUI) onShapeSecondaryTapped(s state.Shape) {
	if s.Command == "" {
		a.board.SetStatus(fmt.Sprintf("%q has no command", s.Name))
		return
	}
	msg := fmt.Sprintf("Run the command of %q?\n\n%s", s.Name, s.Command)
	dialog.ShowConfirm("Run command", msg, func(ok bool) {
		if ok {
			a.runCommand(s)
		}
	}, a.win)
}

func (a *appUI) runCommand(s state.Shape) {
	timeout := a.settings.GetCommandTimeout()
	a.board.SetStatus(fmt.Sprintf("Running %q...", s.Name))
	a.log.Info("runner", "command started", map[string]interface{}{
		"shape":   s.Name,
		"command": s.Command,
	})

	go func() {
		res, err := runner.Run(context.Background(), s.Command, timeout)
		fyne.Do(func() {
			a.showCommandResult(s, res, err)
		})
	}()
}

func (a *appUI) showCommandResult(s state.Shape, res runner.Result, err error) {
	fields := map[string]interface{}{
		"shape":    s.Name,
		"exit":     res.ExitCode,
		"duration": res.Duration.String(),
	}
	if err != nil {
		a.log.Error("runner", err, fields)
		a.board.SetStatus(fmt.Sprintf("%q failed", s.Name))
	} else {
		a.log.Info("runner", "command finished", fields)
		a.board.SetStatus(fmt.Sprintf("%q finished", s.Name))
	}

	output := res.Output
	if output == "" {
		output = "(no output)"
	}
	if err != nil {
		output = err.Error() + "\n\n" + output
	}
	text := widget.NewLabel(output)
	text.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom(fmt.Sprintf("Output of %s", s.Name), "Close", container.NewVScroll(text), a.win)
	d.Resize(fyne.NewSize(480, 320))
	d.Show()
}
