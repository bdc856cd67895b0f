package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"VisualShell/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const (
	csvExt = ".csv"
	pdfExt = ".pdf"
)

func (a *appUI) onSave() {
	if a.board.Board().Len() == 0 {
		dialog.ShowInformation("Save", "Nothing to save: draw a shape first.", a.win)
		return
	}
	a.showSaveDialog(csvExt, "shapes.csv", a.board.SaveTo, "Save")
}

func (a *appUI) onExportPDF() {
	if a.board.Board().Len() == 0 {
		dialog.ShowInformation("Export PDF", "Nothing to export: draw a shape first.", a.win)
		return
	}
	a.showSaveDialog(pdfExt, "shapes.pdf", a.board.ExportPDF, "Export PDF")
}

func (a *appUI) showSaveDialog(ext, defaultName string, write func(io.Writer) error, title string) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.fail(title, err)
			return
		}
		if writer == nil {
			return
		}

		writer, err = withDefaultExtension(writer, ext)
		if err != nil {
			a.fail(title, err)
			return
		}
		uri := writer.URI()
		err = write(writer)
		if closeErr := writer.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			a.fail(title, err)
			return
		}

		a.rememberDirectory(uri)
		dialog.ShowInformation(title, fmt.Sprintf("Wrote %d shapes to %s.", a.board.Board().Len(), uri.Name()), a.win)
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.SetFileName(defaultName)
	a.startIn(d)
	d.Show()
}

func (a *appUI) onLoad() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.fail("Load", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		if err := a.load(reader, reader.URI().Name()); err != nil {
			return
		}
		a.rememberDirectory(reader.URI())
	}, a.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{csvExt}))
	a.startIn(d)
	d.Show()
}

// loadPath opens a file given on the command line.
func (a *appUI) loadPath(path string) {
	f, err := os.Open(path)
	if err != nil {
		a.fail("Load", err)
		return
	}
	defer f.Close()
	_ = a.load(f, path)
}

func (a *appUI) load(r io.Reader, name string) error {
	n, err := a.board.LoadFrom(r)
	if err != nil {
		a.fail("Load", fmt.Errorf("could not load %s, the current drawing was kept: %w", name, err))
		return err
	}
	dialog.ShowInformation("Load", fmt.Sprintf("Loaded %d shapes from %s.", n, name), a.win)
	return nil
}

func (a *appUI) fail(title string, err error) {
	a.log.Error("files", err, map[string]interface{}{"action": title})
	if errors.Is(err, export.ErrNothingToSave) {
		dialog.ShowInformation(title, "Nothing to save: draw a shape first.", a.win)
		return
	}
	dialog.ShowError(err, a.win)
}

// startIn points a file dialog at the last used directory, if any.
func (a *appUI) startIn(d *dialog.FileDialog) {
	dir := a.settings.GetLastDirectory()
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

func (a *appUI) rememberDirectory(u fyne.URI) {
	parent, err := storage.Parent(u)
	if err != nil || parent.Scheme() != "file" {
		return
	}
	a.settings.SetLastDirectory(parent.Path())
}

// withDefaultExtension makes sure the target file name ends in ext when the
// user typed a name without any extension.
func withDefaultExtension(w fyne.URIWriteCloser, ext string) (fyne.URIWriteCloser, error) {
	u := w.URI()
	if u.Extension() != "" {
		return w, nil
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	if err := storage.Delete(u); err != nil {
		return nil, fmt.Errorf("remove %s: %w", u.Name(), err)
	}
	target, err := storage.ParseURI(strings.TrimSuffix(u.String(), "/") + ext)
	if err != nil {
		return nil, err
	}
	return storage.Writer(target)
}
