// chooser.go - Dateiauswahl im Fenster (F3)
//
// Die Auswahl laeuft in der Eventschleife; waehrend sie offen ist, gehen
// keine Zeichen an die Console. Enter uebernimmt den markierten Namen,
// Esc bricht ab (der Leser wird mit dem Ignore-Marker geweckt).
package window

import (
	"log/slog"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const chooserTitle = " Dateiauswahl "

type chooser struct {
	names []string
	sel   int
}

func (w *Window) chooserOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chooser != nil
}

// openChooser oeffnet die Auswahl, wenn gerade ein Dateiname gelesen wird
func (w *Window) openChooser() {
	if w.Picker == nil || !w.Picker.PickEnabled() {
		return
	}

	var names []string
	if w.Candidates != nil {
		var err error
		if names, err = w.Candidates(); err != nil {
			slog.Warn("window: listing pick candidates", "error", err)
		}
	}

	w.mu.Lock()
	w.chooser = &chooser{names: names}
	w.mu.Unlock()
	w.draw()
}

func (w *Window) closeChooser(name string, ok bool) {
	w.mu.Lock()
	w.chooser = nil
	w.mu.Unlock()

	w.Picker.DeliverPick(name, ok)
	w.draw()
}

func (w *Window) chooserKey(ev *tcell.EventKey) {
	w.mu.Lock()
	c := w.chooser
	w.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyUp:
		w.mu.Lock()
		c.move(-1)
		w.mu.Unlock()
	case tcell.KeyDown, tcell.KeyTab:
		w.mu.Lock()
		c.move(1)
		w.mu.Unlock()
	case tcell.KeyEnter:
		if len(c.names) == 0 {
			w.closeChooser("", false)
			return
		}
		w.closeChooser(c.names[c.sel], true)
		return
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyF3:
		w.closeChooser("", false)
		return
	}
	w.draw()
}

func (c *chooser) move(delta int) {
	if len(c.names) == 0 {
		return
	}
	c.sel = (c.sel + delta + len(c.names)) % len(c.names)
}

// draw zeichnet die Auswahl als Kasten ueber den Textbereich
func (c *chooser) draw(s tcell.Screen, cols, rows int) {
	lines := make([]string, 0, len(c.names))
	for _, name := range c.names {
		lines = append(lines, filepath.Base(name))
	}
	if len(lines) == 0 {
		lines = append(lines, "(keine Dateien)")
	}

	boxW := runewidth.StringWidth(chooserTitle) + 2
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l)+4)
	}
	boxW = min(boxW, cols)
	boxH := min(len(lines)+2, rows-2)

	x0 := (cols - boxW) / 2
	y0 := 1 + (rows-2-boxH)/2

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			s.SetContent(x, y, ' ', nil, styleText)
		}
		s.SetContent(x0, y, tcell.RuneVLine, nil, styleText)
		s.SetContent(x0+boxW-1, y, tcell.RuneVLine, nil, styleText)
	}
	for x := x0; x < x0+boxW; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, styleText)
		s.SetContent(x, y0+boxH-1, tcell.RuneHLine, nil, styleText)
	}
	drawString(s, x0+1, y0, chooserTitle, styleTitle)

	// nur so viele Namen wie in den Kasten passen, Auswahl bleibt sichtbar
	visible := boxH - 2
	first := 0
	if c.sel >= visible {
		first = c.sel - visible + 1
	}
	for i := 0; i < visible && first+i < len(lines); i++ {
		style := styleText
		if first+i == c.sel && len(c.names) > 0 {
			style = styleSelect
		}
		text := runewidth.Truncate(lines[first+i], boxW-4, "...")
		drawString(s, x0+2, y0+1+i, text, style)
	}
}
