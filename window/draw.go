// draw.go - Darstellung des Fensters
// Hauptfunktionen: draw, wrap, drawString
package window

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleText   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Reverse(true).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelect = tcell.StyleDefault.Reverse(true)
)

const (
	hintExit = "Esc: Beenden"
	hintPick = "F3: Dateiauswahl"
)

// draw zeichnet das ganze Fenster neu
func (w *Window) draw() {
	w.mu.Lock()
	defer w.mu.Unlock()

	sw, sh := w.screen.Size()
	if sw <= 0 || sh < 3 {
		return
	}
	cols := sw
	if w.width > 0 && w.width < sw {
		cols = w.width
	}

	w.screen.Clear()

	// Titelzeile
	title := runewidth.Truncate(w.title, cols, "...")
	left := (cols - runewidth.StringWidth(title)) / 2
	for x := range cols {
		w.screen.SetContent(x, 0, ' ', nil, styleTitle)
	}
	drawString(w.screen, left, 0, title, styleTitle)

	// Textbereich: die letzten sichtbaren Zeilen, Cursor am Textende
	rows := wrap(w.text.String(), cols)
	height := sh - 2
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	for y, row := range rows {
		drawString(w.screen, 0, y+1, row, styleText)
	}
	last := rows[len(rows)-1]
	w.screen.ShowCursor(runewidth.StringWidth(last), len(rows))

	// Hinweiszeile
	hint := hintExit
	if w.Picker != nil && w.Picker.PickEnabled() {
		hint += " | " + hintPick
	}
	drawString(w.screen, 0, sh-1, runewidth.Truncate(hint, cols, ""), styleHint)

	if w.chooser != nil {
		w.chooser.draw(w.screen, cols, sh)
	}

	w.screen.Show()
}

// wrap bricht text an Zeilenenden und nach cols Spalten um.
// Das Ergebnis hat immer mindestens eine Zeile.
func wrap(text string, cols int) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		var sb strings.Builder
		width := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if width+rw > cols {
				rows = append(rows, sb.String())
				sb.Reset()
				width = 0
			}
			sb.WriteRune(r)
			width += rw
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
