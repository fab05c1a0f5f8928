// print.go - Ausgabe-Methoden der Console
// Hauptfunktionen: Print, Println, PrintPadded, PrintFloat, PrintRepeat
package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Print gibt die Werte wie fmt.Sprint aus
func (c *Console) Print(a ...any) {
	c.sink.Append(fmt.Sprint(a...))
}

// Println gibt die Werte wie fmt.Sprintln aus
func (c *Console) Println(a ...any) {
	c.sink.Append(fmt.Sprintln(a...))
}

// Printf gibt formatiert aus (sprachabhaengige Zahlen)
func (c *Console) Printf(format string, a ...any) {
	c.sink.Append(c.printer.Sprintf(format, a...))
}

// Clear loescht die Anzeige
func (c *Console) Clear() {
	c.sink.Clear()
}

// PrintPadded gibt v rechtsbuendig in width Spalten aus. Laengere Werte
// werden nicht abgeschnitten.
func (c *Console) PrintPadded(v any, width int) {
	c.sink.Append(padLeft(fmt.Sprint(v), width))
}

// PrintlnPadded wie PrintPadded, gefolgt von einem Zeilenwechsel
func (c *Console) PrintlnPadded(v any, width int) {
	c.sink.Append(padLeft(fmt.Sprint(v), width) + "\n")
}

// PrintFloat gibt d mit prec Nachkommastellen rechtsbuendig in width
// Spalten aus. NaN und Unendlich werden ohne Formatierung ausgegeben.
func (c *Console) PrintFloat(d float64, width, prec int) {
	c.sink.Append(c.formatFloat(d, width, prec))
}

// PrintlnFloat wie PrintFloat, gefolgt von einem Zeilenwechsel
func (c *Console) PrintlnFloat(d float64, width, prec int) {
	c.sink.Append(c.formatFloat(d, width, prec) + "\n")
}

// PrintRepeat gibt r count-mal aus; count <= 0 gibt nichts aus
func (c *Console) PrintRepeat(count int, r rune) {
	if count <= 0 {
		return
	}
	c.sink.Append(strings.Repeat(string(r), count))
}

func (c *Console) formatFloat(d float64, width, prec int) string {
	var s string
	switch {
	case math.IsNaN(d):
		s = "NaN"
	case math.IsInf(d, 1):
		s = "Infinity"
	case math.IsInf(d, -1):
		s = "-Infinity"
	default:
		s = c.printer.Sprintf(fmt.Sprintf("%%.%df", max(prec, 0)), d)
	}
	return padLeft(s, width)
}

func padLeft(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
