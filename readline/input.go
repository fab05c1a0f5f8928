// Package readline - Input-Verarbeitungsmodul
//
// Dieses Modul enthaelt die Zustandsmaschine eines ReadLine-Aufrufs:
// WAITING_FOR_CHAR -> (Zeichen) -> WAITING_FOR_CHAR
//                  -> (Zeilenende) -> DONE
//                  -> (KeyCancel) -> CANCELLED
//
// Hauptkomponenten:
// - processKey: verarbeitet ein Zeichen aus der Cell
// - handleBackspace/handleEnter: Editieren und Abschluss inkl. Echo

package readline

import (
	"github.com/mattn/go-runewidth"
)

// processKey verarbeitet ein Zeichen. Gibt (fertig, abgebrochen) zurueck.
func (i *Instance) processKey(r rune, buf *Buffer) (bool, bool) {
	switch r {
	case KeyCancel:
		return false, true
	case KeyIgnore:
		// Marker fuer abgebrochene Auswahl, nie Teil der Zeile
	case CharBackspace:
		i.handleBackspace(buf)
	case CharEnter:
		i.handleEnter(buf)
		return true, false
	default:
		buf.Add(r)
		if i.echo {
			i.sink.Append(string(r))
		}
	}
	return false, false
}

// handleBackspace entfernt das letzte Zeichen, auf leerem Puffer ein No-op
func (i *Instance) handleBackspace(buf *Buffer) {
	r, ok := buf.Remove()
	if !ok || !i.echo {
		return
	}
	if e, ok := i.sink.(Eraser); ok {
		e.Erase(max(runewidth.RuneWidth(r), 1))
	}
}

// handleEnter uebernimmt eine vorliegende Auswahl und gibt das Zeilenende aus
func (i *Instance) handleEnter(buf *Buffer) {
	name, ok := i.takePick()
	if ok {
		if e, isEraser := i.sink.(Eraser); isEraser && i.echo {
			e.Erase(buf.DisplaySize())
		}
		buf.Replace([]rune(name))
		i.sink.Append(name)
	}
	if i.echo || ok {
		i.sink.Append("\n")
	}
}
