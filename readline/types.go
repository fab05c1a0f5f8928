// Package readline - Konstanten und Schnittstellen
//
// Dieses Modul enthaelt die Tastencodes, Sentinels und die Schnittstellen
// zwischen Host (Key-Source, Display) und Zeilen-Assembler.
//
// Hauptkomponenten:
// - KeyCancel/KeyIgnore: reservierte Werte fuer Abbruch und Auswahl
// - Publisher/KeySource: Erzeuger-Seite der Zeichen-Uebergabe
// - DisplaySink/Eraser: Ausgabe-Seite

package readline

import (
	"context"
	"errors"
)

const (
	// KeyCancel ist das Sentinel "Fenster geschlossen"
	KeyCancel rune = 0
	// KeyIgnore weckt den Leser, wird aber nie in die Zeile uebernommen
	KeyIgnore rune = 1

	CharInterrupt rune = 3
	CharEOT       rune = 4
	CharBackspace rune = 8
	CharTab       rune = 9
	CharEnter     rune = '\n'
	CharReturn    rune = '\r'
	CharEsc       rune = 27
	CharSpace     rune = ' '
	CharDelete    rune = 127
)

const (
	ClearScreen = "\033[2J"
	CursorReset = "\033[0;0f"
	ClearToEOL  = "\033[K"
	CursorBack  = "\b \b"
)

var (
	// ErrBusy wird geliefert, wenn bereits ein ReadLine laeuft
	ErrBusy = errors.New("readline: read already in progress")

	// ErrInterrupt meldet ein vom Host ausgeloestes Ende
	ErrInterrupt = errors.New("Interrupt")
)

// Publisher nimmt einzelne Zeichen vom Host entgegen
type Publisher interface {
	Publish(r rune)
}

// Offerer ist ein Publisher, der warten kann bis der Slot frei ist
type Offerer interface {
	Publisher
	Offer(ctx context.Context, r rune) error
}

// KeySource liefert Zeichen aus einer Event-Schleife, die nicht dem Leser gehoert
type KeySource interface {
	Run(ctx context.Context, p Publisher) error
}

// DisplaySink ist die Anzeige (Textbereich) der Konsole
type DisplaySink interface {
	Append(text string)
	Clear()
}

// Eraser ist optional: entfernt die letzten n Spalten der Anzeige
type Eraser interface {
	Erase(n int)
}

// Picker ist die Schnittstelle fuer externe Dateiauswahl (F3)
type Picker interface {
	PickEnabled() bool
	DeliverPick(name string, ok bool)
}

// Send nutzt Offer wenn p das unterstuetzt, sonst Publish
func Send(ctx context.Context, p Publisher, r rune) error {
	if o, ok := p.(Offerer); ok {
		return o.Offer(ctx, r)
	}
	p.Publish(r)
	return nil
}
