// Package readline - Sink- und Skript-Modul
//
// Hauptkomponenten:
// - TextSink: Textbereich im Speicher (Modell fuer das Fenster, Tests)
// - Script: KeySource mit fester Zeichenfolge

package readline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

// TextSink ist ein Textbereich im Speicher. Alle Methoden sind
// nebenlaeufig nutzbar.
type TextSink struct {
	mu   sync.Mutex
	text []rune

	// OnChange wird nach jeder Aenderung ohne gehaltenen Lock aufgerufen
	OnChange func()
}

func (s *TextSink) Append(text string) {
	s.mu.Lock()
	s.text = append(s.text, []rune(text)...)
	s.mu.Unlock()
	s.changed()
}

func (s *TextSink) Clear() {
	s.mu.Lock()
	s.text = s.text[:0]
	s.mu.Unlock()
	s.changed()
}

// Erase entfernt Zeichen vom Ende, bis n Spalten entfernt sind.
// Ein Zeilenende wird nie entfernt.
func (s *TextSink) Erase(n int) {
	s.mu.Lock()
	for n > 0 && len(s.text) > 0 {
		last := s.text[len(s.text)-1]
		if last == CharEnter {
			break
		}
		s.text = s.text[:len(s.text)-1]
		n -= max(runewidth.RuneWidth(last), 1)
	}
	s.mu.Unlock()
	s.changed()
}

func (s *TextSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.text)
}

// Lines gibt den Inhalt zeilenweise zurueck
func (s *TextSink) Lines() []string {
	return strings.Split(s.String(), "\n")
}

func (s *TextSink) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}

// Script liefert eine feste Zeichenfolge. Jedes Zeichen wird erst
// abgelegt, wenn das vorige gelesen wurde (Offer), sofern der Publisher
// das unterstuetzt; sonst wird Delay zwischen den Zeichen gewartet.
type Script struct {
	Keys  []rune
	Delay time.Duration
}

// NewScript erstellt ein Script aus Text; \n beendet jeweils eine Zeile
func NewScript(text string) *Script {
	return &Script{Keys: []rune(text)}
}

func (s *Script) Run(ctx context.Context, p Publisher) error {
	for _, r := range s.Keys {
		if err := Send(ctx, p, r); err != nil {
			return err
		}
		if s.Delay > 0 {
			select {
			case <-time.After(s.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}
