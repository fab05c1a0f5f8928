// Package window - Vollbild-Fenster als Host fuer die Console
//
// Das Fenster besteht aus einer Titelzeile, einem scrollenden Textbereich
// und einer Hinweiszeile. Tastatur-Events aus der tcell-Eventschleife
// werden an einen readline.Publisher weitergereicht (Erzeuger-Seite),
// der Textbereich ist der DisplaySink der Console.
//
// Hauptkomponenten:
// - Window: Fenster mit tcell.Screen
// - New/NewWithScreen: Konstruktoren
// - Run: Eventschleife (readline.KeySource)
// - chooser.go: Dateiauswahl (F3)
package window

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/jconsole/jconsole/readline"
)

// Window ist ein Vollbild-Fenster mit Textbereich
type Window struct {
	screen tcell.Screen
	title  string
	text   readline.TextSink

	mu      sync.Mutex
	width   int
	chooser *chooser

	// Picker und Candidates aktivieren die Dateiauswahl mit F3
	Picker     readline.Picker
	Candidates func() ([]string, error)
}

// New erstellt ein Fenster auf dem aktuellen Terminal
func New(title string) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, title), nil
}

// NewWithScreen erstellt ein Fenster auf screen (z.B. SimulationScreen)
func NewWithScreen(screen tcell.Screen, title string) *Window {
	w := &Window{screen: screen, title: title}
	w.text.OnChange = w.draw
	return w
}

// SetWidth begrenzt die Breite des Textbereichs, 0 = Bildschirmbreite
func (w *Window) SetWidth(cols int) {
	w.mu.Lock()
	w.width = cols
	w.mu.Unlock()
	w.draw()
}

func (w *Window) Init() error {
	if err := w.screen.Init(); err != nil {
		return err
	}
	w.draw()
	return nil
}

// Fini beendet das Fenster; ein laufendes Run kehrt zurueck
func (w *Window) Fini() {
	w.screen.Fini()
}

// Append, Clear und Erase bilden den DisplaySink

func (w *Window) Append(text string) { w.text.Append(text) }
func (w *Window) Clear()             { w.text.Clear() }
func (w *Window) Erase(n int)        { w.text.Erase(n) }

// Text gibt den Inhalt des Textbereichs zurueck
func (w *Window) Text() string {
	return w.text.String()
}

// Run verarbeitet Events bis Fini oder ctx-Ende. Esc, Ctrl+Q, Ctrl+C und
// Ctrl+D schliessen das Fenster (KeyCancel).
func (w *Window) Run(ctx context.Context, p readline.Publisher) error {
	stop := context.AfterFunc(ctx, func() {
		//nolint:errcheck
		w.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := w.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			w.screen.Sync()
			w.draw()
		case *tcell.EventKey:
			if w.chooserOpen() {
				w.chooserKey(ev)
				continue
			}

			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlQ, tcell.KeyCtrlC, tcell.KeyCtrlD:
				p.Publish(readline.KeyCancel)
				continue
			case tcell.KeyF3:
				w.openChooser()
				continue
			}

			r, ok := translate(ev)
			if !ok {
				continue
			}
			if err := readline.Send(ctx, p, r); err != nil {
				return nil
			}
		}
	}
}

// translate bildet ein Tastatur-Event auf ein Zeichen ab
func translate(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r == readline.KeyCancel || r == readline.KeyIgnore {
			return 0, false
		}
		return r, true
	case tcell.KeyEnter:
		return readline.CharEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return readline.CharBackspace, true
	case tcell.KeyTab:
		return readline.CharTab, true
	}
	return 0, false
}
