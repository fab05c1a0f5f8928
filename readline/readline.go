// Package readline - Hauptmodul fuer die blockierende Zeileneingabe
//
// Dieses Paket verbindet eine asynchrone Key-Source (Terminal, Fenster,
// Skript) ueber eine Cell mit einem blockierenden Zeilenleser.
//
// Hauptkomponenten:
// - Instance: Zeilen-Assembler mit eigener Cell
// - New: Konstruktor mit Optionen (Echo, Logger)
// - ReadLine/ReadLineContext: liest eine Zeile oder meldet Abbruch
// - DeliverPick: Abschluss ueber eine externe Dateiauswahl

package readline

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Instance ist die Hauptstruktur fuer readline-Operationen
type Instance struct {
	cell    *Cell
	sink    DisplaySink
	echo    bool
	log     *slog.Logger
	reading atomic.Bool
	picking atomic.Bool

	pickMu sync.Mutex
	pick   *string
}

// Option konfiguriert eine Instance
type Option func(*Instance)

// WithEcho steuert ob getippte Zeichen auf der Anzeige erscheinen
func WithEcho(echo bool) Option {
	return func(i *Instance) { i.echo = echo }
}

// WithLogger setzt den Logger der Instance
func WithLogger(l *slog.Logger) Option {
	return func(i *Instance) { i.log = l }
}

// New erstellt eine neue Readline-Instanz; Echo ist standardmaessig an
func New(sink DisplaySink, opts ...Option) *Instance {
	i := &Instance{
		cell: NewCell(),
		sink: sink,
		echo: true,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.cell.log = i.log
	return i
}

// Cell gibt die Cell der Instanz zurueck
func (i *Instance) Cell() *Cell {
	return i.cell
}

// Publish reicht ein Zeichen vom Host an die Cell weiter
func (i *Instance) Publish(r rune) {
	i.cell.Publish(r)
}

// Offer wartet bis die Cell frei ist
func (i *Instance) Offer(ctx context.Context, r rune) error {
	return i.cell.Offer(ctx, r)
}

// Close meldet das Schliessen des Fensters an einen wartenden Leser
func (i *Instance) Close() {
	i.cell.Publish(KeyCancel)
}

// Reading meldet ob gerade ein ReadLine laeuft
func (i *Instance) Reading() bool {
	return i.reading.Load()
}

// ReadLine liest eine Zeile. cancelled ist true, wenn der Host KeyCancel
// geliefert hat; line ist dann leer. Ein zweiter gleichzeitiger Aufruf
// ist ein Programmierfehler und loest panic(ErrBusy) aus.
func (i *Instance) ReadLine(prompt string) (line string, cancelled bool) {
	line, cancelled, err := i.ReadLineContext(context.Background(), prompt)
	if err != nil {
		panic(err)
	}
	return line, cancelled
}

// ReadLineContext wie ReadLine, bricht aber mit ctx ab. Bei Abbruch
// durch ctx ist cancelled true und err == ctx.Err().
func (i *Instance) ReadLineContext(ctx context.Context, prompt string) (string, bool, error) {
	if !i.reading.CompareAndSwap(false, true) {
		return "", false, ErrBusy
	}
	defer i.reading.Store(false)

	i.takePick()
	i.sink.Append(prompt)

	buf := NewBuffer()
	for {
		r, err := i.cell.ConsumeContext(ctx)
		if err != nil {
			i.log.Debug("readline: read aborted", "error", err)
			return "", true, err
		}

		done, cancelled := i.processKey(r, buf)
		if cancelled {
			return "", true, nil
		}
		if done {
			return buf.String(), false, nil
		}
	}
}

// SetPicking schaltet den Hotkey fuer die Dateiauswahl an oder aus
func (i *Instance) SetPicking(on bool) {
	i.picking.Store(on)
}

// PickEnabled meldet ob eine Dateiauswahl gerade angenommen wird
func (i *Instance) PickEnabled() bool {
	return i.picking.Load() && i.reading.Load()
}

// DeliverPick schliesst eine externe Auswahl ab. ok=false weckt den Leser
// nur (KeyIgnore), ok=true ersetzt die Zeile durch name und beendet sie.
func (i *Instance) DeliverPick(name string, ok bool) {
	if !i.picking.Load() {
		i.log.Debug("readline: pick without active filename read", "name", name)
		return
	}
	if !ok {
		i.cell.Publish(KeyIgnore)
		return
	}

	i.pickMu.Lock()
	i.pick = &name
	i.pickMu.Unlock()
	i.cell.Publish(CharEnter)
}

// takePick holt eine vorliegende Auswahl und setzt sie zurueck
func (i *Instance) takePick() (string, bool) {
	i.pickMu.Lock()
	defer i.pickMu.Unlock()
	if i.pick == nil {
		return "", false
	}
	name := *i.pick
	i.pick = nil
	return name, true
}
