// Package console - Konsole mit formatierter Ausgabe und typisierter Eingabe
//
// Eine Console verbindet eine Anzeige (readline.DisplaySink) mit einem
// Zeilenleser (readline.Instance). Der Host (Terminal, Fenster, Skript)
// liefert Zeichen ueber Publish/Offer.
//
// Hauptkomponenten:
// - Console: Hauptstruktur
// - New: Konstruktor mit Options
// - print.go: Ausgabe-Methoden
// - read.go: Eingabe-Methoden mit Wiederholung bei Fehleingaben
package console

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jconsole/jconsole/readline"
)

// Options konfiguriert eine Console
type Options struct {
	// Lang bestimmt Dezimal- und Tausendertrenner (Default: Englisch)
	Lang language.Tag
	// DataPath wird Dateinamen ohne Verzeichnis vorangestellt
	DataPath string
	// ReadTimeout begrenzt eine einzelne Eingabe, 0 = unbegrenzt
	ReadTimeout time.Duration
	// NoEcho unterdrueckt das Echo (Host echot selbst)
	NoEcho bool
	Logger *slog.Logger
}

// Console ist die Konsole mit Ausgabe- und Eingabe-Methoden
type Console struct {
	id      uuid.UUID
	sink    readline.DisplaySink
	rl      *readline.Instance
	printer *message.Printer
	opts    Options
	log     *slog.Logger
}

// New erstellt eine Console auf der Anzeige sink
func New(sink readline.DisplaySink, opts Options) *Console {
	if opts.Lang == language.Und {
		opts.Lang = language.English
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New()
	logger = logger.With("console", id.String())

	return &Console{
		id:      id,
		sink:    sink,
		rl:      readline.New(sink, readline.WithEcho(!opts.NoEcho), readline.WithLogger(logger)),
		printer: message.NewPrinter(opts.Lang),
		opts:    opts,
		log:     logger,
	}
}

// ID identifiziert die Console im Log
func (c *Console) ID() uuid.UUID {
	return c.id
}

// Readline gibt den Zeilenleser zurueck (z.B. als Picker fuer den Host)
func (c *Console) Readline() *readline.Instance {
	return c.rl
}

// Publish reicht ein Zeichen vom Host weiter
func (c *Console) Publish(r rune) {
	c.rl.Publish(r)
}

// Offer reicht ein Zeichen weiter, sobald das vorige gelesen wurde
func (c *Console) Offer(ctx context.Context, r rune) error {
	return c.rl.Offer(ctx, r)
}

// Exit meldet einem wartenden Leser das Schliessen der Konsole
func (c *Console) Exit() {
	c.log.Debug("console: exit requested")
	c.rl.Close()
}

// readLine liest eine Zeile unter Beachtung des ReadTimeout.
// Ein Timeout wird wie ein Abbruch behandelt.
func (c *Console) readLine(prompt string) (string, bool) {
	if c.opts.ReadTimeout <= 0 {
		return c.rl.ReadLine(prompt)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.ReadTimeout)
	defer cancel()

	line, cancelled, err := c.rl.ReadLineContext(ctx, prompt)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		c.log.Warn("console: input timed out", "timeout", c.opts.ReadTimeout)
		c.sink.Append("\n")
	case err != nil:
		panic(err)
	}
	return line, cancelled
}
