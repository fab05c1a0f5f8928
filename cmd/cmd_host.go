// cmd_host.go - Auswahl und Betrieb des Hosts
// Hauptfunktionen: newHost, runHosted, consoleOptions
//
// Ein Host liefert Zeichen (readline.KeySource) und zeigt Text an
// (readline.DisplaySink). Erzeuger (Host) und Verbraucher (Programm auf der
// Console) laufen in einer errgroup; endet einer, wird der andere beendet.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/jconsole/jconsole/console"
	"github.com/jconsole/jconsole/envconfig"
	"github.com/jconsole/jconsole/readline"
	"github.com/jconsole/jconsole/window"
)

type host struct {
	name   string
	sink   readline.DisplaySink
	source readline.KeySource
	// attach verbindet die Dateiauswahl des Hosts mit der Console
	attach func(con *console.Console)
	close  func()
}

// isWindowed - Fenster per Flag oder JCONSOLE_WINDOW, ein Skript hat Vorrang
func isWindowed(cmd *cobra.Command) bool {
	if script, _ := cmd.Flags().GetString("script"); script != "" {
		return false
	}
	windowed, _ := cmd.Flags().GetBool("window")
	return windowed || envconfig.Window()
}

// newHost - Waehlt Fenster, Skript oder Terminal anhand der Flags
func newHost(cmd *cobra.Command) (*host, error) {
	script, _ := cmd.Flags().GetString("script")

	switch {
	case script != "":
		data, err := os.ReadFile(script)
		if err != nil {
			return nil, fmt.Errorf("couldn't read script: %w", err)
		}
		t := readline.NewTerminalReader(bytes.NewReader(data), cmd.OutOrStdout())
		return &host{name: "script", sink: t, source: t, attach: func(*console.Console) {}, close: func() {}}, nil

	case isWindowed(cmd):
		w, err := window.New(envconfig.Title())
		if err != nil {
			return nil, err
		}
		if err := w.Init(); err != nil {
			return nil, fmt.Errorf("couldn't initialize window: %w", err)
		}
		w.SetWidth(int(envconfig.Width()))
		return &host{
			name:   "window",
			sink:   w,
			source: w,
			attach: func(con *console.Console) {
				w.Picker = con.Readline()
				w.Candidates = con.TextFiles
			},
			close: w.Fini,
		}, nil

	default:
		t, err := readline.NewTerminal(os.Stdin, cmd.OutOrStdout())
		if err != nil {
			return nil, err
		}
		return &host{
			name:   "terminal",
			sink:   t,
			source: t,
			attach: func(con *console.Console) {
				t.Picker = con.Readline()
				t.Candidates = con.TextFiles
			},
			close: func() {},
		}, nil
	}
}

// consoleOptions - Console-Optionen aus der Umgebung
func consoleOptions() console.Options {
	lang, err := language.Parse(envconfig.Lang())
	if err != nil {
		slog.Warn("invalid language, using default", "lang", envconfig.Lang(), "error", err)
		lang = language.Und
	}

	return console.Options{
		Lang:        lang,
		DataPath:    envconfig.DataPath(),
		ReadTimeout: envconfig.ReadTimeout(),
		NoEcho:      envconfig.NoEcho(),
	}
}

// runHosted - Startet Host und Programm; run laeuft auf der Console und
// endet mit dem Schliessen der Console oder dem Ende von ctx
func runHosted(cmd *cobra.Command, run func(ctx context.Context, con *console.Console) error) error {
	cleanup, err := setupLogging(isWindowed(cmd))
	if err != nil {
		return err
	}
	defer cleanup()

	h, err := newHost(cmd)
	if err != nil {
		return err
	}
	defer h.close()

	con := console.New(h.sink, consoleOptions())
	h.attach(con)
	slog.Debug("console started", "host", h.name, "console", con.ID())

	return serve(cmd.Context(), h.source, con, run)
}

// serve - Erzeuger und Verbraucher in einer errgroup
func serve(ctx context.Context, source readline.KeySource, con *console.Console, run func(ctx context.Context, con *console.Console) error) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// ReadLine kennt kein ctx; bei Abbruch (z.B. Signal) wird der Leser geweckt
	stop := context.AfterFunc(ctx, con.Exit)
	defer stop()

	g.Go(func() error {
		err := source.Run(ctx, con.Readline())
		// Host beendet: ein wartender Leser wird geweckt, ein noch
		// ungelesenes Zeichen bleibt erhalten
		//nolint:errcheck
		con.Offer(ctx, readline.KeyCancel)
		return err
	})

	g.Go(func() error {
		defer cancel()
		return run(ctx, con)
	})

	return g.Wait()
}
