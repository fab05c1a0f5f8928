// Package readline - Terminal-Modul
//
// Dieses Modul enthaelt den Terminal-Host: er liest Runes von stdin (im
// Raw-Mode, falls stdin ein Terminal ist) und reicht sie an einen
// Publisher weiter. Gleichzeitig dient er als DisplaySink.
//
// Hauptkomponenten:
// - Terminal: Struktur fuer Terminal-I/O mit Buffered Reader
// - NewTerminal/NewTerminalReader: Konstruktoren
// - Run: Erzeuger-Schleife (KeySource)
// - Append/Clear/Erase: Anzeige (DisplaySink, Eraser)

package readline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/containerd/console"
	"golang.org/x/term"
)

// Terminal verwaltet die Terminal-Ein-/Ausgabe
type Terminal struct {
	reader  *bufio.Reader
	out     io.Writer
	con     console.Console
	rawmode bool
	outMu   sync.Mutex

	// Picker und Candidates aktivieren den F3-Hotkey
	Picker     Picker
	Candidates func() ([]string, error)
}

type readRune struct {
	r   rune
	err error
}

// NewTerminal erstellt einen Terminal-Host fuer in/out. Ist in ein Terminal,
// wird beim Run in den Raw-Mode geschaltet.
func NewTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	t := &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}

	if term.IsTerminal(int(in.Fd())) {
		con, err := console.ConsoleFromFile(in)
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		t.con = con
		t.rawmode = true
	}

	return t, nil
}

// NewTerminalReader erstellt einen Terminal-Host ohne Raw-Mode
func NewTerminalReader(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Raw meldet ob der Host im Raw-Mode arbeitet (und damit selbst echoen muss)
func (t *Terminal) Raw() bool {
	return t.rawmode
}

// Width gibt die Terminalbreite zurueck (Default 80)
func (t *Terminal) Width() int {
	if t.con != nil {
		if ws, err := t.con.Size(); err == nil && ws.Width > 0 {
			return int(ws.Width)
		}
	}
	return 80
}

// Run liest bis EOF oder ctx-Ende und reicht Zeichen an p weiter.
// EOF und Ctrl+C/Ctrl+D werden als KeyCancel gemeldet.
func (t *Terminal) Run(ctx context.Context, p Publisher) error {
	if t.con != nil {
		if err := t.con.SetRaw(); err != nil {
			return fmt.Errorf("terminal: raw mode: %w", err)
		}
		defer func() {
			//nolint:errcheck
			t.con.Reset()
		}()
	}

	// ReadRune blockiert und ist nicht abbrechbar; die Goroutine endet
	// mit dem naechsten Zeichen oder EOF
	runes := make(chan readRune)
	go func() {
		for {
			r, _, err := t.reader.ReadRune()
			select {
			case runes <- readRune{r, err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	next := func() (rune, error) {
		select {
		case rr := <-runes:
			return rr.r, rr.err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	var (
		lastCR    bool
		pushed    rune
		hasPushed bool
	)
	for {
		var (
			r   rune
			err error
		)
		if hasPushed {
			r, hasPushed = pushed, false
		} else {
			r, err = next()
		}
		switch {
		case errors.Is(err, io.EOF):
			// EOF folgt auf die letzte Zeile und darf sie nicht ersetzen
			//nolint:errcheck
			Send(ctx, p, KeyCancel)
			return nil
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		// \r\n nur einmal als Zeilenende melden
		if r == CharEnter && lastCR {
			lastCR = false
			continue
		}
		lastCR = r == CharReturn

		switch r {
		case CharReturn:
			r = CharEnter
		case CharDelete:
			r = CharBackspace
		case CharInterrupt, CharEOT:
			p.Publish(KeyCancel)
			continue
		case CharEsc:
			// Esc ohne Sequenz (Alt+Taste): das folgende Zeichen zaehlt normal
			fwd, ok, err := t.processEscape(next)
			if errors.Is(err, io.EOF) {
				//nolint:errcheck
				Send(ctx, p, KeyCancel)
				return nil
			}
			if err != nil {
				return nil
			}
			if ok {
				pushed, hasPushed = fwd, true
			}
			continue
		case KeyCancel, KeyIgnore:
			// reservierte Werte kommen nie vom Terminal
			continue
		}

		if err := Send(ctx, p, r); err != nil {
			return nil
		}
	}
}

// processEscape verarbeitet Escape-Sequenzen. Erkannt wird nur F3
// (ESC O R, ESC [ 1 3 ~, ESC [ [ C), andere Sequenzen werden verworfen.
// Folgt auf ESC kein O oder [, wird dieses Zeichen zurueckgegeben (ok).
func (t *Terminal) processEscape(next func() (rune, error)) (rune, bool, error) {
	r, err := next()
	if err != nil {
		return 0, false, err
	}

	var seq strings.Builder
	switch r {
	case 'O':
		r, err := next()
		if err != nil {
			return 0, false, err
		}
		seq.WriteRune(r)
	case '[':
		for {
			r, err := next()
			if err != nil {
				return 0, false, err
			}
			seq.WriteRune(r)
			if (r >= 0x40 && r <= 0x7e && r != '[') || seq.Len() > 8 {
				break
			}
		}
	default:
		return r, true, nil
	}

	switch seq.String() {
	case "R", "13~", "[C":
		return 0, false, t.hotkey(next)
	}
	return 0, false, nil
}

// hotkey oeffnet die Dateiauswahl, wenn ein Dateiname gelesen wird
func (t *Terminal) hotkey(next func() (rune, error)) error {
	if t.Picker == nil || !t.Picker.PickEnabled() {
		return nil
	}

	var names []string
	if t.Candidates != nil {
		var err error
		names, err = t.Candidates()
		if err != nil {
			slog.Warn("terminal: listing pick candidates", "error", err)
		}
	}

	name, ok, err := t.choose(names, next)
	if err != nil {
		return err
	}
	t.Picker.DeliverPick(name, ok)
	return nil
}

// choose zeigt eine nummerierte Liste und liest die Auswahl direkt vom
// Terminal, ohne die Cell zu benutzen. Esc oder leere Eingabe bricht ab.
func (t *Terminal) choose(names []string, next func() (rune, error)) (string, bool, error) {
	if len(names) == 0 {
		t.Append("\n(keine Dateien)\n")
		return "", false, nil
	}

	t.Append("\n")
	for n, name := range names {
		t.Append(fmt.Sprintf("%3d) %s\n", n+1, name))
	}
	t.Append("Auswahl: ")

	var digits []rune
	for {
		r, err := next()
		if err != nil {
			return "", false, err
		}
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, r)
			t.Append(string(r))
		case r == CharDelete || r == CharBackspace:
			if len(digits) > 0 {
				digits = digits[:len(digits)-1]
				t.Erase(1)
			}
		case r == CharEsc || r == CharInterrupt:
			t.Append("\n")
			return "", false, nil
		case r == CharReturn || r == CharEnter:
			t.Append("\n")
			var idx int
			if _, err := fmt.Sscanf(string(digits), "%d", &idx); err != nil || idx < 1 || idx > len(names) {
				return "", false, nil
			}
			return names[idx-1], true, nil
		}
	}
}

// Append gibt Text aus; im Raw-Mode wird \n zu \r\n
func (t *Terminal) Append(text string) {
	if t.rawmode {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	t.write(text)
}

// Clear loescht den Bildschirm
func (t *Terminal) Clear() {
	t.write(ClearScreen + CursorReset)
}

// Erase entfernt n Spalten links vom Cursor
func (t *Terminal) Erase(n int) {
	if n <= 0 {
		return
	}
	t.write(strings.Repeat(CursorBack, n))
}

func (t *Terminal) write(s string) {
	t.outMu.Lock()
	defer t.outMu.Unlock()
	//nolint:errcheck
	io.WriteString(t.out, s)
}
