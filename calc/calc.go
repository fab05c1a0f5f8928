// Package calc - Ein Taschenrechner auf der Console
//
// Hauptkomponenten:
// - Calculator: fragt Operation und zwei Ganzzahlen ab und gibt das
//   Ergebnis aus, bis die Konsole geschlossen wird
// - Once: einmalige Addition ohne Operationsauswahl
package calc

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	promptFirst  = "Erste Ganzzahl: "
	promptSecond = "Zweite Ganzzahl: "
)

// Console ist die vom Rechner benoetigte Teilmenge von console.Console
type Console interface {
	ReadString(prompt string) (string, bool)
	ReadLong(prompt string) (int64, bool)
	Println(a ...any)
}

// Entry ist eine ausgefuehrte Rechnung
type Entry struct {
	Op     string
	A, B   int64
	Result int64
}

func (e Entry) String() string {
	return fmt.Sprintf("%d %s %d = %d", e.A, e.Op, e.B, e.Result)
}

type Calculator struct {
	con     Console
	reg     *Registry
	history []Entry
}

// New erstellt einen Rechner; reg == nil nutzt DefaultRegistry
func New(con Console, reg *Registry) *Calculator {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Calculator{con: con, reg: reg}
}

func (c *Calculator) opPrompt() string {
	return fmt.Sprintf("Welche Operation soll durchgeführt werden (%s)?: ", strings.Join(c.reg.Symbols(), ","))
}

// Step fuehrt eine Rechnung aus. ok ist false, wenn die Konsole
// geschlossen wurde.
func (c *Calculator) Step() (Entry, bool) {
	var (
		op string
		fn Operation
	)
	for fn == nil {
		s, cancelled := c.con.ReadString(c.opPrompt())
		if cancelled {
			return Entry{}, false
		}
		op = s
		fn, _ = c.reg.Lookup(s)
	}

	a, cancelled := c.con.ReadLong(promptFirst)
	if cancelled {
		return Entry{}, false
	}
	b, cancelled := c.con.ReadLong(promptSecond)
	if cancelled {
		return Entry{}, false
	}

	result := fn(a, b)
	c.con.Println("Ergebnis:", result)

	e := Entry{Op: op, A: a, B: b, Result: result}
	c.history = append(c.history, e)
	slog.Debug("calc: step", "entry", e.String())
	return e, true
}

// Run rechnet bis die Konsole geschlossen wird oder ctx endet
func (c *Calculator) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := c.Step(); !ok {
			return nil
		}
	}
}

// History gibt alle bisherigen Rechnungen zurueck
func (c *Calculator) History() []Entry {
	return c.history
}

// Once liest zwei Ganzzahlen und gibt ihre Summe aus
func Once(con Console) (int64, bool) {
	a, cancelled := con.ReadLong(promptFirst)
	if cancelled {
		return 0, false
	}
	b, cancelled := con.ReadLong(promptSecond)
	if cancelled {
		return 0, false
	}
	sum := Add(a, b)
	con.Println("Ergebnis:", sum)
	return sum, true
}
