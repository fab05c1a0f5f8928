// cmd_calc.go - Rechner Commands
// Hauptfunktionen: CalcHandler, EvalHandler, printHistory
package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jconsole/jconsole/calc"
	"github.com/jconsole/jconsole/console"
)

// CalcHandler - Startet den Rechner auf dem gewaehlten Host
func CalcHandler(cmd *cobra.Command, _ []string) error {
	once, _ := cmd.Flags().GetBool("once")
	noHistory, _ := cmd.Flags().GetBool("nohistory")
	windowed := isWindowed(cmd)

	var history []calc.Entry
	err := runHosted(cmd, func(ctx context.Context, con *console.Console) error {
		if once {
			calcOnce(con, windowed)
			return nil
		}

		c := calc.New(con, nil)
		defer func() { history = c.History() }()
		return c.Run(ctx)
	})
	if err != nil {
		return err
	}

	// erst nach dem Schliessen des Fensters, sonst ist die Tabelle weg
	if !noHistory {
		printHistory(cmd.OutOrStdout(), history)
	}
	return nil
}

// calcOnce - Einmalige Addition. Mit wait bleibt die Anzeige stehen, bis
// der Host schliesst (Fini loescht sonst das Ergebnis vom Bildschirm).
func calcOnce(con *console.Console, wait bool) {
	if _, ok := calc.Once(con); !ok || !wait {
		return
	}
	for {
		if _, cancelled := con.ReadLine(""); cancelled {
			return
		}
	}
}

// printHistory - Gibt die Rechnungen als Tabelle aus
func printHistory(w io.Writer, history []calc.Entry) {
	if len(history) == 0 {
		return
	}

	data := make([][]string, 0, len(history))
	for i, e := range history {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(e.A, 10),
			e.Op,
			strconv.FormatInt(e.B, 10),
			strconv.FormatInt(e.Result, 10),
		})
	}

	renderTable(w, []string{"#", "A", "OP", "B", "RESULT"}, data)
}

// EvalHandler - Wendet eine Operation auf zwei Ganzzahlen an
func EvalHandler(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", args[0])
	}
	b, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q", args[2])
	}

	result, err := calc.DefaultRegistry().Apply(args[1], a, b)
	if err != nil {
		return err
	}

	e := calc.Entry{Op: args[1], A: a, B: b, Result: result}
	fmt.Fprintln(cmd.OutOrStdout(), e)
	return nil
}
