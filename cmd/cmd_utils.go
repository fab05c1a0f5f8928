// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: setupLogging, renderTable
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"

	"github.com/jconsole/jconsole/envconfig"
)

// setupLogging - Installiert den slog-Handler. Im Fenster-Modus wird ohne
// JCONSOLE_LOGFILE nichts geloggt, da stderr den Bildschirm ueberschreibt.
func setupLogging(windowed bool) (func(), error) {
	var writer io.Writer = os.Stderr
	cleanup := func() {}

	switch path := envconfig.LogFile(); {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = f
		cleanup = func() { f.Close() }
	case windowed:
		writer = io.Discard
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     envconfig.LogLevel(),
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	})

	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// renderTable - Gibt eine Tabelle ohne Rahmen aus
func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
