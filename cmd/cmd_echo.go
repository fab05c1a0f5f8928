// cmd_echo.go - Echo und Show Commands
// Hauptfunktionen: EchoHandler, ShowHandler
package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jconsole/jconsole/console"
)

// EchoHandler - Gibt jede gelesene Zeile wieder aus
func EchoHandler(cmd *cobra.Command, _ []string) error {
	prompt, _ := cmd.Flags().GetString("prompt")

	return runHosted(cmd, func(ctx context.Context, con *console.Console) error {
		return echoLines(ctx, con, prompt)
	})
}

func echoLines(ctx context.Context, con *console.Console, prompt string) error {
	for ctx.Err() == nil {
		line, cancelled := con.ReadLine(prompt)
		if cancelled {
			return nil
		}
		con.Println(line)
	}
	return ctx.Err()
}

// ShowHandler - Fragt Dateinamen ab und gibt die Dateien aus
func ShowHandler(cmd *cobra.Command, _ []string) error {
	return runHosted(cmd, showFiles)
}

func showFiles(ctx context.Context, con *console.Console) error {
	for ctx.Err() == nil {
		name, cancelled := con.ReadFilename("Dateiname: ")
		if cancelled {
			return nil
		}
		if name == "" {
			continue
		}

		data, err := os.ReadFile(name)
		if err != nil {
			slog.Debug("show: reading file", "name", name, "error", err)
			con.Println("Fehler:", err)
			continue
		}

		text := string(data)
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		con.Print(text)
	}
	return ctx.Err()
}
