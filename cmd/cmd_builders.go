// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newCalcCmd, newEchoCmd, newShowCmd, newEvalCmd, newEnvCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// addHostFlags - Flags fuer die Auswahl des Hosts
func addHostFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("window", false, "Use the full screen window instead of the plain terminal")
	cmd.Flags().String("script", "", "Read keystrokes from this file instead of the keyboard")
	cmd.MarkFlagsMutuallyExclusive("window", "script")
}

// newCalcCmd - Erstellt den calc Command
func newCalcCmd() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Add and subtract integers until the console is closed",
		Args:  cobra.NoArgs,
		RunE:  CalcHandler,
	}

	addHostFlags(calcCmd)
	calcCmd.Flags().Bool("once", false, "Add two numbers once and exit")
	calcCmd.Flags().Bool("nohistory", false, "Don't print the history table on exit")

	return calcCmd
}

// newEchoCmd - Erstellt den echo Command
func newEchoCmd() *cobra.Command {
	echoCmd := &cobra.Command{
		Use:   "echo",
		Short: "Read lines and print them back until the console is closed",
		Args:  cobra.NoArgs,
		RunE:  EchoHandler,
	}

	addHostFlags(echoCmd)
	echoCmd.Flags().String("prompt", "> ", "Prompt shown before each line")

	return echoCmd
}

// newShowCmd - Erstellt den show Command
func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Ask for text files (F3 opens a chooser) and print them",
		Args:  cobra.NoArgs,
		RunE:  ShowHandler,
	}

	addHostFlags(showCmd)

	return showCmd
}

// newEvalCmd - Erstellt den eval Command
func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval A OP B",
		Short:   "Apply a calculator operation to two integers",
		Example: "  jconsole eval 3 + 4\n  jconsole eval -2 - 5",
		Args:    cobra.ExactArgs(3),
		// negative Zahlen sind keine Flags
		DisableFlagParsing: true,
		RunE:               EvalHandler,
	}
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}
