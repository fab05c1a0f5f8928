// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs, versionHandler
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jconsole/jconsole/envconfig"
)

// Version wird beim Build per -ldflags gesetzt
var Version = "0.0.0"

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// versionHandler - Gibt die Version aus
func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "jconsole version is %s\n", Version)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "jconsole",
		Short:         "Line console with calculator programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	calcCmd := newCalcCmd()
	echoCmd := newEchoCmd()
	showCmd := newShowCmd()
	evalCmd := newEvalCmd()
	envCmd := newEnvCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	hostEnvs := []envconfig.EnvVar{
		envVars["JCONSOLE_DEBUG"],
		envVars["JCONSOLE_LOGFILE"],
		envVars["JCONSOLE_WINDOW"],
		envVars["JCONSOLE_TITLE"],
		envVars["JCONSOLE_WIDTH"],
		envVars["JCONSOLE_NOECHO"],
		envVars["JCONSOLE_READ_TIMEOUT"],
	}

	for _, cmd := range []*cobra.Command{calcCmd, echoCmd, showCmd, evalCmd} {
		switch cmd {
		case showCmd:
			appendEnvDocs(cmd, append(hostEnvs, envVars["JCONSOLE_DATA"], envVars["JCONSOLE_LANG"]))
		case evalCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["JCONSOLE_DEBUG"]})
		default:
			appendEnvDocs(cmd, hostEnvs)
		}
	}

	rootCmd.AddCommand(
		calcCmd,
		echoCmd,
		showCmd,
		evalCmd,
		envCmd,
	)

	return rootCmd
}
