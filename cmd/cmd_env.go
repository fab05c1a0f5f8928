// cmd_env.go - Env Command
// Hauptfunktionen: EnvHandler
package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/jconsole/jconsole/envconfig"
)

// EnvHandler - Zeigt alle Umgebungsvariablen mit wirksamem Wert
func EnvHandler(cmd *cobra.Command, _ []string) error {
	envs := envconfig.AsMap()
	vals := envconfig.Values()

	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	slices.Sort(names)

	data := make([][]string, 0, len(names))
	for _, name := range names {
		data = append(data, []string{name, vals[name], envs[name].Description})
	}

	renderTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"}, data)
	return nil
}
