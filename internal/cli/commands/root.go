package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvyanru/soda-apiserver/internal/cli/ui"
)

const version = "1.0.0"

// serverFlag overrides the configured API server address
var serverFlag string

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "sodactl",
	Short:   "Snowflake data quality validation CLI",
	Version: version,
	Long: `A command-line tool for running SodaCL data quality validations against
Snowflake tables and custom SQL queries through the soda-apiserver. Scans are
defined in YAML files and results are rendered as a per-check report.`,
	Example: `  # Point the CLI at an API server
  $ sodactl config set-server http://localhost:8000

  # Run a validation scan from a file
  $ sodactl validate -f scan.yaml

  # Show example SodaCL rules
  $ sodactl examples

  # Check server and scan runner health
  $ sodactl status`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "API server address (overrides saved config)")

	// Add subcommands
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("sodactl version %s\n", version)
}
