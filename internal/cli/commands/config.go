package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvyanru/soda-apiserver/internal/cli/config"
	"github.com/lvyanru/soda-apiserver/internal/cli/ui"
)

// configCmd manages the saved CLI configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
}

// configSetServerCmd persists the API server address
var configSetServerCmd = &cobra.Command{
	Use:     "set-server <address>",
	Short:   "Save the API server address",
	Args:    cobra.ExactArgs(1),
	Example: `  $ sodactl config set-server http://localhost:8000`,
	RunE:    runConfigSetServer,
}

// configViewCmd prints the saved configuration
var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the saved configuration",
	RunE:  runConfigView,
}

func init() {
	configCmd.AddCommand(configSetServerCmd)
	configCmd.AddCommand(configViewCmd)
	configCmd.SilenceUsage = true
}

func runConfigSetServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	cfg.Server = args[0]
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("server set to %s", cfg.Server)
	return nil
}

func runConfigView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	path, _ := config.GetConfigPath()
	ui.PrintInfo("config file: %s", path)
	fmt.Printf("server: %s\n", cfg.Server)
	return nil
}
