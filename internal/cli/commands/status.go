package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvyanru/soda-apiserver/internal/cli/ui"
)

// statusCmd checks the API server and its scan runner
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check API server and scan runner health",
	Example: `  # Check the configured server
  $ sodactl status

  # Check a specific server
  $ sodactl status -s http://validator.internal:8000`,
	RunE: runStatus,
}

func init() {
	statusCmd.SilenceUsage = true
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	ping, err := apiClient.Ping(ctx)
	if err != nil {
		ui.PrintError("server unreachable: %v", err)
		return fmt.Errorf("server unreachable")
	}
	ui.PrintSuccess("%s %s is %s", ping.Service, ping.Version, ping.Status)

	ready, err := apiClient.Readiness(ctx)
	if err != nil {
		ui.PrintWarning("scan runner: %v", err)
		return fmt.Errorf("scan runner not ready")
	}
	ui.PrintSuccess("scan runner is %s", ready.ScanRunner)

	return nil
}
