package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/lvyanru/soda-apiserver/internal/cli/client"
	"github.com/lvyanru/soda-apiserver/internal/cli/config"
	"github.com/lvyanru/soda-apiserver/internal/cli/loader"
	"github.com/lvyanru/soda-apiserver/internal/cli/ui"
)

var (
	validateFile    string
	validateOutput  string
	validateTimeout time.Duration
	validateStrict  bool
)

// validateCmd runs a validation scan from a YAML scan file
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run a validation scan from a scan file",
	Long: `Run a SodaCL validation scan defined in a YAML file. The file names the
Snowflake connection, a target table or custom SQL query, and the rules to
evaluate. The Snowflake password may be omitted from the file and supplied
through the SNOWFLAKE_PASSWORD environment variable instead.`,
	Example: `  # Run a scan
  $ sodactl validate -f scan.yaml

  # Fail the command when any check fails or warns
  $ sodactl validate -f scan.yaml --strict

  # Example scan file:
  #   kind: ValidationScan
  #   spec:
  #     scanName: orders_quality
  #     snowflake:
  #       account: xy12345.eu-west-1
  #       username: VALIDATOR
  #       database: ANALYTICS
  #       warehouse: COMPUTE_WH
  #       schema: PUBLIC
  #     target:
  #       table: ORDERS
  #     rules: |
  #       - row_count > 0
  #       - missing_count(ORDER_ID) = 0`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "YAML file containing the scan definition (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "text", "output format: text or json")
	validateCmd.Flags().DurationVar(&validateTimeout, "timeout", 10*time.Minute, "client-side timeout for the whole scan")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "exit with an error unless the scan status is 'passed'")
	_ = validateCmd.MarkFlagRequired("file")

	validateCmd.SilenceUsage = true
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), validateTimeout)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	scan, err := loader.LoadFromFile(validateFile)
	if err != nil {
		ui.PrintError("failed to load scan file: %v", err)
		return fmt.Errorf("file load failed")
	}

	request, err := scan.ToValidationRequest()
	if err != nil {
		ui.PrintError("invalid scan definition: %v", err)
		return fmt.Errorf("validation failed")
	}

	target := request.TableName
	if target == "" {
		target = "custom query"
	}
	ui.PrintInfo("Running validation scan against %s...", target)

	report, err := apiClient.Validate(ctx, request)
	if err != nil {
		ui.PrintError("scan failed: %v", err)
		return fmt.Errorf("scan failed")
	}

	switch validateOutput {
	case "json":
		raw, err := sonic.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(raw))
	case "text":
		fmt.Println(ui.RenderReport(report))
		fmt.Println(ui.RenderReportSummary(report))
	default:
		return fmt.Errorf("invalid output format '%s', must be 'text' or 'json'", validateOutput)
	}

	if validateStrict && report.Status != "passed" {
		return fmt.Errorf("scan status is '%s'", report.Status)
	}

	return nil
}

// newAPIClient builds a client from the --server flag or the saved config
func newAPIClient() (*client.APIClient, error) {
	server := serverFlag
	if server == "" {
		cfg, err := config.Load()
		if err != nil {
			ui.PrintError("failed to load config: %v", err)
			return nil, fmt.Errorf("config load failed")
		}
		server = cfg.Server
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}
