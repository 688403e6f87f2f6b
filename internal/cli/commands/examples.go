package commands

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvyanru/soda-apiserver/internal/cli/ui"
)

// examplesCmd prints example SodaCL rule snippets from the server
var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show example SodaCL validation rules",
	Example: `  # List rule examples for common data quality checks
  $ sodactl examples`,
	RunE: runExamples,
}

func init() {
	examplesCmd.SilenceUsage = true
}

func runExamples(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newAPIClient()
	if err != nil {
		return err
	}

	examples, err := apiClient.RuleExamples(ctx)
	if err != nil {
		ui.PrintError("failed to fetch examples: %v", err)
		return fmt.Errorf("request failed")
	}

	// Stable ordering for scripting
	categories := make([]string, 0, len(examples))
	for category := range examples {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for i, category := range categories {
		if i > 0 {
			fmt.Println()
		}
		ui.PrintBold(category)
		fmt.Println(examples[category])
	}

	return nil
}
