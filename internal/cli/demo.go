// internal/cli/demo.go

package cli

import (
	"github.com/spf13/cobra"

	"workshop/internal/scenario"
)

// NewDemoCommand 建立 demo 指令：重播內建 workshop 情境，輸出與原始示範腳本逐字相同。
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in account and vehicle demo",
		Long: `Run the built-in workshop scenario: an account for Celian with 1000 euros
receives a deposit and a withdrawal, a spaceship and a car speed up, and the car drifts.
Console output goes to stdout; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			runner := scenario.NewRunner(GetLogger(ctx))
			_, err := runner.Run(ctx, scenario.Default(), cmd.OutOrStdout())
			return err
		},
	}
}
