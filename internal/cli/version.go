// internal/cli/version.go

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand 建立 version 指令：輸出版本字串。
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the workshop version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "workshop v%s\n", version)
		},
	}
}
