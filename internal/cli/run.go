// internal/cli/run.go

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"workshop/internal/scenario"
)

// NewRunCommand 建立 run 指令：執行情境檔（參數優先，其次為 scenario 設定，皆空則用內建情境）。
// 指定 --summary 時在主控台輸出後附上最終狀態表。
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario-file]",
		Short: "Run a scenario file",
		Long: `Run a scenario described in YAML (.yaml, .yml) or JSON (.json).

Without an argument the "scenario" config key is used; when that is empty too,
the built-in workshop scenario runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := GetLogger(ctx)

			path := cfg.Scenario
			if len(args) == 1 {
				path = args[0]
			}

			sc := scenario.Default()
			if path != "" {
				var err error
				if sc, err = scenario.Load(path); err != nil {
					return err
				}
				logger.Debug("loaded scenario", "path", path, "name", sc.Name)
			}

			res, err := scenario.NewRunner(logger).Run(ctx, sc, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("run %s: %w", sc.Name, err)
			}
			if cfg.Summary {
				renderSummary(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}
	cmd.Flags().Bool("summary", false, "Print a table of final account and vehicle states")
	return cmd
}

// renderSummary 以 go-pretty 表格輸出帳戶與載具的最終狀態。
func renderSummary(w io.Writer, res *scenario.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Kind", "Name", "Balance", "Speed", "Max Speed"})
	for _, a := range res.Accounts {
		t.AppendRow(table.Row{a.ID, "account", a.Name, strconv.FormatInt(a.Balance, 10), "", ""})
	}
	for _, v := range res.Vehicles {
		t.AppendRow(table.Row{v.ID, v.Kind, "", "", strconv.Itoa(v.Speed), strconv.Itoa(v.MaxSpeed)})
	}
	t.Render()
}
