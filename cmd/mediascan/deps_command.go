package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediascan/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.Check(cfg.FFmpeg.Binary)

			if ctx.jsonOutput() {
				return writeJSON(cmd, statuses)
			}

			rows := make([][]string, 0, len(statuses))
			missing := false
			for _, status := range statuses {
				available := "yes"
				if !status.Available {
					available = "no"
					missing = true
				}
				rows = append(rows, []string{status.Name, status.Command, available, status.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Dependency", "Command", "Available", "Detail"},
				rows,
				nil,
			))

			if missing {
				return fmt.Errorf("missing required dependencies")
			}
			return nil
		},
	}
}
