package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"trackgen/internal/deps"
)

var doctorColumns = []tableColumn{
	{header: "Dependency"},
	{header: "Command"},
	{header: "Required"},
	{header: "Status"},
}

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the decoder backend and external tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			statuses := deps.CheckBinaries(deps.Requirements(cfg))

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
				}
				rows = append(rows, []string{status.Name, status.Command, yesNo(!status.Optional), state})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Decoder backend: %s\n", cfg.Decoder.Backend)
			fmt.Fprintln(out, renderTable(doctorColumns, rows, nil))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				names := make([]string, 0, len(missing))
				for _, status := range missing {
					names = append(names, status.Name)
				}
				return fmt.Errorf("missing required dependencies: %s", strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
