package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sessions in a date range with their hour total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateArg(fromFlag)
			if err != nil {
				return err
			}
			to := from
			if toFlag != "" {
				if to, err = parseDateArg(toFlag); err != nil {
					return err
				}
			}
			if to.Before(from) {
				return fmt.Errorf("end date %s before start date %s", toFlag, fromFlag)
			}

			records := aggregate.FilterRange(app.Store.List(), from, to)
			if len(records) == 0 {
				fmt.Println("No sessions in range.")
				return nil
			}
			aggregate.SortByStartDesc(records)

			total := aggregate.RangeTotal(app.Store.List(), from, to)
			fmt.Print(renderRecordTable(records))
			fmt.Printf("\n%s %s over %d session(s)\n",
				formatter.Dim("total"),
				formatter.Bold(formatter.FormatHours(total)),
				len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Range end date, inclusive (defaults to --from)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
