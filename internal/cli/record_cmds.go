package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/cli/formatter"
	"github.com/mkallio/stint/internal/domain"
)

const timeLayout = "2006-01-02 15:04"

func newListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := app.Store.List()
			if len(records) == 0 {
				fmt.Println("No sessions recorded.")
				return nil
			}
			aggregate.SortByStartDesc(records)
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			fmt.Print(renderRecordTable(records))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show (0 for all)")
	return cmd
}

func renderRecordTable(records []domain.WorkRecord) string {
	headers := []string{"ID", "DATE", "TIME", "HOURS", "COMPANY", "LOCATION", "NOTE"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		company := r.CompanyName
		if company == "" {
			company = formatter.Dim("—")
		}
		rows = append(rows, []string{
			formatter.TruncID(r.ID),
			formatter.HumanDate(r.StartTime),
			formatter.TimeRange(r.StartTime, r.EndTime),
			formatter.HoursStyle(r.TotalHours).Render(formatter.FormatHours(r.TotalHours)),
			company,
			formatter.Truncate(r.LocationLabel, 24),
			formatter.Dim(formatter.Truncate(r.Note, 32)),
		})
	}
	return formatter.RenderTable(headers, rows)
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete one or more recorded sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := resolveRecordIDs(app, args)
			if err != nil {
				return err
			}
			if err := app.Store.DeleteMany(context.Background(), ids); err != nil {
				return err
			}
			fmt.Printf("Deleted %d session(s).\n", len(ids))
			return nil
		},
	}
}

// resolveRecordIDs expands short id prefixes to full record ids. Ambiguous
// prefixes are an error; unknown ones pass through (delete ignores them).
func resolveRecordIDs(app *App, args []string) ([]string, error) {
	records := app.Store.List()
	out := make([]string, 0, len(args))
	for _, arg := range args {
		full := arg
		matches := 0
		for _, r := range records {
			if len(arg) < len(r.ID) && r.ID[:len(arg)] == arg {
				full = r.ID
				matches++
			}
		}
		if matches > 1 {
			return nil, fmt.Errorf("id prefix %q is ambiguous", arg)
		}
		out = append(out, full)
	}
	return out, nil
}

func parseTimeArg(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(timeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want %q)", s, timeLayout)
	}
	return t, nil
}

func parseDateArg(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
