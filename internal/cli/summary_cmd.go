package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/cli/formatter"
)

func newSummaryCmd(app *App) *cobra.Command {
	var windowFlag, companyFlag string
	var otherFlag, interactiveFlag bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show bucketed hour totals and statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := aggregate.ParseWindow(windowFlag)
			if err != nil {
				return err
			}
			filter, err := companyFilterFromFlags(companyFlag, otherFlag)
			if err != nil {
				return err
			}

			if interactiveFlag {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				model := newSummaryModel(app, window, filter)
				_, err := tea.NewProgram(model).Run()
				return err
			}

			res := aggregate.Aggregate(app.Store.List(), window, filter, app.Calendar)
			fmt.Print(renderSummary(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&windowFlag, "window", "w", "weekly", "Aggregation window: weekly, biweekly, or monthly")
	cmd.Flags().StringVar(&companyFlag, "company", "", "Only count sessions for this company")
	cmd.Flags().BoolVar(&otherFlag, "other", false, "Only count sessions with no company")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Open the interactive summary view")
	cmd.MarkFlagsMutuallyExclusive("company", "other")

	return cmd
}

func companyFilterFromFlags(company string, other bool) (aggregate.CompanyFilter, error) {
	switch {
	case other:
		return aggregate.WithoutCompany(), nil
	case company != "":
		return aggregate.ByCompany(company), nil
	default:
		return aggregate.AnyCompany(), nil
	}
}

func renderSummary(res aggregate.Result) string {
	title := fmt.Sprintf("%s · %s", res.Window, res.Filter)
	body := formatter.RenderChart(res.Labels, res.Buckets, res.YAxisMax) +
		"\n" +
		formatter.RenderStats(res.Stats.Total, res.Stats.WorkDays, res.Stats.Average, res.Stats.Longest)
	return formatter.RenderBox(title, body)
}
