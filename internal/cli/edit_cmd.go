package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/cli/formatter"
	"github.com/mkallio/stint/internal/domain"
	"github.com/mkallio/stint/internal/store"
)

func newEditCmd(app *App) *cobra.Command {
	var startFlag, endFlag, locationFlag, noteFlag, companyFlag string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a recorded session",
		Long: "Edit a recorded session. With no flags an interactive form opens;\n" +
			"flags set fields directly. Total hours are recomputed from the new times.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ids, err := resolveRecordIDs(app, args)
			if err != nil {
				return err
			}
			current, ok := findRecord(app, ids[0])
			if !ok {
				return fmt.Errorf("record %s: %w", args[0], store.ErrNotFound)
			}

			start := current.StartTime.Format(timeLayout)
			end := current.EndTime.Format(timeLayout)
			location := current.LocationLabel
			note := current.Note
			company := current.CompanyName

			useForm := !cmd.Flags().Changed("start") && !cmd.Flags().Changed("end") &&
				!cmd.Flags().Changed("location") && !cmd.Flags().Changed("note") &&
				!cmd.Flags().Changed("company")

			if useForm {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("no edit flags given and not running interactively")
				}
				form := editForm(&start, &end, &location, &note, &company, app.Store.Companies())
				if err := form.Run(); err != nil {
					return err
				}
			} else {
				if cmd.Flags().Changed("start") {
					start = startFlag
				}
				if cmd.Flags().Changed("end") {
					end = endFlag
				}
				if cmd.Flags().Changed("location") {
					location = locationFlag
				}
				if cmd.Flags().Changed("note") {
					note = noteFlag
				}
				if cmd.Flags().Changed("company") {
					company = companyFlag
				}
			}

			newStart, err := parseTimeArg(start)
			if err != nil {
				return err
			}
			newEnd, err := parseTimeArg(end)
			if err != nil {
				return err
			}

			updated, err := app.Store.Update(ctx, current.ID, newStart, newEnd,
				location, domain.TruncateNote(note), company)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s: %s on %s.\n",
				formatter.TruncID(updated.ID),
				formatter.Bold(formatter.FormatHours(updated.TotalHours)),
				formatter.HumanDate(updated.StartTime))
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "New start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "New end time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&locationFlag, "location", "", "New location label")
	cmd.Flags().StringVar(&noteFlag, "note", "", "New note")
	cmd.Flags().StringVar(&companyFlag, "company", "", "New company name")

	return cmd
}

func findRecord(app *App, id string) (domain.WorkRecord, bool) {
	for _, r := range app.Store.List() {
		if r.ID == id {
			return r, true
		}
	}
	return domain.WorkRecord{}, false
}

// editForm builds the interactive edit wizard, one group per page.
func editForm(start, end, location, note, company *string, companies []string) *huh.Form {
	companyOpts := make([]huh.Option[string], 0, len(companies)+1)
	companyOpts = append(companyOpts, huh.NewOption("(no company)", ""))
	for _, c := range companies {
		companyOpts = append(companyOpts, huh.NewOption(c, c))
	}

	return huh.NewForm(
		huh.NewGroup(
			timeInput("Start", start),
			timeInput("End", end),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Location").
				Placeholder("Office").
				Value(location),
			huh.NewText().
				Title("Note").
				Value(note),
			huh.NewSelect[string]().
				Title("Company").
				Options(companyOpts...).
				Value(company),
		),
	).WithShowHelp(false)
}

// timeInput returns a huh.Input for a timestamp field with layout validation.
func timeInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-15 09:00").
		Value(value).
		Validate(func(s string) error {
			_, err := parseTimeArg(s)
			return err
		})
}
