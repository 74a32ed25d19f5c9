package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/cli/formatter"
	"github.com/mkallio/stint/internal/domain"
	"github.com/mkallio/stint/internal/location"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.Calendar.Now()

			if prev, ok := app.Store.InProgress(); ok {
				fmt.Printf("Replacing session started %s.\n",
					formatter.Dim(prev.StartTime.Format("15:04")))
			}

			if err := app.Store.SaveInProgress(ctx, now); err != nil {
				return err
			}
			fmt.Printf("Started at %s.\n", formatter.Bold(now.Format("15:04")))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	var note, company string
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Finish the in-progress session and record it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sess, ok := app.Store.InProgress()
			if !ok {
				return fmt.Errorf("no session in progress")
			}
			now := app.Calendar.Now()

			r := domain.WorkRecord{
				ID:          uuid.New().String(),
				StartTime:   sess.StartTime,
				EndTime:     now,
				Note:        domain.TruncateNote(note),
				CompanyName: company,
			}

			if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lon") {
				r.Latitude, r.Longitude = &lat, &lon
				r.LocationLabel = resolveLabel(ctx, app, lat, lon)
			}

			if err := app.Store.Add(ctx, r); err != nil {
				return err
			}
			if err := app.Store.ClearInProgress(ctx); err != nil {
				return err
			}

			hours := domain.HoursBetween(r.StartTime, r.EndTime)
			fmt.Printf("Recorded %s (%s).\n",
				formatter.Bold(formatter.FormatHours(hours)),
				formatter.TruncID(r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Session note (capped at 30 words)")
	cmd.Flags().StringVar(&company, "company", "", "Company name (empty means no company)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the work location")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude of the work location")

	return cmd
}

// resolveLabel geocodes at record-creation time only. Throttled or failed
// lookups fall back to the placeholder label.
func resolveLabel(ctx context.Context, app *App, lat, lon float64) string {
	if app.Resolver == nil {
		return domain.LocationUnavailable
	}
	addr, err := app.Resolver.Resolve(ctx, lat, lon)
	if err != nil {
		if !errors.Is(err, location.ErrThrottled) {
			app.Log.Warn("geocoding failed", "error", err)
		}
		return domain.LocationUnavailable
	}
	return addr
}

func newAbandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Discard the in-progress session without recording it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.InProgress(); !ok {
				fmt.Println("No session in progress.")
				return nil
			}
			if err := app.Store.ClearInProgress(context.Background()); err != nil {
				return err
			}
			fmt.Println("Session abandoned.")
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the in-progress session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok := app.Store.InProgress()
			if !ok {
				fmt.Println("Not working.")
				return nil
			}
			elapsed := sess.Elapsed(app.Calendar.Now())
			fmt.Printf("Working since %s (%s).\n",
				formatter.Bold(sess.StartTime.Format("15:04")),
				formatter.StyleGreen.Render(formatter.FormatElapsed(elapsed)))
			return nil
		},
	}
}
