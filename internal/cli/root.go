// Package cli wires the stint command tree. Commands talk to the store and
// the aggregation engine; rendering goes through the formatter package.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/location"
	"github.com/mkallio/stint/internal/store"
)

// App holds the dependencies shared by all CLI commands.
type App struct {
	Store    *store.Store
	Calendar aggregate.Calendar
	Log      *slog.Logger

	// Resolver is nil when geocoding is disabled.
	Resolver location.Resolver

	// IsInteractive reports whether stdout is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "stint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stint",
		Short:         "Personal work-session tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newAbandonCmd(app),
		newStatusCmd(app),
		newListCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newSummaryCmd(app),
		newHistoryCmd(app),
		newCompanyCmd(app),
	)

	return root
}
