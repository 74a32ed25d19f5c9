package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkallio/stint/internal/cli/formatter"
)

func newCompanyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage the company registry",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Register a company name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Store.AddCompany(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Added %s.\n", formatter.Bold(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove a company name (existing records keep theirs)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Store.RemoveCompany(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Printf("Removed %s.\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List registered companies",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				companies := app.Store.Companies()
				if len(companies) == 0 {
					fmt.Println("No companies registered.")
					return nil
				}
				for _, c := range companies {
					fmt.Println(c)
				}
				return nil
			},
		},
	)

	return cmd
}
