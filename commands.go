package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const propertyWelcomeSeen = "PREFERENCE:WELCOME:SEEN"

func statusCmd(run withApp) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the token balance and collection score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(a *App) error {
				printStatus(cmd.OutOrStdout(), a.economy)
				return nil
			})
		},
	}
}

func listCmd(run withApp) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(a *App) error {
				cs := a.economy.Snapshot()
				if len(cs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Your collection is empty. Generate your first collectible!")
					return nil
				}
				err := sortCollectibles(cs, order)
				if err != nil {
					return err
				}
				printCollectibles(cmd.OutOrStdout(), cs)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&order, "sort", "s", SortDateDesc, "sort order: date-desc, date-asc, rarity-desc, rarity-asc, name-asc, name-desc")
	return cmd
}

func welcomeCmd(run withApp) *cobra.Command {
	var dismiss bool

	cmd := &cobra.Command{
		Use:   "welcome",
		Short: "Show the welcome message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(a *App) error {
				if !dismiss {
					printWelcome(cmd.OutOrStdout(), a.economy.GenerationCost())
					return nil
				}
				return a.store.WriteProperty([]byte(propertyWelcomeSeen), []byte{1})
			})
		},
	}
	cmd.Flags().BoolVar(&dismiss, "dismiss", false, "do not show the welcome message again")
	return cmd
}

func (a *App) greet(cmd *cobra.Command) {
	seen, err := a.store.ReadProperty([]byte(propertyWelcomeSeen))
	if err != nil || len(seen) > 0 {
		return
	}
	printWelcome(cmd.ErrOrStderr(), a.economy.GenerationCost())
}
