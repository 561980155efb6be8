package main

import (
	"fmt"

	"github.com/MixinNetwork/nexus/economy"
	"github.com/spf13/cobra"
)

func resellCmd(run withApp) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "resell <id>",
		Short: "Resell an owned collectible for tokens, this cannot be undone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(a *App) error {
				id, out := args[0], cmd.OutOrStdout()
				c := a.economy.Find(id)
				if c != nil && c.Status == economy.StatusOwned && !confirmed {
					value := economy.ResellValue(c.Rarity)
					fmt.Fprintf(out, "Are you sure you want to resell %s? You will receive %d tokens back. This action cannot be undone.\n", c.Name, value)
					fmt.Fprintln(out, "Run again with --yes to confirm.")
					return nil
				}
				res := a.economy.Resell(cmd.Context(), id)
				printResult(out, res)
				printStatus(out, a.economy)
				return resultError(res)
			})
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the resell")
	return cmd
}
