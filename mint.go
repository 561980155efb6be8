package main

import (
	"github.com/MixinNetwork/nexus/economy"
	"github.com/spf13/cobra"
)

func generateCmd(run withApp) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Spend tokens to mint a new collectible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(a *App) error {
				out := cmd.OutOrStdout()
				res := a.economy.Generate(cmd.Context())
				printResult(out, res)
				if res.Collectible != nil {
					printCollectibles(out, []*economy.Collectible{res.Collectible})
				}
				printStatus(out, a.economy)
				return resultError(res)
			})
		},
	}
}
