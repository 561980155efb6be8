package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/MixinNetwork/nexus/economy"
	"github.com/charmbracelet/lipgloss"
)

var (
	levelStyles = map[string]lipgloss.Style{
		economy.LevelSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#86efac")),
		economy.LevelWarning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fde047")),
		economy.LevelError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fca5a5")),
	}

	rarityStyles = map[economy.Rarity]lipgloss.Style{
		economy.RarityF:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d1d5db")),
		economy.RarityE:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e5e7eb")),
		economy.RarityD:     lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd")),
		economy.RarityC:     lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac")),
		economy.RarityB:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d8b4fe")),
		economy.RarityA:     lipgloss.NewStyle().Foreground(lipgloss.Color("#fde047")),
		economy.RarityS:     lipgloss.NewStyle().Foreground(lipgloss.Color("#fdba74")),
		economy.RaritySPlus: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fca5a5")),
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

func printResult(w io.Writer, res *economy.Result) {
	fmt.Fprintln(w, levelStyles[res.Level].Render(res.Message))
}

// resultError turns a failed intent into a command error, rejected user
// actions are not errors.
func resultError(res *economy.Result) error {
	if res.OK() || res.Level == economy.LevelWarning {
		return nil
	}
	return res.Err
}

func printStatus(w io.Writer, ecn *economy.Economy) {
	fmt.Fprintf(w, "%s %d    %s %d\n",
		titleStyle.Render("TOKENS:"), ecn.Balance(),
		titleStyle.Render("SCORE:"), ecn.Score())
}

func printCollectibles(w io.Writer, cs []*economy.Collectible) {
	for _, c := range cs {
		rarity := rarityStyles[c.Rarity].Render(fmt.Sprintf("%-2s", c.Rarity))
		status := "resell +" + fmt.Sprint(economy.ResellValue(c.Rarity))
		if c.Status == economy.StatusResold {
			status = mutedStyle.Render("RESOLD")
		}
		fmt.Fprintf(w, "%s  %s  %-12s  %s  %s\n", c.Id, rarity, c.Name, c.CreatedAt.Format("2006-01-02"), status)
	}
}

func printWelcome(w io.Writer, cost uint64) {
	lines := []string{
		titleStyle.Render("WELCOME TO THE NEXUS"),
		fmt.Sprintf("Spend %d tokens to generate a collectible of random rarity, from F up to S+.", cost),
		"Resell collectibles you own to earn tokens back, rarer ones are worth more.",
		"Owned collectibles score 5 points, resold ones 1.",
		mutedStyle.Render("Run `nexus welcome --dismiss` to hide this message."),
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
