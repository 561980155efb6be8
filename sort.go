package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MixinNetwork/nexus/economy"
)

const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortRarityDesc = "rarity-desc"
	SortRarityAsc  = "rarity-asc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
)

func sortCollectibles(cs []*economy.Collectible, order string) error {
	var less func(a, b *economy.Collectible) bool
	switch order {
	case SortDateDesc, "":
		less = func(a, b *economy.Collectible) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortDateAsc:
		less = func(a, b *economy.Collectible) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortRarityDesc:
		less = func(a, b *economy.Collectible) bool { return a.Rarity.Rank() > b.Rarity.Rank() }
	case SortRarityAsc:
		less = func(a, b *economy.Collectible) bool { return a.Rarity.Rank() < b.Rarity.Rank() }
	case SortNameAsc:
		less = func(a, b *economy.Collectible) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortNameDesc:
		less = func(a, b *economy.Collectible) bool { return strings.ToLower(a.Name) > strings.ToLower(b.Name) }
	default:
		return fmt.Errorf("unknown sort order %q", order)
	}
	sort.SliceStable(cs, func(i, j int) bool { return less(cs[i], cs[j]) })
	return nil
}
