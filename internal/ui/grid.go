package ui

import (
	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
)

// NoProductsMessage is shown when the grid has nothing to render, whether the
// catalog is empty or the fetch failed.
const NoProductsMessage = "No products available at the moment."

// Grid is the card list for one render. Card instances come from the
// session's CardSet so their local flags survive re-renders.
type Grid struct {
	Cards []*Card
}

// NewGrid resolves results to cards through the given set. Entries whose
// product is missing are skipped entirely.
func NewGrid(set *CardSet, scope string, results []models.ProductResult) *Grid {
	grid := &Grid{}
	for _, result := range results {
		card := set.Resolve(scope, result)
		if !card.Renderable() {
			continue
		}
		grid.Cards = append(grid.Cards, card)
	}
	return grid
}

// Empty reports whether the "no products" message should render instead of
// cards. An absent list and a present-but-empty list are the same thing.
func (g *Grid) Empty() bool {
	return g == nil || len(g.Cards) == 0
}
