package ui

import (
	"context"
	"fmt"
	"sort"

	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
	"github.com/sirupsen/logrus"
)

// AllCategories is the sentinel filter option that shows the whole catalog.
const AllCategories = "All"

// Lister is the slice of the backend client the page needs.
type Lister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Page is the composition root state for one browser session: the loaded
// catalog, the category filter, and the load error, plus the chat panel that
// decides which view is shown.
type Page struct {
	lister Lister
	logger *logrus.Logger

	Panel *Panel

	products []models.Product
	loaded   bool
	loadErr  string
	category string
}

func NewPage(lister Lister, panel *Panel, logger *logrus.Logger) *Page {
	return &Page{
		lister:   lister,
		logger:   logger,
		Panel:    panel,
		category: AllCategories,
	}
}

// Load fetches the catalog once per session. The client already collapses
// failures to an empty list; the page keeps the underlying error text so the
// catalog view can show a descriptive message above the empty grid.
func (p *Page) Load(ctx context.Context) {
	if p.loaded {
		return
	}
	products, err := p.lister.ListProducts(ctx)
	if err != nil {
		p.loadErr = fmt.Sprintf("Failed to load products: %s", err.Error())
	}
	p.products = products
	p.loaded = true

	p.logger.WithFields(logrus.Fields{
		"count":  len(products),
		"failed": err != nil,
	}).Info("Catalog loaded")
}

func (p *Page) Loaded() bool {
	return p.loaded
}

func (p *Page) LoadError() string {
	return p.loadErr
}

func (p *Page) Products() []models.Product {
	return p.products
}

// Categories derives the filter options: "All" first, then the sorted
// distinct non-empty categories present in the catalog.
func (p *Page) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{AllCategories}
	for _, product := range p.products {
		if product.Category == "" || seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		categories = append(categories, product.Category)
	}
	sort.Strings(categories[1:])
	return categories
}

// SetCategory narrows the catalog view. Unknown values are kept as-is and
// simply match nothing.
func (p *Page) SetCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	p.category = category
}

func (p *Page) Category() string {
	return p.category
}

// Filtered returns the products for the current filter: everything for the
// "All" sentinel, exact category matches otherwise.
func (p *Page) Filtered() []models.Product {
	if p.category == AllCategories {
		return p.products
	}
	var filtered []models.Product
	for _, product := range p.products {
		if product.Category == p.category {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// SearchActive reports whether the chat view replaces the catalog view.
func (p *Page) SearchActive() bool {
	return p.Panel != nil && p.Panel.Active()
}
