package ui

import (
	"encoding/base64"
	"fmt"
	"html"
	"html/template"

	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
)

const (
	placeholderMaxName = 30
	placeholderKeep    = 27
)

// Card is the view-model for one rendered product. Its two flags are local to
// this instance: once the primary image fails it stays failed, and the
// citations toggle is purely local state.
type Card struct {
	Key               string
	Product           *models.Product
	Justification     string
	SupportingReviews []models.RagContext

	imageFailed       bool
	citationsExpanded bool
}

// NewCard builds a card for one search result or catalog entry under the
// given render key.
func NewCard(key string, result models.ProductResult) *Card {
	return &Card{
		Key:               key,
		Product:           result.Product,
		Justification:     result.Justification,
		SupportingReviews: result.SupportingReviews,
	}
}

// Renderable reports whether there is anything to draw. A null product at the
// top level renders nothing rather than crashing.
func (c *Card) Renderable() bool {
	return c != nil && c.Product != nil
}

// MarkImageFailed records that the primary image failed to load. The flag is
// set exactly once and never reset, so later renders do not retry the URL.
func (c *Card) MarkImageFailed() {
	c.imageFailed = true
}

func (c *Card) ImageFailed() bool {
	return c.imageFailed
}

// ImageSrc returns the image URL to render, or the generated placeholder when
// there is no URL or it has already failed. Typed template.URL because the
// placeholder is a data: URI, which html/template would otherwise filter; the
// value is built entirely from escaped content.
func (c *Card) ImageSrc() template.URL {
	if c.Product == nil {
		return placeholderDataURI("")
	}
	if c.Product.ImageURL != "" && !c.imageFailed {
		return template.URL(c.Product.ImageURL)
	}
	return placeholderDataURI(c.Product.Name)
}

// PlaceholderSrc is the fallback graphic regardless of current image state,
// used by the inline onerror hook.
func (c *Card) PlaceholderSrc() template.URL {
	if c.Product == nil {
		return placeholderDataURI("")
	}
	return placeholderDataURI(c.Product.Name)
}

// PriceLabel formats the price to two decimals with the currency code, or
// "N/A" when the backend did not supply a price.
func (c *Card) PriceLabel() string {
	if c.Product == nil || c.Product.PriceUSD == nil {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f %s", *c.Product.PriceUSD, c.Product.Currency())
}

func (c *Card) HasCitations() bool {
	return len(c.SupportingReviews) > 0
}

func (c *Card) CitationsExpanded() bool {
	return c.citationsExpanded
}

// ToggleCitations flips the expanded state. Purely local, nothing refetches.
func (c *Card) ToggleCitations() {
	c.citationsExpanded = !c.citationsExpanded
}

// CitationsLabel is the toggle button text, reflecting count and state.
func (c *Card) CitationsLabel() string {
	if c.citationsExpanded {
		return fmt.Sprintf("Hide supporting reviews (%d)", len(c.SupportingReviews))
	}
	return fmt.Sprintf("Show supporting reviews (%d)", len(c.SupportingReviews))
}

// placeholderDataURI generates the fallback graphic: an inline SVG carrying
// the escaped product name, truncated to 27 characters plus an ellipsis when
// longer than 30.
func placeholderDataURI(name string) template.URL {
	label := truncateName(name)
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="200">`+
			`<rect width="100%%" height="100%%" fill="#e8e4df"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#6b6257">%s</text>`+
			`</svg>`,
		html.EscapeString(label),
	)
	return template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg)))
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > placeholderMaxName {
		return string(runes[:placeholderKeep]) + "..."
	}
	return name
}
