package ui

import (
	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
	"github.com/google/uuid"
)

// CardSet keeps card view-models alive across re-renders within one browser
// session, so per-instance flags (image fallback, citations toggle) persist.
// Cards are keyed by scope plus product_id; the same product shown in the
// catalog and in a chat answer gets two independent instances.
type CardSet struct {
	cards map[string]*Card
}

func NewCardSet() *CardSet {
	return &CardSet{cards: make(map[string]*Card)}
}

// Resolve returns the existing card for this scope and product, creating it
// on first render. Entries without a product_id get a fresh card under a
// random key each time; such entries are not expected to reorder or keep
// state across renders.
func (s *CardSet) Resolve(scope string, result models.ProductResult) *Card {
	if result.Product == nil || result.Product.ProductID == "" {
		card := NewCard(uuid.NewString(), result)
		s.cards[card.Key] = card
		return card
	}

	key := scope + ":" + result.Product.ProductID
	if card, ok := s.cards[key]; ok {
		return card
	}
	card := NewCard(key, result)
	s.cards[key] = card
	return card
}

// Get looks up a card by its render key. Returns nil when unknown, which
// handlers treat as a no-op.
func (s *CardSet) Get(key string) *Card {
	return s.cards[key]
}
