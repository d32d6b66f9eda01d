package catalog

import "strings"

// Catalog is a fixed, ordered list of cards. It is built once and never
// mutated; every accessor hands out copies.
type Catalog struct {
	cards []Card
}

// New creates a Catalog holding a copy of cards in the given order.
func New(cards []Card) Catalog {
	own := make([]Card, len(cards))
	copy(own, cards)
	return Catalog{cards: own}
}

// Len returns the number of cards in the catalog.
func (c Catalog) Len() int {
	return len(c.cards)
}

// Cards returns a copy of all cards in catalog order.
func (c Catalog) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// At returns the card at position i.
func (c Catalog) At(i int) (Card, bool) {
	if i < 0 || i >= len(c.cards) {
		return Card{}, false
	}
	return c.cards[i], true
}

// Filter returns the cards whose title contains term, ignoring case, in
// catalog order. An empty term matches every card. The result is never nil.
func (c Catalog) Filter(term string) []Card {
	return Filter(c.cards, term)
}

// Filter returns the cards whose title contains term, ignoring case.
// Only titles are searched. The input slice is not modified and the result
// never aliases it.
func Filter(cards []Card, term string) []Card {
	term = strings.ToLower(term)
	matches := make([]Card, 0, len(cards))
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Title), term) {
			matches = append(matches, card)
		}
	}
	return matches
}
