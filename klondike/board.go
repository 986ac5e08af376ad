package klondike

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

const (
	// FoundationPiles is the number of foundation piles, one per suit
	FoundationPiles = 4
	// TableauColumns is the number of tableau columns
	TableauColumns = 7
)

// BoardCard is a tableau card together with whether it is face up
type BoardCard struct {
	Card     Card
	Revealed bool
}

// Board holds every pile of a Klondike game. It is not safe for concurrent
// use; a single session owns it and mutates it in place.
type Board struct {
	deck       []Card // face down, drawn from the end
	drop       []Card // face up, most recent draw at the end
	foundation [FoundationPiles][]Card
	tableau    [TableauColumns][]BoardCard
}

// NewBoard shuffles a fresh deck with rng and deals it
func NewBoard(rng *rand.Rand) *Board {
	return NewBoardFromDeck(NewDeck(rng))
}

// NewBoardFromDeck deals a game from deck. Cards are drawn from the end of
// the slice, so the last card lands on the first column.
func NewBoardFromDeck(deck []Card) *Board {
	b := &Board{deck: slices.Clone(deck)}
	b.Deal()
	return b
}

// Deck returns the undealt cards, bottom first
func (b *Board) Deck() []Card {
	return slices.Clone(b.deck)
}

// Drop returns the drop pile, top last
func (b *Board) Drop() []Card {
	return slices.Clone(b.drop)
}

// Foundation returns the foundation pile of suit s, Ace first
func (b *Board) Foundation(s Suit) []Card {
	if !s.Valid() {
		return nil
	}
	return slices.Clone(b.foundation[s])
}

// Column returns tableau column col (0-based), bottom first
func (b *Board) Column(col int) []BoardCard {
	if !validColumn(col) {
		return nil
	}
	return slices.Clone(b.tableau[col])
}

// ColumnLen returns the number of cards in column col
func (b *Board) ColumnLen(col int) int {
	if !validColumn(col) {
		return 0
	}
	return len(b.tableau[col])
}

// DropTop returns the top card of the drop pile
func (b *Board) DropTop() (Card, bool) {
	if len(b.drop) == 0 {
		return Card{}, false
	}
	return b.drop[len(b.drop)-1], true
}

// FoundationTop returns the highest card on the foundation pile of suit s
func (b *Board) FoundationTop(s Suit) (Card, bool) {
	if !s.Valid() || len(b.foundation[s]) == 0 {
		return Card{}, false
	}
	pile := b.foundation[s]
	return pile[len(pile)-1], true
}

// Draw removes the last card of the deck. An empty deck is refilled from
// the reversed drop pile first. Reports false when both are empty.
func (b *Board) Draw() (Card, bool) {
	if len(b.deck) > 0 {
		c := b.deck[len(b.deck)-1]
		b.deck = b.deck[:len(b.deck)-1]
		return c, true
	}
	if len(b.drop) == 0 {
		return Card{}, false
	}
	b.deck = b.drop
	slices.Reverse(b.deck)
	b.drop = nil
	return b.Draw()
}

// Deal puts i+1 face-down cards on column i and turns the last one over.
// A full deck gives up 28 cards.
func (b *Board) Deal() {
	for i := range TableauColumns {
		for range i + 1 {
			c, ok := b.Draw()
			if !ok {
				break
			}
			b.tableau[i] = append(b.tableau[i], BoardCard{Card: c})
		}
		if n := len(b.tableau[i]); n > 0 {
			b.tableau[i][n-1].Revealed = true
		}
	}
}

// DrawToDrop moves the next deck card face up onto the drop pile. It does
// nothing and reports false when deck and drop are both empty.
func (b *Board) DrawToDrop() bool {
	c, ok := b.Draw()
	if !ok {
		return false
	}
	b.drop = append(b.drop, c)
	return true
}

// IsWon reports whether every foundation pile is complete
func (b *Board) IsWon() bool {
	for _, pile := range b.foundation {
		if len(pile) != int(King) {
			return false
		}
	}
	return true
}

// CheckInvariants verifies that the board holds each of the 52 cards
// exactly once and that every foundation pile is a gapless run of its own
// suit starting at Ace.
func (b *Board) CheckInvariants() error {
	seen := make(map[Card]int, 52)
	for _, c := range b.deck {
		seen[c]++
	}
	for _, c := range b.drop {
		seen[c]++
	}
	for i, pile := range b.foundation {
		for j, c := range pile {
			seen[c]++
			if c.Suit != Suit(i) || c.Rank != Rank(j+1) {
				return fmt.Errorf("%s: position %d holds %s", foundationName(Suit(i)), j+1, c)
			}
		}
	}
	for _, col := range b.tableau {
		for _, bc := range col {
			seen[bc.Card]++
		}
	}

	for _, c := range FullDeck() {
		switch n := seen[c]; n {
		case 1:
		case 0:
			return fmt.Errorf("card %s is missing", c)
		default:
			return fmt.Errorf("card %s appears %d times", c, n)
		}
		delete(seen, c)
	}
	if len(seen) > 0 {
		return fmt.Errorf("board holds %d cards outside the standard deck", len(seen))
	}
	return nil
}

func validColumn(col int) bool {
	return col >= 0 && col < TableauColumns
}
