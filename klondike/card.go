package klondike

import (
	"math/rand/v2"
	"strconv"
)

// Color is the color of a suit
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suit identifies one of the four suits. The numeric values are the ones
// written to save files.
type Suit uint8

const (
	Hearts   Suit = 0
	Clubs    Suit = 1
	Diamonds Suit = 2
	Spades   Suit = 3
)

// Suits lists every suit in foundation order
var Suits = [FoundationPiles]Suit{Hearts, Clubs, Diamonds, Spades}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s <= Spades
}

// Color returns red for hearts and diamonds, black for clubs and spades
func (s Suit) Color() Color {
	if s%2 == 0 {
		return Red
	}
	return Black
}

// Symbol returns the suit glyph used for display
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Spades:
		return "spades"
	}
	return "suit(" + strconv.Itoa(int(s)) + ")"
}

// Rank is a card rank from Ace (1) to King (13)
type Rank uint8

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Next returns the rank above r. There is nothing above a King.
func (r Rank) Next() (Rank, bool) {
	if r >= King {
		return 0, false
	}
	return r + 1, true
}

// Prev returns the rank below r. There is nothing below an Ace.
func (r Rank) Prev() (Rank, bool) {
	if r <= Ace {
		return 0, false
	}
	return r - 1, true
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is an immutable suit and rank pair
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// Color returns the color of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Next returns the card of the same suit one rank higher
func (c Card) Next() (Card, bool) {
	r, ok := c.Rank.Next()
	if !ok {
		return Card{}, false
	}
	return Card{Suit: c.Suit, Rank: r}, true
}

// Prev returns the card of the same suit one rank lower
func (c Card) Prev() (Card, bool) {
	r, ok := c.Rank.Prev()
	if !ok {
		return Card{}, false
	}
	return Card{Suit: c.Suit, Rank: r}, true
}

// String returns the short form, e.g. "Q♥" or "10♠"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// FullDeck returns all 52 cards, grouped by rank from Aces to Kings
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for rank := Ace; rank <= King; rank++ {
		for _, suit := range Suits {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// NewDeck returns a full deck shuffled with rng
func NewDeck(rng *rand.Rand) []Card {
	cards := FullDeck()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
