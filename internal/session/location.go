package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/soliterm/klondike"
)

// LocationKind says which kind of pile a command argument names
type LocationKind int

const (
	DropPile LocationKind = iota
	FoundationZone
	SuitPile
	TableauColumn
)

// Location is a pile named on the command line. Suit is set for SuitPile
// and Column (0-based) for TableauColumn.
type Location struct {
	Kind   LocationKind
	Suit   klondike.Suit
	Column int
}

// IsFoundation reports whether l names the foundation zone or one of its piles
func (l Location) IsFoundation() bool {
	return l.Kind == FoundationZone || l.Kind == SuitPile
}

func (l Location) String() string {
	switch l.Kind {
	case DropPile:
		return "drop"
	case FoundationZone:
		return "foundation"
	case SuitPile:
		return l.Suit.String()
	default:
		return fmt.Sprintf("column %d", l.Column+1)
	}
}

var locationNames = map[string]Location{
	"drop":       {Kind: DropPile},
	"d":          {Kind: DropPile},
	"foundation": {Kind: FoundationZone},
	"f":          {Kind: FoundationZone},
	"hearts":     {Kind: SuitPile, Suit: klondike.Hearts},
	"heart":      {Kind: SuitPile, Suit: klondike.Hearts},
	"h":          {Kind: SuitPile, Suit: klondike.Hearts},
	"clubs":      {Kind: SuitPile, Suit: klondike.Clubs},
	"club":       {Kind: SuitPile, Suit: klondike.Clubs},
	"c":          {Kind: SuitPile, Suit: klondike.Clubs},
	"diamonds":   {Kind: SuitPile, Suit: klondike.Diamonds},
	"diamond":    {Kind: SuitPile, Suit: klondike.Diamonds},
	"dia":        {Kind: SuitPile, Suit: klondike.Diamonds},
	"spades":     {Kind: SuitPile, Suit: klondike.Spades},
	"spade":      {Kind: SuitPile, Suit: klondike.Spades},
	"s":          {Kind: SuitPile, Suit: klondike.Spades},
}

// ParseLocation parses a pile name or a column number from 1 to 7
func ParseLocation(arg string) (Location, error) {
	arg = strings.ToLower(arg)
	if loc, ok := locationNames[arg]; ok {
		return loc, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > klondike.TableauColumns {
		return Location{}, fmt.Errorf("unknown location %q", arg)
	}
	return Location{Kind: TableauColumn, Column: n - 1}, nil
}
