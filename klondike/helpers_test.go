package klondike

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func up(r Rank, s Suit) BoardCard {
	return BoardCard{Card: NewCard(r, s), Revealed: true}
}

func down(r Rank, s Suit) BoardCard {
	return BoardCard{Card: NewCard(r, s)}
}

// fullFoundation returns Ace through top of suit s
func fullFoundation(s Suit, top Rank) []Card {
	var pile []Card
	for r := Ace; r <= top; r++ {
		pile = append(pile, NewCard(r, s))
	}
	return pile
}

// snapshotOf captures the whole board so tests can assert it did not change
func snapshotOf(t *testing.T, b *Board) string {
	t.Helper()
	data, err := b.MarshalJSON()
	require.NoError(t, err)
	return string(data)
}

func totalCards(b *Board) int {
	n := len(b.deck) + len(b.drop)
	for _, pile := range b.foundation {
		n += len(pile)
	}
	for _, col := range b.tableau {
		n += len(col)
	}
	return n
}
