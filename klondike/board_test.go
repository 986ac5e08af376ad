package klondike

import (
	"testing"

	"github.com/lox/soliterm/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardDeal(t *testing.T) {
	t.Parallel()

	b := NewBoard(randutil.New(42))

	assert.Len(t, b.Deck(), 24, "28 of 52 cards are dealt")
	assert.Empty(t, b.Drop())
	for _, s := range Suits {
		assert.Empty(t, b.Foundation(s))
	}

	for i := range TableauColumns {
		col := b.Column(i)
		require.Len(t, col, i+1, "column %d", i+1)
		for j, bc := range col {
			assert.Equal(t, j == len(col)-1, bc.Revealed, "column %d card %d", i+1, j)
		}
	}

	require.NoError(t, b.CheckInvariants())
	assert.False(t, b.IsWon())
}

func TestNewBoardFromDeckDrawsFromEnd(t *testing.T) {
	t.Parallel()

	deck := FullDeck()
	b := NewBoardFromDeck(deck)

	// The last card of the deck is dealt first
	assert.Equal(t, []BoardCard{up(King, Spades)}, b.Column(0))
	assert.Equal(t, []BoardCard{down(King, Diamonds), up(King, Clubs)}, b.Column(1))
	assert.Equal(t, deck[:24], b.Deck())

	// The caller's slice is not shared with the board
	deck[0] = NewCard(King, Hearts)
	assert.Equal(t, NewCard(Ace, Hearts), b.Deck()[0])
}

func TestDealShortDeck(t *testing.T) {
	t.Parallel()

	b := NewBoardFromDeck(FullDeck()[:4])

	assert.Len(t, b.Column(0), 1)
	assert.Len(t, b.Column(1), 2)
	assert.Len(t, b.Column(2), 1)
	assert.True(t, b.Column(2)[0].Revealed)
	for i := 3; i < TableauColumns; i++ {
		assert.Empty(t, b.Column(i))
	}
	assert.Empty(t, b.Deck())
}

func TestDraw(t *testing.T) {
	t.Parallel()

	t.Run("takes the last deck card", func(t *testing.T) {
		b := &Board{deck: []Card{NewCard(Ace, Hearts), NewCard(Two, Clubs)}}

		c, ok := b.Draw()
		require.True(t, ok)
		assert.Equal(t, NewCard(Two, Clubs), c)
		assert.Equal(t, []Card{NewCard(Ace, Hearts)}, b.Deck())
	})

	t.Run("empty deck and drop", func(t *testing.T) {
		b := &Board{}
		before := snapshotOf(t, b)

		_, ok := b.Draw()
		assert.False(t, ok)
		assert.Equal(t, before, snapshotOf(t, b))
	})

	t.Run("recycles the drop pile", func(t *testing.T) {
		b := &Board{drop: []Card{NewCard(Ace, Hearts), NewCard(Two, Clubs), NewCard(Three, Spades)}}

		c, ok := b.Draw()
		require.True(t, ok)
		// The first card drawn onto the drop comes back first
		assert.Equal(t, NewCard(Ace, Hearts), c)
		assert.Empty(t, b.Drop())
		assert.Equal(t, []Card{NewCard(Three, Spades), NewCard(Two, Clubs)}, b.Deck())
	})
}

func TestDrawToDrop(t *testing.T) {
	t.Parallel()

	b := &Board{deck: []Card{NewCard(Five, Hearts), NewCard(Six, Clubs)}}

	require.True(t, b.DrawToDrop())
	require.True(t, b.DrawToDrop())
	assert.Empty(t, b.Deck())
	assert.Equal(t, []Card{NewCard(Six, Clubs), NewCard(Five, Hearts)}, b.Drop())

	top, ok := b.DropTop()
	require.True(t, ok)
	assert.Equal(t, NewCard(Five, Hearts), top)

	// Next draw recycles and puts the oldest drop card back on top
	require.True(t, b.DrawToDrop())
	assert.Equal(t, []Card{NewCard(Six, Clubs)}, b.Drop())
	assert.Equal(t, []Card{NewCard(Five, Hearts)}, b.Deck())

	empty := &Board{}
	assert.False(t, empty.DrawToDrop())
	assert.Empty(t, empty.Drop())
}

func TestDrawCycleKeepsCards(t *testing.T) {
	t.Parallel()

	b := NewBoard(randutil.New(7))
	for range 100 {
		b.DrawToDrop()
		require.Equal(t, 24, len(b.Deck())+len(b.Drop()))
	}
	require.NoError(t, b.CheckInvariants())
}

func TestIsWon(t *testing.T) {
	t.Parallel()

	b := &Board{}
	for _, s := range Suits {
		b.foundation[s] = fullFoundation(s, King)
	}
	assert.True(t, b.IsWon())
	require.NoError(t, b.CheckInvariants())

	for _, s := range Suits {
		t.Run(s.String()+" short", func(t *testing.T) {
			short := &Board{}
			for _, other := range Suits {
				short.foundation[other] = fullFoundation(other, King)
			}
			short.foundation[s] = fullFoundation(s, Queen)
			assert.False(t, short.IsWon())
		})
	}

	assert.False(t, (&Board{}).IsWon())
}

func TestCheckInvariants(t *testing.T) {
	t.Parallel()

	t.Run("missing card", func(t *testing.T) {
		b := NewBoardFromDeck(FullDeck())
		b.deck = b.deck[1:]
		assert.ErrorContains(t, b.CheckInvariants(), "missing")
	})

	t.Run("duplicate card", func(t *testing.T) {
		b := NewBoardFromDeck(FullDeck())
		b.deck[1] = b.deck[0]
		assert.ErrorContains(t, b.CheckInvariants(), "appears 2 times")
	})

	t.Run("foundation gap", func(t *testing.T) {
		b := NewBoardFromDeck(FullDeck())
		b.deck = b.deck[1:]
		b.foundation[Hearts] = []Card{NewCard(Two, Hearts)}
		assert.ErrorContains(t, b.CheckInvariants(), "foundation hearts")
	})

	t.Run("foreign card", func(t *testing.T) {
		b := NewBoardFromDeck(FullDeck())
		b.drop = append(b.drop, NewCard(Rank(14), Hearts))
		assert.ErrorContains(t, b.CheckInvariants(), "outside the standard deck")
	})
}

func TestReadAccessorsCopy(t *testing.T) {
	t.Parallel()

	b := NewBoard(randutil.New(1))
	col := b.Column(6)
	col[0].Revealed = true
	assert.False(t, b.Column(6)[0].Revealed)

	assert.Nil(t, b.Column(7))
	assert.Nil(t, b.Column(-1))
	assert.Nil(t, b.Foundation(Suit(9)))
	assert.Zero(t, b.ColumnLen(12))
}
