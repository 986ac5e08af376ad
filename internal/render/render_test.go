package render

import (
	"io"
	"strings"
	"testing"

	"github.com/lox/soliterm/klondike"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain() *Renderer {
	return New(io.Discard, false)
}

func TestBoardFreshDeal(t *testing.T) {
	t.Parallel()

	out := plain().Board(klondike.NewBoardFromDeck(klondike.FullDeck()))
	lines := strings.Split(out, "\n")

	// border, header, blank, labels, seven rows, border
	require.Len(t, lines, 12)
	assert.Contains(t, lines[1], "##  []      []  []  []  []")
	assert.Contains(t, lines[3], "01  02  03  04  05  06  07")
	assert.Contains(t, lines[4], "K♠  ##  ##  ##  ##  ##  ##")
	assert.Contains(t, lines[5], "    K♣  ##  ##  ##  ##  ##")
	assert.Contains(t, lines[10], "                        ")
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.NotContains(t, out, "\x1b[", "no escape codes without color")
}

func TestBoardShowsPileTops(t *testing.T) {
	t.Parallel()

	deck := klondike.FullDeck()
	b := klondike.NewBoardFromDeck(deck)
	// The deck ends with sixes; the first draws reach the aces
	for range 24 {
		b.DrawToDrop()
	}
	require.NoError(t, b.DropToFoundation())

	out := plain().Board(b)
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "[]  A♣      A♥  []  []  []")
}

func TestBoardEmptyColumns(t *testing.T) {
	t.Parallel()

	b := klondike.NewBoardFromDeck(nil)
	out := plain().Board(b)

	assert.Contains(t, out, "[]  []  []  []  []  []  []")
}

func TestStatus(t *testing.T) {
	t.Parallel()

	b := klondike.NewBoardFromDeck(klondike.FullDeck())
	assert.Equal(t, "deck 24 · drop 0 · foundations 0/52", plain().Status(b))
}

func TestCard(t *testing.T) {
	t.Parallel()

	r := plain()
	assert.Equal(t, "10♦", r.Card(klondike.NewCard(klondike.Ten, klondike.Diamonds)))
	assert.Equal(t, "A♠", r.Card(klondike.NewCard(klondike.Ace, klondike.Spades)))
}
