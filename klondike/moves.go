package klondike

import "fmt"

// Every move comes as a pair: a XxxAllowed predicate that never mutates,
// and an execute method that re-runs the same check and returns a
// *MoveError without touching any pile when it fails. The unexported
// xxxCheck helpers return an empty string when the move is legal and the
// rejection reason otherwise.

// TableauMoveAllowed reports whether cards, bottom first, may be placed on
// column col.
func (b *Board) TableauMoveAllowed(cards []Card, col int) bool {
	return b.tableauMoveCheck(cards, col) == ""
}

func (b *Board) tableauMoveCheck(cards []Card, col int) string {
	if !validColumn(col) {
		return "no such column"
	}
	if len(cards) == 0 {
		return "no cards to move"
	}

	bottom := cards[0]
	target := b.tableau[col]
	if len(target) == 0 {
		if bottom.Rank != King {
			return "only a king can go on an empty column"
		}
		return ""
	}

	top := target[len(target)-1]
	switch {
	case !top.Revealed:
		return "top card is face down"
	case bottom.Color() == top.Card.Color():
		return fmt.Sprintf("%s cannot go on %s of the same color", bottom, top.Card)
	case bottom.Rank+1 != top.Card.Rank:
		return fmt.Sprintf("%s cannot go on %s", bottom, top.Card)
	}
	return ""
}

// TableauMove places cards face up on column col
func (b *Board) TableauMove(cards []Card, col int) error {
	if reason := b.tableauMoveCheck(cards, col); reason != "" {
		return invalidMove("tableau move", columnName(col), reason)
	}
	for _, c := range cards {
		b.tableau[col] = append(b.tableau[col], BoardCard{Card: c, Revealed: true})
	}
	return nil
}

// FoundationMoveAllowed reports whether card is the next card for its
// suit's foundation pile.
func (b *Board) FoundationMoveAllowed(card Card) bool {
	return b.foundationMoveCheck(card) == ""
}

func (b *Board) foundationMoveCheck(card Card) string {
	if !card.Suit.Valid() || !card.Rank.Valid() {
		return "not a playing card"
	}
	want := Ace
	if top, ok := b.FoundationTop(card.Suit); ok {
		next, ok := top.Rank.Next()
		if !ok {
			return "pile is complete"
		}
		want = next
	}
	if card.Rank != want {
		return fmt.Sprintf("%s is not next, need %s", card, NewCard(want, card.Suit))
	}
	return ""
}

// FoundationMove places card on its suit's foundation pile
func (b *Board) FoundationMove(card Card) error {
	if reason := b.foundationMoveCheck(card); reason != "" {
		return invalidMove("foundation move", foundationName(card.Suit), reason)
	}
	b.foundation[card.Suit] = append(b.foundation[card.Suit], card)
	return nil
}

// SubstackAllowed reports whether the top length cards of column col form
// a movable run: all face up, alternating colors, each one rank below the
// card beneath it. A single face-up top card always qualifies.
func (b *Board) SubstackAllowed(length, col int) bool {
	return b.substackCheck(length, col) == ""
}

func (b *Board) substackCheck(length, col int) string {
	if !validColumn(col) {
		return "no such column"
	}
	stack := b.tableau[col]
	switch {
	case length <= 0:
		return "nothing to move"
	case len(stack) == 0:
		return "column is empty"
	case length > len(stack):
		return fmt.Sprintf("column only holds %d cards", len(stack))
	}

	upper := stack[len(stack)-1]
	if !upper.Revealed {
		return "top card is face down"
	}
	for i := len(stack) - 2; i >= len(stack)-length; i-- {
		lower := stack[i]
		switch {
		case !lower.Revealed:
			return "stack includes a face down card"
		case lower.Card.Color() == upper.Card.Color():
			return fmt.Sprintf("%s and %s are the same color", lower.Card, upper.Card)
		case upper.Card.Rank+1 != lower.Card.Rank:
			return fmt.Sprintf("%s does not follow %s", upper.Card, lower.Card)
		}
		upper = lower
	}
	return ""
}

// SubstackRemove takes the top length cards off column col and turns the
// new top card face up.
func (b *Board) SubstackRemove(length, col int) error {
	if reason := b.substackCheck(length, col); reason != "" {
		return invalidMove("remove substack", columnName(col), reason)
	}
	b.removeTop(length, col)
	return nil
}

func (b *Board) removeTop(length, col int) {
	stack := b.tableau[col]
	stack = stack[:len(stack)-length]
	if n := len(stack); n > 0 {
		stack[n-1].Revealed = true
	}
	b.tableau[col] = stack
}

func (b *Board) substackCards(length, col int) []Card {
	stack := b.tableau[col]
	cards := make([]Card, 0, length)
	for _, bc := range stack[len(stack)-length:] {
		cards = append(cards, bc.Card)
	}
	return cards
}

// FoundationToTableauAllowed reports whether the top card of suit's
// foundation pile may move onto column col.
func (b *Board) FoundationToTableauAllowed(suit Suit, col int) bool {
	top, ok := b.FoundationTop(suit)
	return ok && b.TableauMoveAllowed([]Card{top}, col)
}

// FoundationToTableau moves the top card of suit's foundation pile onto
// column col.
func (b *Board) FoundationToTableau(suit Suit, col int) error {
	top, ok := b.FoundationTop(suit)
	if !ok {
		return invalidMove("foundation to tableau", foundationName(suit), "no cards in that foundation pile")
	}
	if err := b.TableauMove([]Card{top}, col); err != nil {
		return err
	}
	b.foundation[suit] = b.foundation[suit][:len(b.foundation[suit])-1]
	return nil
}

// DropToTableauAllowed reports whether the top of the drop pile may move
// onto column col.
func (b *Board) DropToTableauAllowed(col int) bool {
	top, ok := b.DropTop()
	return ok && b.TableauMoveAllowed([]Card{top}, col)
}

// DropToTableau moves the top of the drop pile onto column col
func (b *Board) DropToTableau(col int) error {
	top, ok := b.DropTop()
	if !ok {
		return invalidMove("drop to tableau", "drop", "no cards in drop pile")
	}
	if err := b.TableauMove([]Card{top}, col); err != nil {
		return err
	}
	b.drop = b.drop[:len(b.drop)-1]
	return nil
}

// DropToFoundationAllowed reports whether the top of the drop pile may move
// to its foundation pile.
func (b *Board) DropToFoundationAllowed() bool {
	top, ok := b.DropTop()
	return ok && b.FoundationMoveAllowed(top)
}

// DropToFoundation moves the top of the drop pile to its foundation pile
func (b *Board) DropToFoundation() error {
	top, ok := b.DropTop()
	if !ok {
		return invalidMove("drop to foundation", "drop", "no cards in drop pile")
	}
	if err := b.FoundationMove(top); err != nil {
		return err
	}
	b.drop = b.drop[:len(b.drop)-1]
	return nil
}

// TableauToTableauAllowed reports whether the top length cards of column
// src may move onto column dst.
func (b *Board) TableauToTableauAllowed(length, src, dst int) bool {
	return b.tableauToTableauCheck(length, src, dst) == ""
}

func (b *Board) tableauToTableauCheck(length, src, dst int) string {
	if src == dst {
		return "source and destination are the same column"
	}
	if reason := b.substackCheck(length, src); reason != "" {
		return reason
	}
	return b.tableauMoveCheck(b.substackCards(length, src), dst)
}

// TableauToTableau moves the top length cards of column src onto column dst
func (b *Board) TableauToTableau(length, src, dst int) error {
	if reason := b.tableauToTableauCheck(length, src, dst); reason != "" {
		return invalidMove("tableau to tableau", fmt.Sprintf("%s to %s", columnName(src), columnName(dst)), reason)
	}
	cards := b.substackCards(length, src)
	for _, c := range cards {
		b.tableau[dst] = append(b.tableau[dst], BoardCard{Card: c, Revealed: true})
	}
	b.removeTop(length, src)
	return nil
}

// FindTableauMove returns the shortest run on column src that may legally
// move onto column dst.
func (b *Board) FindTableauMove(src, dst int) (int, bool) {
	for length := 1; length <= b.ColumnLen(src); length++ {
		if b.TableauToTableauAllowed(length, src, dst) {
			return length, true
		}
	}
	return 0, false
}

// TableauToFoundationAllowed reports whether the top card of column col
// may move to its foundation pile.
func (b *Board) TableauToFoundationAllowed(col int) bool {
	return b.tableauToFoundationCheck(col) == ""
}

func (b *Board) tableauToFoundationCheck(col int) string {
	if reason := b.substackCheck(1, col); reason != "" {
		return reason
	}
	stack := b.tableau[col]
	return b.foundationMoveCheck(stack[len(stack)-1].Card)
}

// TableauToFoundation moves the top card of column col to its foundation pile
func (b *Board) TableauToFoundation(col int) error {
	if reason := b.tableauToFoundationCheck(col); reason != "" {
		return invalidMove("tableau to foundation", columnName(col), reason)
	}
	stack := b.tableau[col]
	top := stack[len(stack)-1].Card
	b.foundation[top.Suit] = append(b.foundation[top.Suit], top)
	b.removeTop(1, col)
	return nil
}
