// Package klondike implements the rules of Klondike solitaire.
//
// The main type is Board, which owns the deck, the drop pile, the four
// foundation piles and the seven tableau columns of a single game.
//
// # Basic Usage
//
// Deal a game and play it:
//
//	b := klondike.NewBoard(rand.New(rand.NewPCG(1, 2)))
//	b.DrawToDrop()
//	if b.DropToFoundationAllowed() {
//	    _ = b.DropToFoundation()
//	}
//	if err := b.TableauToTableau(1, 0, 3); errors.Is(err, klondike.ErrInvalidMove) {
//	    // rejected, nothing changed
//	}
//
// Every move has an Allowed predicate that never mutates the board and an
// execute method that checks again and either applies the whole move or
// returns a *MoveError. Columns are addressed by 0-based index and
// foundation piles by Suit.
//
// # Persistence
//
// Board implements json.Marshaler. ParseBoard reads the same format back
// into a fresh Board, so a failed load never disturbs a game in progress.
package klondike
