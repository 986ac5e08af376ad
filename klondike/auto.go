package klondike

// AutoPlay moves every card it can onto the foundation piles, first from
// the drop pile and then from each column top, repeating until a full pass
// makes no progress. It returns the number of cards moved.
func (b *Board) AutoPlay() int {
	moved := 0
	for {
		progress := false
		if b.DropToFoundationAllowed() {
			if b.DropToFoundation() == nil {
				moved++
				progress = true
			}
		}
		for col := range TableauColumns {
			if b.TableauToFoundationAllowed(col) {
				if b.TableauToFoundation(col) == nil {
					moved++
					progress = true
				}
			}
		}
		if !progress {
			return moved
		}
	}
}
