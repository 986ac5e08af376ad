// Package render draws a Klondike board for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/soliterm/klondike"
)

const cellWidth = 3

const (
	backText = "##"
	slotText = "[]"
)

// Styles contains styling for board display
type Styles struct {
	Frame     lipgloss.Style
	Label     lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Back      lipgloss.Style
	Slot      lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Prompt    lipgloss.Style
}

// Renderer turns boards into strings
type Renderer struct {
	styles Styles
}

// New creates a renderer writing styled output for w. With color off every
// style degrades to plain text.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if !color {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{styles: newStyles(lr)}
}

func newStyles(lr *lipgloss.Renderer) Styles {
	return Styles{
		Frame: lr.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		Label:     lr.NewStyle().Foreground(lipgloss.Color("#626262")),
		RedCard:   lr.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		BlackCard: lr.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Back:      lr.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
		Slot:      lr.NewStyle().Foreground(lipgloss.Color("#04B575")),
		Status:    lr.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		Error:     lr.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Success:   lr.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		Prompt:    lr.NewStyle().Foreground(lipgloss.Color("#04B575")),
	}
}

// Styles returns the styles used by r, for callers printing messages
// alongside the board.
func (r *Renderer) Styles() Styles {
	return r.styles
}

// Board draws the deck, drop and foundation piles on the first line, the
// column numbers below them and then the tableau, one row per card depth.
func (r *Renderer) Board(b *klondike.Board) string {
	var sb strings.Builder

	header := []string{
		r.deckCell(b),
		r.topCell(b.DropTop()),
		r.blank(),
	}
	for _, s := range klondike.Suits {
		header = append(header, r.topCell(b.FoundationTop(s)))
	}
	sb.WriteString(strings.Join(header, " "))
	sb.WriteString("\n\n")

	labels := make([]string, 0, klondike.TableauColumns)
	depth := 1
	for col := range klondike.TableauColumns {
		labels = append(labels, r.styles.Label.Render(pad(fmt.Sprintf("%02d", col+1))))
		depth = max(depth, b.ColumnLen(col))
	}
	sb.WriteString(strings.Join(labels, " "))

	columns := make([][]klondike.BoardCard, klondike.TableauColumns)
	for col := range columns {
		columns[col] = b.Column(col)
	}
	for row := range depth {
		cells := make([]string, 0, klondike.TableauColumns)
		for _, column := range columns {
			switch {
			case row < len(column) && column[row].Revealed:
				cells = append(cells, r.card(column[row].Card))
			case row < len(column):
				cells = append(cells, r.styles.Back.Render(pad(backText)))
			case row == 0:
				cells = append(cells, r.styles.Slot.Render(pad(slotText)))
			default:
				cells = append(cells, r.blank())
			}
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(cells, " "))
	}

	return r.styles.Frame.Render(sb.String())
}

// Status summarises pile sizes in one line
func (r *Renderer) Status(b *klondike.Board) string {
	done := 0
	for _, s := range klondike.Suits {
		done += len(b.Foundation(s))
	}
	return r.styles.Status.Render(fmt.Sprintf("deck %d · drop %d · foundations %d/52",
		len(b.Deck()), len(b.Drop()), done))
}

// Card renders a single face-up card in its suit color
func (r *Renderer) Card(c klondike.Card) string {
	if c.Color() == klondike.Red {
		return r.styles.RedCard.Render(c.String())
	}
	return r.styles.BlackCard.Render(c.String())
}

func (r *Renderer) card(c klondike.Card) string {
	if c.Color() == klondike.Red {
		return r.styles.RedCard.Render(pad(c.String()))
	}
	return r.styles.BlackCard.Render(pad(c.String()))
}

func (r *Renderer) deckCell(b *klondike.Board) string {
	if len(b.Deck()) > 0 {
		return r.styles.Back.Render(pad(backText))
	}
	return r.styles.Slot.Render(pad(slotText))
}

func (r *Renderer) topCell(c klondike.Card, ok bool) string {
	if !ok {
		return r.styles.Slot.Render(pad(slotText))
	}
	return r.card(c)
}

func (r *Renderer) blank() string {
	return pad("")
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}
