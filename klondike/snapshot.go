package klondike

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/board.json
var schemaFiles embed.FS

const boardSchemaURL = "https://soliterm.dev/schemas/board.json"

var boardSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	data, err := schemaFiles.ReadFile("schemas/board.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read board schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(boardSchemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add board schema: %w", err)
	}
	return compiler.Compile(boardSchemaURL)
})

// snapshotCard is a card as written to disk. Saves from older versions
// carry the rank under "value".
type snapshotCard struct {
	Suit     Suit  `json:"suit"`
	Rank     Rank  `json:"rank,omitempty"`
	Value    Rank  `json:"value,omitempty"`
	Revealed *bool `json:"revealed,omitempty"`
}

func (sc snapshotCard) card() Card {
	rank := sc.Rank
	if rank == 0 {
		rank = sc.Value
	}
	return Card{Suit: sc.Suit, Rank: rank}
}

type snapshot struct {
	Deck       []snapshotCard   `json:"deck"`
	Drop       []snapshotCard   `json:"drop"`
	Foundation [][]snapshotCard `json:"foundation"`
	Board      [][]snapshotCard `json:"board"`
}

func snapshotPile(cards []Card) []snapshotCard {
	pile := make([]snapshotCard, 0, len(cards))
	for _, c := range cards {
		pile = append(pile, snapshotCard{Suit: c.Suit, Rank: c.Rank})
	}
	return pile
}

// MarshalJSON writes every pile of the board in the save file format
func (b *Board) MarshalJSON() ([]byte, error) {
	snap := snapshot{
		Deck:       snapshotPile(b.deck),
		Drop:       snapshotPile(b.drop),
		Foundation: make([][]snapshotCard, 0, FoundationPiles),
		Board:      make([][]snapshotCard, 0, TableauColumns),
	}
	for _, pile := range b.foundation {
		snap.Foundation = append(snap.Foundation, snapshotPile(pile))
	}
	for _, col := range b.tableau {
		column := make([]snapshotCard, 0, len(col))
		for _, bc := range col {
			revealed := bc.Revealed
			column = append(column, snapshotCard{Suit: bc.Card.Suit, Rank: bc.Card.Rank, Revealed: &revealed})
		}
		snap.Board = append(snap.Board, column)
	}
	return json.Marshal(snap)
}

// ParseBoard builds a new board from a save file. Every pile must be
// present and well formed; anything else yields a *LoadError. The card set
// itself is not checked, see ParseBoardStrict.
func ParseBoard(data []byte) (*Board, error) {
	schema, err := boardSchema()
	if err != nil {
		return nil, &LoadError{Reason: "save format unavailable", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Reason: "malformed JSON", Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &LoadError{Reason: "not a saved game", Err: err}
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, &LoadError{Reason: "malformed pile", Err: err}
	}

	b := &Board{}
	for _, sc := range snap.Deck {
		b.deck = append(b.deck, sc.card())
	}
	for _, sc := range snap.Drop {
		b.drop = append(b.drop, sc.card())
	}
	for i, pile := range snap.Foundation {
		for _, sc := range pile {
			b.foundation[i] = append(b.foundation[i], sc.card())
		}
	}
	for i, col := range snap.Board {
		for _, sc := range col {
			b.tableau[i] = append(b.tableau[i], BoardCard{Card: sc.card(), Revealed: *sc.Revealed})
		}
	}
	return b, nil
}

// ParseBoardStrict is ParseBoard followed by CheckInvariants
func ParseBoardStrict(data []byte) (*Board, error) {
	b, err := ParseBoard(data)
	if err != nil {
		return nil, err
	}
	if err := b.CheckInvariants(); err != nil {
		return nil, &LoadError{Reason: "inconsistent board", Err: err}
	}
	return b, nil
}
