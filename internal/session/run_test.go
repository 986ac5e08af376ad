package session

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chzyer/readline"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/soliterm/internal/savefile"
	"github.com/lox/soliterm/klondike"
)

type input struct {
	line string
	err  error
}

// scriptTerminal replays canned input and then reports EOF
type scriptTerminal struct {
	inputs  []input
	prompts []string
}

func script(lines ...string) *scriptTerminal {
	term := &scriptTerminal{}
	for _, line := range lines {
		term.inputs = append(term.inputs, input{line: line})
	}
	return term
}

func (t *scriptTerminal) Readline() (string, error) {
	if len(t.inputs) == 0 {
		return "", io.EOF
	}
	in := t.inputs[0]
	t.inputs = t.inputs[1:]
	return in.line, in.err
}

func (t *scriptTerminal) SetPrompt(prompt string) {
	t.prompts = append(t.prompts, prompt)
}

func TestRunWin(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "auto.save")
	clock := quartz.NewMock(t)
	s, out := newTestSession(t, Options{Deal: readyBoard(t), AutosavePath: path, Clock: clock})

	clock.Advance(90 * time.Second)
	require.NoError(t, s.Run(context.Background(), script("auto")))

	assert.True(t, s.Board().IsWon())
	assert.Contains(t, out.String(), "Congratulations, you won! 52 moves in 1m30s")
	assert.False(t, savefile.Exists(path))
}

func TestRunEOFKeepsAutosave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "auto.save")
	s, out := newTestSession(t, Options{AutosavePath: path})

	require.NoError(t, s.Run(context.Background(), script("move 1 2", "", "draw")))

	// The failed move is reported and the prompt repeats
	assert.Contains(t, out.String(), "move: no cards in column 1 can go on column 2")
	require.True(t, savefile.Exists(path))

	b, err := savefile.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, []klondike.Card{klondike.NewCard(klondike.Six, klondike.Spades)}, b.Drop())
}

func TestRunExitRemovesAutosave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "auto.save")
	s, _ := newTestSession(t, Options{AutosavePath: path})

	require.NoError(t, s.Run(context.Background(), script("draw", "quit")))
	assert.False(t, savefile.Exists(path))
}

func TestRunOffersAutosave(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		answer   string
		wantDrop int
	}{
		{"default loads", "", 2},
		{"yes loads", "y", 2},
		{"no deals fresh", "n", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "auto.save")
			saved := orderedDeal()
			saved.DrawToDrop()
			saved.DrawToDrop()
			require.NoError(t, savefile.Save(path, saved))

			s, _ := newTestSession(t, Options{AutosavePath: path})
			term := script(tc.answer)
			require.NoError(t, s.Run(context.Background(), term))

			assert.Len(t, s.Board().Drop(), tc.wantDrop)
			assert.Equal(t, "Automatic save file found, load it? [Y/n] ", term.prompts[0])
		})
	}
}

func TestRunBadAutosave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "auto.save")
	require.NoError(t, os.WriteFile(path, []byte(`{"deck": []}`), 0o600))

	s, out := newTestSession(t, Options{AutosavePath: path})
	fresh := s.Board()

	require.NoError(t, s.Run(context.Background(), script("yes")))
	assert.Contains(t, out.String(), "could not load game")
	assert.Same(t, fresh, s.Board())
}

func TestRunInterrupt(t *testing.T) {
	t.Parallel()

	s, out := newTestSession(t, Options{})
	term := &scriptTerminal{inputs: []input{{err: readline.ErrInterrupt}, {line: "exit"}}}

	require.NoError(t, s.Run(context.Background(), term))
	assert.Contains(t, out.String(), "Use 'exit' to quit")
}

func TestRunRestartConfirm(t *testing.T) {
	t.Parallel()

	s, out := newTestSession(t, Options{})
	term := script("draw", "restart", "maybe", "y", "exit")

	require.NoError(t, s.Run(context.Background(), term))
	assert.Empty(t, s.Board().Drop())
	assert.Contains(t, term.prompts, "Do you really want to restart? [y/N] ")
	assert.NotContains(t, out.String(), "restart: cancelled")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Run(ctx, script("draw")), context.Canceled)
}

func TestRunSkipsOfferAfterLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	autosave := filepath.Join(dir, "auto.save")
	require.NoError(t, savefile.Save(autosave, orderedDeal()))

	game := orderedDeal()
	game.DrawToDrop()
	path := filepath.Join(dir, "game.save")
	require.NoError(t, savefile.Save(path, game))

	s, _ := newTestSession(t, Options{AutosavePath: autosave})
	require.NoError(t, s.Load(path))

	term := script()
	require.NoError(t, s.Run(context.Background(), term))
	assert.Len(t, s.Board().Drop(), 1)
	assert.NotContains(t, term.prompts, "Automatic save file found, load it? [Y/n] ")
}
