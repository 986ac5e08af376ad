package session

import (
	"sync"

	"github.com/chzyer/readline"
)

// Terminal reads player input a line at a time
type Terminal interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// ReadlineTerminal is a Terminal backed by readline, with history and
// command completion
type ReadlineTerminal struct {
	rl        *readline.Instance
	closeOnce sync.Once
	closeErr  error
}

// NewReadlineTerminal creates a terminal completing the given command
// names. An empty historyFile disables history.
func NewReadlineTerminal(historyFile string, commands []string) (*ReadlineTerminal, error) {
	completer := readline.NewPrefixCompleter()
	for _, name := range commands {
		completer.Children = append(completer.Children, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineTerminal{rl: rl}, nil
}

func (t *ReadlineTerminal) Readline() (string, error) {
	return t.rl.Readline()
}

func (t *ReadlineTerminal) SetPrompt(prompt string) {
	t.rl.SetPrompt(prompt)
}

// Close restores the terminal and unblocks a pending Readline. It may be
// called more than once.
func (t *ReadlineTerminal) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.rl.Close()
	})
	return t.closeErr
}
