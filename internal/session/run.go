package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/lox/soliterm/internal/savefile"
)

const prompt = "soliterm> "

// Run plays until the game is won, the player exits or input ends. Unless
// a game was already loaded, an existing autosave is offered first. The
// autosave is kept when input ends so the game can be resumed.
func (s *Session) Run(ctx context.Context, term Terminal) error {
	styles := s.opts.Renderer.Styles()
	s.confirm = func(question string, def bool) (bool, error) {
		return confirm(term, question, def)
	}

	if err := s.offerAutosave(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for !s.board.IsWon() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.show()

		cont, err := s.readCommand(ctx, term)
		if errors.Is(err, io.EOF) {
			s.opts.Logger.Info("Input closed, keeping autosave")
			return nil
		}
		if err != nil {
			return err
		}
		if !cont {
			s.opts.Logger.Info("Player exited")
			return nil
		}

		if err := s.autosave(); err != nil {
			fmt.Fprintln(s.opts.Out, styles.Error.Render("autosave: "+err.Error()))
			s.opts.Logger.Error("Autosave failed", "error", err)
		}
	}

	s.show()
	elapsed := s.Elapsed().Round(time.Second)
	fmt.Fprintln(s.opts.Out, styles.Success.Render(
		fmt.Sprintf("Congratulations, you won! %d moves in %s", s.moves, elapsed)))
	s.opts.Logger.Info("Game won", "moves", s.moves, "elapsed", elapsed)

	if err := s.removeAutosave(); err != nil {
		s.opts.Logger.Warn("Failed to remove autosave", "error", err)
	}
	return nil
}

// readCommand prompts until a command succeeds
func (s *Session) readCommand(ctx context.Context, term Terminal) (bool, error) {
	styles := s.opts.Renderer.Styles()
	for {
		term.SetPrompt(styles.Prompt.Render(prompt))
		line, err := term.Readline()
		if err == readline.ErrInterrupt {
			fmt.Fprintln(s.opts.Out, styles.Status.Render("Use 'exit' to quit"))
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			return false, err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cont, err := s.Execute(line)
		if err != nil {
			fmt.Fprintln(s.opts.Out, styles.Error.Render(err.Error()))
			s.opts.Logger.Debug("Command failed", "line", line, "error", err)
			continue
		}
		return cont, nil
	}
}

func (s *Session) offerAutosave() error {
	path := s.opts.AutosavePath
	if s.resumed || path == "" || !savefile.Exists(path) {
		return nil
	}

	ok, err := s.confirm("Automatic save file found, load it? [Y/n] ", true)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := s.Load(path); err != nil {
		fmt.Fprintln(s.opts.Out, s.opts.Renderer.Styles().Error.Render(err.Error()))
		s.opts.Logger.Warn("Could not load autosave", "error", err)
	}
	return nil
}

func (s *Session) show() {
	fmt.Fprintln(s.opts.Out, s.opts.Renderer.Board(s.board))
	fmt.Fprintln(s.opts.Out, s.opts.Renderer.Status(s.board))
}

func confirm(term Terminal, question string, def bool) (bool, error) {
	term.SetPrompt(question)
	for {
		line, err := term.Readline()
		if err == readline.ErrInterrupt {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
