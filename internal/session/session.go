// Package session runs an interactive Klondike game: it parses player
// commands, applies them to the board and keeps the autosave current.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/soliterm/internal/render"
	"github.com/lox/soliterm/internal/savefile"
	"github.com/lox/soliterm/klondike"
)

// Command is a player command. The handler's bool reports whether the
// game should keep running.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Handler     func(args []string) (bool, error)
}

// ConfirmFunc asks the player a yes/no question, returning def on an
// empty answer
type ConfirmFunc func(question string, def bool) (bool, error)

// Options configures a Session
type Options struct {
	// Deal returns a freshly dealt board for new games and restarts
	Deal func() *klondike.Board

	// AutosavePath is written after every successful command. Empty
	// disables autosave.
	AutosavePath string
	StrictLoad   bool

	Out      io.Writer
	Renderer *render.Renderer
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Session holds one player's game
type Session struct {
	opts     Options
	board    *klondike.Board
	commands map[string]*Command
	order    []*Command
	confirm  ConfirmFunc
	started  time.Time
	moves    int
	resumed  bool
}

// New creates a session with a freshly dealt board
func New(opts Options) *Session {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(opts.Out, false)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	s := &Session{
		opts:    opts,
		board:   opts.Deal(),
		confirm: func(string, bool) (bool, error) { return false, nil },
		started: opts.Clock.Now(),
	}
	s.initCommands()
	return s
}

// Board returns the board in play
func (s *Session) Board() *klondike.Board {
	return s.board
}

// Moves returns the number of successful moves since the game started
func (s *Session) Moves() int {
	return s.moves
}

// Elapsed returns the time since the current game started
func (s *Session) Elapsed() time.Duration {
	return s.opts.Clock.Since(s.started)
}

// SetConfirm sets the function used for yes/no questions
func (s *Session) SetConfirm(fn ConfirmFunc) {
	s.confirm = fn
}

// CommandNames returns every command name and alias, for completion
func (s *Session) CommandNames() []string {
	names := make([]string, 0, len(s.commands))
	for _, cmd := range s.order {
		names = append(names, cmd.Name)
		names = append(names, cmd.Aliases...)
	}
	return names
}

func (s *Session) initCommands() {
	s.order = []*Command{
		{
			Name:        "move",
			Aliases:     []string{"mv", "m"},
			Usage:       "move SRC [to] DST",
			Description: "Move cards from SRC to DST",
			Handler:     s.handleMove,
		},
		{
			Name:        "auto",
			Aliases:     []string{"a"},
			Usage:       "auto",
			Description: "Move every card that can go to the foundation",
			Handler:     s.handleAuto,
		},
		{
			Name:        "draw",
			Aliases:     []string{"d"},
			Usage:       "draw",
			Description: "Draw a card from the deck",
			Handler:     s.handleDraw,
		},
		{
			Name:        "restart",
			Aliases:     []string{"r"},
			Usage:       "restart",
			Description: "Deal a new game",
			Handler:     s.handleRestart,
		},
		{
			Name:        "save",
			Aliases:     []string{"s"},
			Usage:       "save FILE",
			Description: "Save the game to FILE",
			Handler:     s.handleSave,
		},
		{
			Name:        "load",
			Aliases:     []string{"l"},
			Usage:       "load FILE",
			Description: "Load a game from FILE",
			Handler:     s.handleLoad,
		},
		{
			Name:        "help",
			Aliases:     []string{"h", "?"},
			Usage:       "help",
			Description: "Show available commands",
			Handler:     s.handleHelp,
		},
		{
			Name:        "exit",
			Aliases:     []string{"e", "quit", "q"},
			Usage:       "exit",
			Description: "Quit and discard the autosave",
			Handler:     s.handleExit,
		},
	}

	s.commands = make(map[string]*Command)
	for _, cmd := range s.order {
		s.commands[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			s.commands[alias] = cmd
		}
	}
}

// Execute runs one command line. It returns false once the player asks to
// quit.
func (s *Session) Execute(line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true, nil
	}

	name := strings.ToLower(parts[0])
	cmd, ok := s.commands[name]
	if !ok {
		return true, fmt.Errorf("%s: not a valid command: see help", name)
	}
	return cmd.Handler(parts[1:])
}

func usageError(cmd string) error {
	return fmt.Errorf("%s: invalid usage: see help", cmd)
}

func (s *Session) handleMove(args []string) (bool, error) {
	var srcArg, dstArg string
	switch {
	case len(args) == 2:
		srcArg, dstArg = args[0], args[1]
	case len(args) == 3 && strings.EqualFold(args[1], "to"):
		srcArg, dstArg = args[0], args[2]
	default:
		return true, usageError("move")
	}

	src, err := ParseLocation(srcArg)
	if err != nil {
		return true, fmt.Errorf("move: invalid source: see help")
	}
	dst, err := ParseLocation(dstArg)
	if err != nil {
		return true, fmt.Errorf("move: invalid destination: see help")
	}

	if err := s.move(src, dst); err != nil {
		return true, fmt.Errorf("move: %w", err)
	}

	s.moves++
	s.opts.Logger.Info("Move", "from", src, "to", dst)
	return true, nil
}

func (s *Session) move(src, dst Location) error {
	switch {
	case src.Kind == FoundationZone:
		return errors.New("cannot move from foundation, which suit?")
	case dst.Kind == DropPile:
		return errors.New("cannot move into the drop pile")
	case dst.IsFoundation():
		switch src.Kind {
		case DropPile:
			return s.board.DropToFoundation()
		case TableauColumn:
			return s.board.TableauToFoundation(src.Column)
		default:
			return errors.New("cannot move between foundation piles")
		}
	}

	switch src.Kind {
	case SuitPile:
		return s.board.FoundationToTableau(src.Suit, dst.Column)
	case DropPile:
		return s.board.DropToTableau(dst.Column)
	}

	length, ok := s.board.FindTableauMove(src.Column, dst.Column)
	if !ok {
		return fmt.Errorf("no cards in %s can go on %s", src, dst)
	}
	return s.board.TableauToTableau(length, src.Column, dst.Column)
}

func (s *Session) handleAuto(args []string) (bool, error) {
	if len(args) != 0 {
		return true, usageError("auto")
	}
	n := s.board.AutoPlay()
	if n == 0 {
		return true, errors.New("auto: no card can go to the foundation")
	}
	s.moves += n
	s.opts.Logger.Info("Auto play", "cards", n)
	return true, nil
}

func (s *Session) handleDraw(args []string) (bool, error) {
	if len(args) != 0 {
		return true, usageError("draw")
	}
	if !s.board.DrawToDrop() {
		s.opts.Logger.Debug("Draw with empty deck and drop")
	}
	return true, nil
}

func (s *Session) handleRestart(args []string) (bool, error) {
	if len(args) != 0 {
		return true, usageError("restart")
	}
	ok, err := s.confirm("Do you really want to restart? [y/N] ", false)
	if err != nil {
		return true, err
	}
	if !ok {
		return true, errors.New("restart: cancelled")
	}

	s.board = s.opts.Deal()
	s.moves = 0
	s.started = s.opts.Clock.Now()
	s.opts.Logger.Info("Restarted game")
	return true, nil
}

func (s *Session) handleSave(args []string) (bool, error) {
	if len(args) != 1 {
		return true, usageError("save")
	}
	if err := savefile.Save(args[0], s.board); err != nil {
		return true, fmt.Errorf("save: %w", err)
	}
	s.opts.Logger.Info("Saved game", "file", args[0])
	fmt.Fprintln(s.opts.Out, s.opts.Renderer.Styles().Success.Render("Saved game to "+args[0]))
	return true, nil
}

func (s *Session) handleLoad(args []string) (bool, error) {
	if len(args) != 1 {
		return true, usageError("load")
	}
	if err := s.Load(args[0]); err != nil {
		return true, fmt.Errorf("load: %w", err)
	}
	return true, nil
}

// Load replaces the board with the game saved at path. The board is left
// alone when loading fails.
func (s *Session) Load(path string) error {
	b, err := savefile.Load(path, s.opts.StrictLoad)
	if err != nil {
		return err
	}
	s.board = b
	s.moves = 0
	s.started = s.opts.Clock.Now()
	s.resumed = true
	s.opts.Logger.Info("Loaded game", "file", path)
	return nil
}

func (s *Session) handleHelp(args []string) (bool, error) {
	fmt.Fprint(s.opts.Out, s.Help())
	return true, nil
}

func (s *Session) handleExit(args []string) (bool, error) {
	if err := s.removeAutosave(); err != nil {
		s.opts.Logger.Warn("Failed to remove autosave", "error", err)
	}
	return false, nil
}

// Help describes every command and the pile names they accept
func (s *Session) Help() string {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, cmd := range s.order {
		names := append([]string{cmd.Name}, cmd.Aliases...)
		fmt.Fprintf(&sb, "  %-20s %s (%s)\n", cmd.Usage, cmd.Description, strings.Join(names, ", "))
	}
	sb.WriteString("\nLocations:\n")
	sb.WriteString("  drop, d                 the drop pile\n")
	sb.WriteString("  foundation, f           the foundation pile matching the card\n")
	sb.WriteString("  hearts, clubs, diamonds, spades (h, c, dia, s)\n")
	sb.WriteString("                          a single foundation pile\n")
	sb.WriteString("  1-7                     a tableau column\n")
	return sb.String()
}

func (s *Session) autosave() error {
	if s.opts.AutosavePath == "" {
		return nil
	}
	if err := savefile.Save(s.opts.AutosavePath, s.board); err != nil {
		return err
	}
	s.opts.Logger.Debug("Autosaved", "file", s.opts.AutosavePath)
	return nil
}

func (s *Session) removeAutosave() error {
	if s.opts.AutosavePath == "" {
		return nil
	}
	return savefile.Remove(s.opts.AutosavePath)
}
