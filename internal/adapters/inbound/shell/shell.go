package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/prodcat/prodcat/internal/adapters/outbound/tui"
	"github.com/prodcat/prodcat/internal/application"
	"github.com/prodcat/prodcat/internal/domain"
	"go.uber.org/zap"
)

const clearSequence = "\033[H\033[2J"

// LineReader reads one line of user input per call. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Options tunes the shell's presentation.
type Options struct {
	Indent      int
	ClearScreen bool
	ListFormat  domain.ListFormat
}

// Shell is the interactive menu over one catalog session.
type Shell struct {
	svc  *application.CatalogService
	in   LineReader
	out  io.Writer
	log  *zap.Logger
	opts Options
}

type command int

const (
	cmdUnknown command = iota
	cmdList
	cmdFind
	cmdSearch
	cmdAdd
	cmdDelete
	cmdWrite
	cmdQuit
)

var commandWords = map[string]command{
	"L": cmdList, "LIST": cmdList,
	"F": cmdFind, "FIND": cmdFind,
	"S": cmdSearch, "SEARCH": cmdSearch,
	"A": cmdAdd, "ADD": cmdAdd,
	"D": cmdDelete, "DELETE": cmdDelete,
	"W": cmdWrite, "WRITE": cmdWrite, "SAVE": cmdWrite,
	"Q": cmdQuit, "QUIT": cmdQuit, "EXIT": cmdQuit,
}

var menu = []tui.MenuOption{
	{Key: "L", Label: "List catalog"},
	{Key: "F", Label: "Find product by id"},
	{Key: "S", Label: "Search products by name"},
	{Key: "A", Label: "Add product"},
	{Key: "D", Label: "Delete product"},
	{Key: "W", Label: "Write catalog to file"},
	{Key: "Q", Label: "Quit"},
}

// errQuit ends the loop without an error.
var errQuit = errors.New("quit")

func parseCommand(input string) command {
	return commandWords[strings.ToUpper(strings.TrimSpace(input))]
}

func New(svc *application.CatalogService, in LineReader, out io.Writer, log *zap.Logger, opts Options) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{svc: svc, in: in, out: out, log: log.Named("shell"), opts: opts}
}

// NewReadline opens a terminal line editor that keeps its history in
// historyFile. An empty historyFile disables persistence.
func NewReadline(historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing readline: %w", err)
	}
	return rl, nil
}

// Run shows the menu until the user quits or input ends. Catalog errors are
// reported and the loop continues. An interrupt cancels the current command;
// at the menu prompt it quits, asking first when there are unsaved changes.
func (s *Shell) Run() error {
	for {
		if s.opts.ClearScreen {
			fmt.Fprint(s.out, clearSequence)
		}
		s.say(tui.RenderMenu(fmt.Sprintf("Catalog  %s", s.svc.Location()), menu) + "\n\n")

		input, err := s.ask("OPTION> ")
		if errors.Is(err, readline.ErrInterrupt) {
			if err := s.quit(); err != nil {
				return s.finish(err)
			}
			continue
		}
		if err != nil {
			return s.finish(err)
		}

		cmd := parseCommand(input)
		s.log.Debug("menu option", zap.String("input", input))

		switch cmd {
		case cmdList:
			s.list()
		case cmdFind:
			err = s.find()
		case cmdSearch:
			err = s.search()
		case cmdAdd:
			err = s.add()
		case cmdDelete:
			err = s.delete()
		case cmdWrite:
			s.write()
		case cmdQuit:
			err = s.quit()
		default:
			s.say(tui.Notice(fmt.Sprintf("Invalid option %q.", strings.TrimSpace(input))))
		}
		if errors.Is(err, readline.ErrInterrupt) {
			s.say(tui.Notice("Cancelled."))
			continue
		}
		if err != nil {
			return s.finish(err)
		}

		if err := s.pause(); err != nil && !errors.Is(err, readline.ErrInterrupt) {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		if s.svc.Dirty() && !errors.Is(err, errQuit) {
			s.log.Warn("unsaved changes discarded", zap.String("catalog", s.svc.Location()))
		}
		s.say("Goodbye.\n")
		return nil
	}
	return err
}

func (s *Shell) list() {
	s.say(tui.RenderProducts(s.svc.Products(), s.opts.ListFormat))
}

func (s *Shell) find() error {
	id, ok, err := s.askID("Product ID: ")
	if err != nil || !ok {
		return err
	}
	p, found := s.svc.Find(id)
	if !found {
		s.say(tui.Notice(fmt.Sprintf("No product with id %d.", id)))
		return nil
	}
	s.say(tui.RenderProduct(p))
	return nil
}

func (s *Shell) search() error {
	text, err := s.ask("Name contains: ")
	if err != nil {
		return err
	}
	found := s.svc.Search(domain.NameContains(strings.TrimSpace(text)))
	s.say(tui.RenderProducts(found.All(), s.opts.ListFormat))
	return nil
}

func (s *Shell) add() error {
	prompts := []string{
		"Product ID: ",
		"Name: ",
		"Type (AL, DL, FRL): ",
		"Quantity: ",
		"Price: ",
	}
	fields := make([]string, len(prompts))
	for i, prompt := range prompts {
		v, err := s.ask(prompt)
		if err != nil {
			return err
		}
		fields[i] = strings.TrimSpace(v)
	}
	for _, f := range fields {
		if f == "" {
			s.say(tui.Notice("All fields are required."))
			return nil
		}
	}

	p, err := s.svc.AddFields(fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		s.say(tui.Error(err))
		return nil
	}
	s.say(tui.Success(fmt.Sprintf("Product %d added.", p.ID())))
	return nil
}

func (s *Shell) delete() error {
	id, ok, err := s.askID("Product ID to delete: ")
	if err != nil || !ok {
		return err
	}
	if err := s.svc.Delete(id); err != nil {
		s.say(tui.Error(err))
		return nil
	}
	s.say(tui.Success(fmt.Sprintf("Product %d deleted.", id)))
	return nil
}

func (s *Shell) write() {
	if err := s.svc.Save(); err != nil {
		s.say(tui.Error(err))
		return
	}
	s.say(tui.Success(fmt.Sprintf("Catalog saved to %s (%d products).", s.svc.Location(), s.svc.Len())))
}

func (s *Shell) quit() error {
	if s.svc.Dirty() {
		answer, err := s.ask("Unsaved changes. Quit anyway? [y/N] ")
		if errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			return nil
		}
	}
	return errQuit
}

func (s *Shell) pause() error {
	_, err := s.ask("Press ENTER to continue...")
	return err
}

// askID reads a product id. ok is false when the input was not a number;
// the problem has already been reported.
func (s *Shell) askID(prompt string) (id int, ok bool, err error) {
	text, err := s.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(strings.TrimSpace(text))
	if convErr != nil {
		s.say(tui.Error(fmt.Errorf("invalid id %q", strings.TrimSpace(text))))
		return 0, false, nil
	}
	return id, true, nil
}

func (s *Shell) ask(prompt string) (string, error) {
	s.in.SetPrompt(strings.Repeat(" ", s.opts.Indent) + prompt)
	return s.in.Readline()
}

func (s *Shell) say(text string) {
	fmt.Fprint(s.out, tui.Indent(text, s.opts.Indent))
}
