package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"fsexplorer/internal/explorer"

	"github.com/rs/zerolog/log"
)

var ErrExit = errors.New("exit")

// Recorder is told about every directory the shell enters.
type Recorder interface {
	AddVisited(path string) error
}

type nopRecorder struct{}

func (nopRecorder) AddVisited(string) error { return nil }

type Shell struct {
	in       *bufio.Reader
	Out      io.Writer
	Err      io.Writer
	explorer *explorer.Explorer
	parser   Parser
	history  Recorder
}

type Option func(*Shell)

func WithRecorder(r Recorder) Option {
	return func(s *Shell) {
		if r != nil {
			s.history = r
		}
	}
}

func WithParser(p Parser) Option {
	return func(s *Shell) {
		s.parser = p
	}
}

func New(reader io.Reader, out, errw io.Writer, e *explorer.Explorer, opts ...Option) *Shell {
	s := &Shell{
		in:       bufio.NewReader(reader),
		Out:      out,
		Err:      errw,
		explorer: e,
		parser:   FieldsParser{},
		history:  nopRecorder{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Shell) prompt() string {
	return s.explorer.Cwd() + " > "
}

// Run reads and executes lines until exit or end of input.
func (s *Shell) Run() error {
	for {
		s.explorer.Recover()
		fmt.Fprint(s.Out, s.prompt())

		line, err := s.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}

		eof := err == io.EOF
		if eof && line == "" {
			return nil
		}

		if execErr := s.Execute(strings.TrimRight(line, "\r\n")); errors.Is(execErr, ErrExit) {
			return nil
		}

		if eof {
			return nil
		}
	}
}

// Execute runs one input line. It returns ErrExit for the exit command and
// nil otherwise; every other failure is reported to the user.
func (s *Shell) Execute(line string) error {
	tokens := s.parser.Parse(line)
	if len(tokens) == 0 {
		return nil
	}

	cmd := ParseCommand(tokens)
	if usage, missing := cmd.usage(); missing {
		fmt.Fprintln(s.Out, usage)
		return nil
	}

	log.Debug().Str("command", cmd.Name).Strs("args", cmd.Args).Msg("dispatching")

	switch cmd.Kind {
	case CmdList:
		s.list(cmd.Arg(0, "."))
	case CmdChangeDir:
		s.changeDir(cmd.Args[0])
	case CmdSearch:
		s.search(cmd.Args[0])
	case CmdCreate:
		s.create(cmd.Args[0])
	case CmdDelete:
		s.delete(cmd.Args[0])
	case CmdRename:
		s.rename(cmd.Args[0], cmd.Args[1])
	case CmdMove:
		s.move(cmd.Args[0], cmd.Args[1])
	case CmdPermissions:
		s.permissions(cmd.Args[0])
	case CmdHelp:
		writeHelp(s.Out)
	case CmdExit:
		return ErrExit
	default:
		fmt.Fprintln(s.Out, "Unknown command. Type 'help' for a list of commands.")
	}

	return nil
}
