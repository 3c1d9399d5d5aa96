package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

// Session is an interactive session on the marina registry.
type Session struct {
	Registry *marina.Registry
	Rates    marina.Rates
	Plain    bool // Plain prints the fixed width inventory.

	in  *bufio.Reader
	out io.Writer
}

// NewSession returns a session reading commands from 'in' and writing to 'out'.
func NewSession(reg *marina.Registry, rates marina.Rates, in io.Reader, out io.Writer) *Session {
	return &Session{Registry: reg, Rates: rates, in: bufio.NewReader(in), out: out}
}

// Run reads and executes commands until exit, or the end of the input.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "Welcome to the Boat Management System\n")
	fmt.Fprintf(s.out, "-------------------------------------\n\n")

	for {
		fmt.Fprint(s.out, "(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : ")
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			line = "x"
		} else if err != nil {
			return err
		}

		choice := unicode.ToLower([]rune(line)[0])
		switch choice {
		case 'i':
			s.inventory()
		case 'a':
			if err := s.add(); err != nil {
				return err
			}
		case 'r':
			if err := s.remove(); err != nil {
				return err
			}
		case 'p':
			if err := s.payment(); err != nil {
				return err
			}
		case 'm':
			s.Registry.ApplyMonthlyCharges(s.Rates)
			fmt.Fprintln(s.out)
		case 'x':
			fmt.Fprintf(s.out, "\nExiting the Boat Management System\n")
			return nil
		default:
			fmt.Fprintf(s.out, "Invalid option %c\n\n", unicode.ToUpper(choice))
		}
	}
}

// readLine returns the next non blank line, without leading spaces.
func (s *Session) readLine() (string, error) {
	for {
		line, err := s.in.ReadString('\n')
		line = strings.TrimRight(strings.TrimLeftFunc(line, unicode.IsSpace), "\r\n")
		if line != "" {
			return line, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// prompt asks for a value. The end of the input is an error.
func (s *Session) prompt(question string) (string, error) {
	fmt.Fprintf(s.out, "%-57s: ", question)
	line, err := s.readLine()
	if errors.Is(err, io.EOF) {
		return "", io.ErrUnexpectedEOF
	}
	return line, err
}

func (s *Session) inventory() {
	inv := renderer.NewInventory(s.Registry, s.Rates)
	if s.Plain {
		fmt.Fprint(s.out, renderer.RenderPlainInventory(inv))
		return
	}
	printMarkdown(s.out, renderer.RenderInventory(inv))
}

func (s *Session) add() error {
	record, err := s.prompt("Please enter the boat data in CSV format")
	if err != nil {
		return err
	}
	b, err := marina.ParseBoat(record)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n\n", capitalize((&marina.RecordError{Record: record, Err: err}).Error()))
		return nil
	}
	if err := s.Registry.Insert(b); err != nil {
		fmt.Fprintf(s.out, "%s.\n", capitalize(err.Error()))
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *Session) remove() error {
	name, err := s.prompt("Please enter the boat name")
	if err != nil {
		return err
	}
	if err := s.Registry.Remove(name); err != nil {
		fmt.Fprintf(s.out, "%s\n\n", capitalize(err.Error()))
	}
	return nil
}

func (s *Session) payment() error {
	name, err := s.prompt("Please enter the boat name")
	if err != nil {
		return err
	}
	if _, ok := s.Registry.Find(name); !ok {
		fmt.Fprintf(s.out, "%s\n\n", capitalize(marina.ErrNotFound.Error()))
		return nil
	}
	input, err := s.prompt("Please enter the amount to be paid")
	if err != nil {
		return err
	}
	amount, err := marina.ParseMoney(input)
	if err != nil {
		fmt.Fprintf(s.out, "%s\n\n", capitalize(err.Error()))
		return nil
	}
	if err := s.Registry.ApplyPayment(name, amount); err != nil {
		fmt.Fprintf(s.out, "%s\n\n", capitalize(err.Error()))
	}
	return nil
}

// capitalize the first letter of error messages printed as sentences.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// RunSession runs an interactive session on boats file 'file', and saves it on exit.
func RunSession(file string, in io.Reader, out io.Writer) subcommands.ExitStatus {
	reg, err := LoadRegistry(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rates, err := LoadRates()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := NewSession(reg, rates, in, out)
	s.Plain = *Plain
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveRegistry(file, reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "manage the boats interactively" }
func (*sessionCmd) Usage() string {
	return `bms session <file>

  Loads the boats file and runs the interactive menu:

    (I)nventory  list all boats and their balance
    (A)dd        add a boat, as a record "<name>,<length>,<placement>,<extra>,<owed>"
    (R)emove     remove a boat by name
    (P)ayment    pay an amount for a boat
    (M)onth      charge the monthly fees to every boat
    e(X)it       save the boats file and quit

  'bms <file>' is a shortcut for 'bms session <file>'.
`
}

func (*sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	return RunSession(f.Arg(0), os.Stdin, os.Stdout)
}
