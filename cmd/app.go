// Package cmd implements the CLI application to manage the marina boats.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/marina"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

const (
	EnvRates = "MARINA_RATES"
	EnvStyle = "MARINA_STYLE"
)

// Commands are the bms subcommands.
var Commands = []subcommands.Command{
	&sessionCmd{},
	&inventoryCmd{},
	&addCmd{},
	&removeCmd{},
	&payCmd{},
	&monthCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&sessionCmd{}, "")
	for _, cmd := range Commands[1:] {
		c.Register(cmd, "boats")
	}
}

// Run parses 'args' with the global flags 'fs' and runs the selected command.
//
// A single argument that is not a command is a boats file: 'bms <file>' runs
// an interactive session on it, reading 'in' and writing 'out'.
func Run(ctx context.Context, fs *flag.FlagSet, args []string, in io.Reader, out io.Writer) subcommands.ExitStatus {
	commander := subcommands.NewCommander(fs, fs.Name())
	Register(commander)
	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	if fs.NArg() == 1 && !IsCommand(fs.Arg(0)) {
		return RunSession(fs.Arg(0), in, out)
	}
	return commander.Execute(ctx)
}

// IsCommand reports whether 'name' is a subcommand, rather than a boats file.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose   = flag.Bool("v", false, "Print debug information.")
	Plain     = flag.Bool("plain", false, "Print the fixed width inventory instead of markdown.")
	ratesFile = flag.String("rates", "", "Path to a YAML file of monthly rates per foot. Defaults to $"+EnvRates+".")
	color     = flag.String("color", "", "Markdown style: auto, dark, light or notty. Defaults to $"+EnvStyle+" or auto.")
)

// LoadEnv loads the .env file of the working directory into the environment, if any.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, cannot load .env: %v", err)
	}
}

// orEnv returns 'value' or the environment variable 'key' if 'value' is empty.
func orEnv(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}

// LoadRates returns the monthly rates, from the rates file if one is configured.
func LoadRates() (marina.Rates, error) {
	name := orEnv(*ratesFile, EnvRates)
	if name == "" {
		return marina.DefaultRates, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open rates file: %w", err)
	}
	defer f.Close()
	rates, err := marina.LoadRates(f)
	if err != nil {
		return nil, fmt.Errorf("invalid rates file %q: %w", name, err)
	}
	if *Verbose {
		log.Printf("using monthly rates from %q", name)
	}
	return rates, nil
}

// LoadRegistry loads the boats file. Invalid records are skipped with a warning.
func LoadRegistry(file string) (*marina.Registry, error) {
	reg, err := marina.LoadFile(file, func(e *marina.RecordError) {
		log.Printf("warning, skipping %v", e)
	})
	if err != nil {
		return nil, err
	}
	if *Verbose {
		log.Printf("loaded %d boats from %q", reg.Len(), file)
	}
	return reg, nil
}

// SaveRegistry writes back the boats file.
func SaveRegistry(file string, reg *marina.Registry) error {
	if err := marina.SaveFile(file, reg); err != nil {
		return err
	}
	if *Verbose {
		log.Printf("saved %d boats to %q", reg.Len(), file)
	}
	return nil
}

// printMarkdown renders markdown for the terminal. It falls back to the raw markdown.
func printMarkdown(w io.Writer, md string) {
	opt := glamour.WithAutoStyle()
	if s := orEnv(*color, EnvStyle); s != "" && s != "auto" {
		opt = glamour.WithStandardStyle(s)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
