package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marina"
	"github.com/etnz/marina/renderer"
	"github.com/google/subcommands"
)

// update loads the boats file, applies 'f' and saves the file back if 'f' succeeds.
func update(file string, f func(*marina.Registry, marina.Rates) error) subcommands.ExitStatus {
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
	if err := f(reg, rates); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveRegistry(file, reg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type inventoryCmd struct {
	plain bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list all boats, their placement and balance" }
func (*inventoryCmd) Usage() string {
	return `bms inventory [-plain] <file>

  Lists the boats of the boats file in name order, with their placement,
  monthly charge and the amount they owe.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print fixed width columns instead of markdown.")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	reg, err := LoadRegistry(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rates, err := LoadRates()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	inv := renderer.NewInventory(reg, rates)
	if c.plain || *Plain {
		fmt.Print(renderer.RenderPlainInventory(inv))
		return subcommands.ExitSuccess
	}
	printMarkdown(os.Stdout, renderer.RenderInventory(inv))
	return subcommands.ExitSuccess
}

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a boat to the boats file" }
func (*addCmd) Usage() string {
	return `bms add <file> <record>

  Adds a boat, given as a record "<name>,<length>,<placement>,<extra>,<owed>".
  Placement is one of slip, land, trailor, storage or no_place.

Usage Examples:
$ bms add boats.csv "Sea Cow,22,slip,14,0"
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	record := strings.Join(f.Args()[1:], " ")
	return update(f.Arg(0), func(reg *marina.Registry, _ marina.Rates) error {
		b, err := marina.ParseBoat(record)
		if err != nil {
			return &marina.RecordError{Record: record, Err: err}
		}
		return reg.Insert(b)
	})
}

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a boat from the boats file" }
func (*removeCmd) Usage() string {
	return `bms remove <file> <name>

  Removes the first boat with that name, ignoring case.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args()[1:], " ")
	return update(f.Arg(0), func(reg *marina.Registry, _ marina.Rates) error {
		return reg.Remove(name)
	})
}

type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "record a payment for a boat" }
func (*payCmd) Usage() string {
	return `bms pay <file> <name> <amount>

  Reduces the balance of the boat by amount. The payment is rejected if the
  amount is not positive or exceeds the amount owed.
`
}

func (*payCmd) SetFlags(f *flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 3 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	args := f.Args()
	name := strings.Join(args[1:len(args)-1], " ")
	amount, err := marina.ParseMoney(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return update(f.Arg(0), func(reg *marina.Registry, _ marina.Rates) error {
		err := reg.ApplyPayment(name, amount)
		var over *marina.OverpaymentError
		if errors.As(err, &over) {
			return fmt.Errorf("%s owes %s, cannot pay %s", over.Name, over.Owed, over.Amount)
		}
		return err
	})
}

type monthCmd struct{}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "charge the monthly fees to every boat" }
func (*monthCmd) Usage() string {
	return `bms month <file>

  Adds the monthly charge, the placement rate times the boat length, to the
  balance of every boat. Each invocation charges a new month.
`
}

func (*monthCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	var inv *renderer.Inventory
	status := update(f.Arg(0), func(reg *marina.Registry, rates marina.Rates) error {
		reg.ApplyMonthlyCharges(rates)
		inv = renderer.NewInventory(reg, rates)
		return nil
	})
	if status == subcommands.ExitSuccess {
		printMarkdown(os.Stdout, renderer.RenderCharges(inv))
	}
	return status
}
