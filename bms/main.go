// Command bms is the boat management system of the marina.
//
//	bms <file>                  interactive session on the boats file
//	bms <subcommand> <file> ... one-shot commands, see 'bms help'
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/marina/cmd"
)

func main() {
	cmd.LoadEnv()
	cmd.Complete(path.Base(os.Args[0]))
	os.Exit(int(cmd.Run(context.Background(), flag.CommandLine, os.Args[1:], os.Stdin, os.Stdout)))
}
