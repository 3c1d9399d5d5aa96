package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests for the program 'name'.
//
// It does nothing unless the program was invoked by the shell completion,
// in which case it prints the completion candidates and exits.
// Run 'COMP_INSTALL=1 bms' to install the completion in the user shell.
func Complete(name string) {
	completion(flag.CommandLine).Complete(name)
}

// completion describes the bms command line: global flags, subcommands and their flags.
func completion(global *flag.FlagSet) *complete.Command {
	boats := predict.Files("*")
	c := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
		Args:  boats,
	}
	for _, cmd := range Commands {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		c.Sub[cmd.Name()] = &complete.Command{Flags: flagPredictors(fs), Args: boats}
	}
	c.Flags["color"] = predict.Set{"auto", "dark", "light", "notty"}
	c.Flags["rates"] = predict.Files("*.yaml")
	return c
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
