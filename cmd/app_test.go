package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// run runs bms with a fresh set of global flags.
func run(t *testing.T, input string, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var out bytes.Buffer
	fs := flag.NewFlagSet("bms", flag.ContinueOnError)
	status := Run(context.Background(), fs, args, strings.NewReader(input), &out)
	return status, out.String()
}

func TestRun_Session(t *testing.T) {
	file := writeBoats(t, aliceAndBob)

	status, out := run(t, "m\nx\n", file)

	require.Equal(t, subcommands.ExitSuccess, status)
	require.Contains(t, out, "Welcome to the Boat Management System")
	require.Equal(t, "Alice,20,slip,12,400.00\nbob,30,land,B,620.00\n", readBoats(t, file))
}

func TestRun_NoArguments(t *testing.T) {
	status, out := run(t, "")

	require.Equal(t, subcommands.ExitUsageError, status)
	require.Empty(t, out)
}

func TestRun_MissingFile(t *testing.T) {
	status, _ := run(t, "x\n", filepath.Join(t.TempDir(), "boats.csv"))

	require.Equal(t, subcommands.ExitFailure, status)
}

func TestRun_Subcommand(t *testing.T) {
	file := writeBoats(t, aliceAndBob)

	status, out := run(t, "", "remove", file, "bob")

	require.Equal(t, subcommands.ExitSuccess, status)
	require.Empty(t, out, "subcommands do not run a session")
	require.Equal(t, "Alice,20,slip,12,150.00\n", readBoats(t, file))
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"v", "plain", "rates", "color"} {
		require.NotNil(t, flag.CommandLine.Lookup(name), "missing global flag -%s", name)
	}
}
