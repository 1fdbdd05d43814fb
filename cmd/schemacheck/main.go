package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/schemacheck/internal/cli"
)

const (
	cmdName = "schemacheck"

	shortDesc = "Check JSON Schema fixtures."
	longDesc  = `Check example JSON documents against a JSON Schema (Draft 2020-12).

Every *.json file in the valid directory must conform to the schema, and every
*.json file in the invalid directory must not. Directories are not searched
recursively. Relative $ref entries in the schema resolve against the schema
file's directory.

The exit status is 0 when every fixture matches its expectation and 1
otherwise.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		// The report already accounts for failed fixtures.
		if !errors.Is(err, cli.ErrFixturesFailed) {
			fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		}

		os.Exit(cli.ExitCode(err))
	}
}
