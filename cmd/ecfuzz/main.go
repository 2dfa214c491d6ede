// Command ecfuzz replays and generates corpora for the differential
// elliptic-curve harness.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/athanorlabs/go-ecfuzz/registry"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var (
	backendsFlag = &cli.StringSliceFlag{
		Name:    "backends",
		Aliases: []string{"b"},
		Usage:   "backends to run (default: all compiled in)",
		EnvVars: []string{"ECFUZZ_BACKENDS"},
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log every backend output",
		EnvVars: []string{"ECFUZZ_VERBOSE"},
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ecfuzz",
		Usage: "differential elliptic-curve arithmetic across Go libraries",
		Flags: []cli.Flag{
			backendsFlag,
			verboseFlag,
		},
		Commands: []*cli.Command{
			replayCommand,
			seedCommand,
			listCommand,
		},
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	if c.Bool(verboseFlag.Name) {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func selectedBackends(c *cli.Context) ([]types.Backend, error) {
	return registry.Select(c.StringSlice(backendsFlag.Name))
}
