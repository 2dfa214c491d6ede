package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	ecfuzz "github.com/athanorlabs/go-ecfuzz"
	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var (
	rawFlag = &cli.BoolFlag{
		Name:  "raw",
		Usage: "treat files as raw fuzzer data instead of serialized inputs",
	}
	parallelFlag = &cli.BoolFlag{
		Name:    "parallel",
		Usage:   "run backends concurrently",
		EnvVars: []string{"ECFUZZ_PARALLEL"},
	}
)

var replayCommand = &cli.Command{
	Name:      "replay",
	Usage:     "run every operation of each corpus file on the selected backends",
	ArgsUsage: "<file or directory>...",
	Flags: []cli.Flag{
		rawFlag,
		parallelFlag,
	},
	Action: replay,
}

type replayStats struct {
	inputs     int
	mismatches int
	failures   int
}

func replay(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("no corpus given", 2)
	}

	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	backends, err := selectedBackends(c)
	if err != nil {
		return cli.Exit(err, 2)
	}

	var stats replayStats
	for _, root := range c.Args().Slice() {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			return replayFile(c, logger, backends, path, &stats)
		})
		if err != nil {
			return err
		}
	}

	logger.Info("replay finished",
		zap.Int("inputs", stats.inputs),
		zap.Int("mismatches", stats.mismatches),
		zap.Int("failures", stats.failures),
	)
	if stats.mismatches > 0 || stats.failures > 0 {
		return cli.Exit(fmt.Sprintf("%d mismatches, %d unknown failures", stats.mismatches, stats.failures), 1)
	}
	return nil
}

func replayFile(c *cli.Context, logger *zap.Logger, backends []types.Backend, path string, stats *replayStats) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var in *types.Input
	if c.Bool(rawFlag.Name) {
		in = ecfuzz.Derive(data, backends)
	} else {
		in, err = ecfuzz.Deserialize(data)
		if err != nil {
			logger.Warn("skipping unreadable input", zap.String("file", path), zap.Error(err))
			return nil
		}
	}
	stats.inputs++

	log := logger.With(
		zap.String("file", path),
		zap.String("curve", curves.Name(in.CurveID)),
	)
	for _, op := range []ecfuzz.Operation{ecfuzz.OpProcess, ecfuzz.OpAdd} {
		results, err := run(c, op, in, backends)
		if err != nil {
			return err
		}
		for _, r := range results {
			log.Debug("backend output",
				zap.Stringer("op", op),
				zap.String("backend", r.Backend),
				zap.Stringer("error", r.Output.Error),
				zap.String("point", hex.EncodeToString(r.Output.Point(0))),
			)
		}

		report, err := ecfuzz.Compare(op, in, results)
		var mismatch *ecfuzz.MismatchError
		switch {
		case errors.As(err, &mismatch):
			stats.mismatches++
			log.Error("outputs differ",
				zap.Stringer("op", op),
				zap.String("a", mismatch.A),
				zap.String("b", mismatch.B),
				zap.String("out_a", hex.EncodeToString(mismatch.OutA)),
				zap.String("out_b", hex.EncodeToString(mismatch.OutB)),
			)
		case errors.Is(err, ecfuzz.ErrBackendFailure):
			stats.failures++
			log.Error("backend failure", zap.Stringer("op", op), zap.Strings("backends", report.Failed))
		case err != nil:
			return err
		default:
			log.Debug("outputs agree",
				zap.Stringer("op", op),
				zap.Strings("compared", report.Compared),
				zap.Strings("skipped", report.Skipped),
			)
		}
	}
	return nil
}

func run(c *cli.Context, op ecfuzz.Operation, in *types.Input, backends []types.Backend) ([]ecfuzz.Result, error) {
	if c.Bool(parallelFlag.Name) {
		return ecfuzz.RunParallel(c.Context, op, in, backends)
	}
	return ecfuzz.Run(op, in, backends), nil
}
