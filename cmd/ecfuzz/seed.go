package main

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	ecfuzz "github.com/athanorlabs/go-ecfuzz"
	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

// unassignedCurveID is not in the TLS registry; every backend must decline
// it.
const unassignedCurveID = 9999

var seedCommand = &cli.Command{
	Name:      "seed",
	Usage:     "write a seed corpus of edge-case inputs for every known curve",
	ArgsUsage: "<directory>",
	Action:    seed,
}

type namedInput struct {
	name string
	in   *types.Input
}

func seed(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected one output directory", 2)
	}
	dir := c.Args().First()

	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var inputs []namedInput
	for _, info := range curves.All() {
		inputs = append(inputs, seedsFor(info)...)
	}
	inputs = append(inputs, namedInput{
		name: "unassigned",
		in:   &types.Input{CurveID: unassignedCurveID},
	})

	for _, s := range inputs {
		b, err := ecfuzz.Serialize(s.in)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		path := filepath.Join(dir, s.name+".bin")
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return err
		}
		logger.Debug("wrote seed", zap.String("file", path), zap.Int("len", len(b)))
	}
	logger.Info("seed corpus written", zap.String("dir", dir), zap.Int("inputs", len(inputs)))
	return nil
}

// seedsFor returns generator based inputs: multiplication by 0, 1, 2 and
// n-1, and the sums G+G and G+(-G).
func seedsFor(info curves.Info) []namedInput {
	gx, gy, ok := curves.Generator(info.ID)
	if !ok {
		return nil
	}
	n, _ := curves.Order(info.ID)

	mul := func(name string, k *big.Int) namedInput {
		kb := k.Bytes()
		return namedInput{
			name: info.Name + "-mul-" + name,
			in: &types.Input{
				CurveID:    info.ID,
				CoordX:     gx,
				CoordY:     gy,
				CoordSize:  info.Size,
				Scalar:     kb,
				ScalarSize: len(kb),
			},
		}
	}
	seeds := []namedInput{
		mul("zero", big.NewInt(0)),
		mul("one", big.NewInt(1)),
		mul("two", big.NewInt(2)),
		mul("order-minus-one", new(big.Int).Sub(n, big.NewInt(1))),
		mul("order", n),
	}
	if info.XOnly {
		return seeds
	}

	params, _ := curves.Params(info.ID)
	negY := new(big.Int).Sub(params.P, params.Gy).FillBytes(make([]byte, info.Size))
	add := func(name string, x2, y2 []byte) namedInput {
		return namedInput{
			name: info.Name + "-add-" + name,
			in: &types.Input{
				CurveID:   info.ID,
				CoordX:    gx,
				CoordY:    gy,
				Coord2X:   x2,
				Coord2Y:   y2,
				CoordSize: info.Size,
			},
		}
	}
	return append(seeds,
		add("double", gx, gy),
		add("inverse", gx, negY),
	)
}
