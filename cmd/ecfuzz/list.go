package main

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

var listCommand = &cli.Command{
	Name:   "list",
	Usage:  "show which curves each selected backend supports",
	Action: list,
}

func list(c *cli.Context) error {
	backends, err := selectedBackends(c)
	if err != nil {
		return cli.Exit(err, 2)
	}

	header := []string{"ID", "CURVE"}
	for _, b := range backends {
		header = append(header, b.Name())
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	for _, info := range curves.All() {
		row := []string{strconv.Itoa(int(info.ID)), info.Name}
		for _, b := range backends {
			if supports(b, info) {
				row = append(row, "x")
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// supports asks b for the generator times one. Only curve support is
// being asked about, so anything but ErrorUnsupported counts.
func supports(b types.Backend, info curves.Info) bool {
	gx, gy, ok := curves.Generator(info.ID)
	if !ok {
		return b.Process(&types.Input{CurveID: info.ID}).Error != types.ErrorUnsupported
	}
	return b.Process(&types.Input{
		CurveID:    info.ID,
		CoordX:     gx,
		CoordY:     gy,
		CoordSize:  info.Size,
		Scalar:     []byte{1},
		ScalarSize: 1,
	}).Error != types.ErrorUnsupported
}
