package ecfuzz

import (
	fuzz "github.com/google/gofuzz"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

// maxScalarLen caps derived scalars. Multiplying by very wide scalars only
// makes the fuzzer slow.
const maxScalarLen = 128

type seed struct {
	Curve  uint8
	K1, K2 [66]byte
	Scalar []byte
}

// Derive turns raw fuzzer bytes into an input whose points lie on the
// chosen curve. The points are k1*G and k2*G, computed by the first backend
// that can; when none can, the generator itself is used.
func Derive(data []byte, backends []Backend) *Input {
	var s seed
	fuzz.NewFromGoFuzz(data).NilChance(0).NumElements(0, maxScalarLen).Fuzz(&s)

	ids := curves.IDs()
	info, _ := curves.Lookup(ids[int(s.Curve)%len(ids)])

	in := &Input{
		CurveID:    info.ID,
		CoordSize:  info.Size,
		Scalar:     s.Scalar,
		ScalarSize: len(s.Scalar),
	}

	gx, gy, ok := curves.Generator(info.ID)
	if !ok {
		zero := make([]byte, info.Size)
		in.CoordX, in.CoordY, in.Coord2X, in.Coord2Y = zero, zero, zero, zero
		return in
	}
	if gy == nil {
		gy = make([]byte, info.Size)
	}

	in.CoordX, in.CoordY = baseMult(info, gx, gy, s.K1[:info.Size], backends)
	in.Coord2X, in.Coord2Y = baseMult(info, gx, gy, s.K2[:info.Size], backends)
	return in
}

func baseMult(info curves.Info, gx, gy, k []byte, backends []Backend) ([]byte, []byte) {
	in := &Input{
		CurveID:    info.ID,
		CoordX:     gx,
		CoordY:     gy,
		CoordSize:  info.Size,
		Scalar:     k,
		ScalarSize: len(k),
	}
	for _, b := range backends {
		out := b.Process(in)
		if out.Error != types.ErrorNone {
			continue
		}
		if x, y, ok := decodePoint(info, out.Point(0)); ok {
			return x, y
		}
	}
	return gx, gy
}

// decodePoint splits a canonical encoding back into coordinates. Infinity
// does not decode.
func decodePoint(info curves.Info, enc []byte) ([]byte, []byte, bool) {
	if info.XOnly {
		if len(enc) != info.Size {
			return nil, nil, false
		}
		return clone(enc), make([]byte, info.Size), true
	}
	if len(enc) != 1+2*info.Size || enc[0] != 0x04 {
		return nil, nil, false
	}
	return clone(enc[1 : 1+info.Size]), clone(enc[1+info.Size:]), true
}
