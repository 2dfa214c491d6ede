package ecfuzz

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

type fakeBackend struct {
	name  string
	out   func(in *Input) *Output
	calls atomic.Int32
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Process(in *Input) *Output {
	f.calls.Add(1)
	return f.out(in)
}

func (f *fakeBackend) Add(in *Input) *Output {
	f.calls.Add(1)
	return f.out(in)
}

func constant(name string, code types.ErrorCode, point ...byte) *fakeBackend {
	return &fakeBackend{name: name, out: func(*Input) *Output {
		out := new(Output)
		if code != types.ErrorNone {
			out.SetError(code)
			return out
		}
		out.SetXOnly(0, len(point), point)
		return out
	}}
}

var testInput = &Input{CurveID: curves.Secp256r1}

func TestCompare_Agree(t *testing.T) {
	backends := []Backend{
		constant("a", types.ErrorNone, 1, 2),
		constant("b", types.ErrorUnsupported),
		constant("c", types.ErrorNone, 1, 2),
	}
	report, err := Check(OpProcess, testInput, backends)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, report.Compared)
	require.Equal(t, []string{"b"}, report.Skipped)
	require.Empty(t, report.Failed)
}

func TestCompare_Mismatch(t *testing.T) {
	backends := []Backend{
		constant("a", types.ErrorNone, 1, 2),
		constant("b", types.ErrorNone, 1, 2),
		constant("c", types.ErrorNone, 1, 3),
		constant("d", types.ErrorUnknown),
	}
	report, err := Check(OpAdd, testInput, backends)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "a", mismatch.A)
	require.Equal(t, "c", mismatch.B)
	require.Equal(t, []byte{1, 2}, mismatch.OutA)
	require.Equal(t, []byte{1, 3}, mismatch.OutB)
	require.Equal(t, OpAdd, mismatch.Op)
	require.Contains(t, err.Error(), "add mismatch on secp256r1")
	require.Equal(t, []string{"d"}, report.Failed)
}

func TestCompare_UnknownFailure(t *testing.T) {
	backends := []Backend{
		constant("a", types.ErrorNone, 7),
		constant("b", types.ErrorUnknown),
	}
	report, err := Check(OpProcess, testInput, backends)
	require.ErrorIs(t, err, ErrBackendFailure)
	require.Equal(t, []string{"b"}, report.Failed)
}

func TestCompare_NothingToCompare(t *testing.T) {
	report, err := Check(OpProcess, testInput, []Backend{
		constant("a", types.ErrorUnsupported),
		types.Disabled("b"),
	})
	require.NoError(t, err)
	require.Empty(t, report.Compared)
	require.Equal(t, []string{"a", "b"}, report.Skipped)

	_, err = Check(OpProcess, testInput, nil)
	require.NoError(t, err)
}

func TestCompare_InfinityVersusPoint(t *testing.T) {
	_, err := Check(OpProcess, testInput, []Backend{
		constant("a", types.ErrorNone, 0),
		constant("b", types.ErrorNone, 4, 0),
	})
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
}

func TestCheckStable(t *testing.T) {
	require.NoError(t, CheckStable(OpProcess, testInput, constant("a", types.ErrorNone, 3)))

	var n byte
	flaky := &fakeBackend{name: "flaky", out: func(*Input) *Output {
		n++
		out := new(Output)
		out.SetXOnly(0, 1, []byte{n})
		return out
	}}
	err := CheckStable(OpProcess, testInput, flaky)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "flaky", mismatch.A)
}

func TestCheckCommutative(t *testing.T) {
	in := &Input{CurveID: curves.Secp256r1, CoordX: []byte{1}, Coord2X: []byte{2}, CoordSize: 1}
	require.NoError(t, CheckCommutative(in, constant("a", types.ErrorNone, 5)))

	firstX := &fakeBackend{name: "first-x", out: func(in *Input) *Output {
		out := new(Output)
		out.SetXOnly(0, 1, in.X())
		return out
	}}
	require.Error(t, CheckCommutative(in, firstX))

	rejectsSecond := &fakeBackend{name: "rejects", out: func(in *Input) *Output {
		if in.X()[0] == 2 {
			return types.NewErrorOutput(types.ErrorUnsupported)
		}
		return types.NewErrorOutput(types.ErrorNone)
	}}
	require.ErrorContains(t, CheckCommutative(in, rejectsSecond), "NONE for P1+P2, UNSUPPORTED for P2+P1")
}

func TestRunParallel(t *testing.T) {
	backends := []Backend{
		constant("a", types.ErrorNone, 1),
		constant("b", types.ErrorUnsupported),
		constant("c", types.ErrorNone, 2),
	}
	results, err := RunParallel(context.Background(), OpProcess, testInput, backends)
	require.NoError(t, err)
	require.Equal(t, Run(OpProcess, testInput, backends), results)
}

func TestRunParallel_Canceled(t *testing.T) {
	b := constant("a", types.ErrorNone, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunParallel(ctx, OpProcess, testInput, []Backend{b})
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, b.calls.Load())
}
