package ecfuzz

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-ecfuzz/curves"
	"github.com/athanorlabs/go-ecfuzz/types"
)

// ErrBackendFailure is wrapped by the error Compare returns when a backend
// reported ErrorUnknown.
var ErrBackendFailure = errors.New("backend reported an unknown failure")

// MismatchError reports two backends that both succeeded with different
// encodings.
type MismatchError struct {
	Op         Operation
	CurveID    uint16
	A, B       string
	OutA, OutB []byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch on %s: %s=%x %s=%x",
		e.Op, curves.Name(e.CurveID), e.A, e.OutA, e.B, e.OutB)
}

// Report sorts the backends of one run by how their output was used.
type Report struct {
	Op      Operation
	CurveID uint16
	// Compared backends returned ErrorNone.
	Compared []string
	// Skipped backends returned ErrorUnsupported.
	Skipped []string
	// Failed backends returned ErrorUnknown.
	Failed []string
}

// Compare checks that every backend reporting ErrorNone produced the same
// first point. Unsupported results are skipped. A mismatch is returned as a
// *MismatchError; otherwise an unknown failure is returned wrapping
// ErrBackendFailure.
func Compare(op Operation, in *Input, results []Result) (*Report, error) {
	report := &Report{Op: op, CurveID: in.CurveID}

	var ref *Result
	var mismatch *MismatchError
	for i := range results {
		r := &results[i]
		switch r.Output.Error {
		case types.ErrorNone:
			report.Compared = append(report.Compared, r.Backend)
		case types.ErrorUnsupported:
			report.Skipped = append(report.Skipped, r.Backend)
			continue
		default:
			report.Failed = append(report.Failed, r.Backend)
			continue
		}

		if ref == nil {
			ref = r
			continue
		}
		if mismatch == nil && !bytes.Equal(ref.Output.Point(0), r.Output.Point(0)) {
			mismatch = &MismatchError{
				Op:      op,
				CurveID: in.CurveID,
				A:       ref.Backend,
				B:       r.Backend,
				OutA:    ref.Output.Point(0),
				OutB:    r.Output.Point(0),
			}
		}
	}

	if mismatch != nil {
		return report, mismatch
	}
	if len(report.Failed) > 0 {
		return report, fmt.Errorf("%s on %s: %v: %w", op, curves.Name(in.CurveID), report.Failed, ErrBackendFailure)
	}
	return report, nil
}

// Check runs op on every backend and compares the results.
func Check(op Operation, in *Input, backends []Backend) (*Report, error) {
	return Compare(op, in, Run(op, in, backends))
}

// CheckStable runs op twice on b and fails if the outputs differ.
func CheckStable(op Operation, in *Input, b Backend) error {
	first, second := op.Apply(b, in), op.Apply(b, in)
	if *first != *second {
		return &MismatchError{
			Op:      op,
			CurveID: in.CurveID,
			A:       b.Name(),
			B:       b.Name(),
			OutA:    first.Point(0),
			OutB:    second.Point(0),
		}
	}
	return nil
}

// CheckCommutative fails if b gives different results for P1+P2 and
// P2+P1.
func CheckCommutative(in *Input, b Backend) error {
	ab, ba := b.Add(in), b.Add(Swap(in))
	if ab.Error != ba.Error {
		return fmt.Errorf("%s add on %s: %s for P1+P2, %s for P2+P1",
			b.Name(), curves.Name(in.CurveID), ab.Error, ba.Error)
	}
	if ab.Error == types.ErrorNone && !bytes.Equal(ab.Point(0), ba.Point(0)) {
		return &MismatchError{
			Op:      OpAdd,
			CurveID: in.CurveID,
			A:       b.Name(),
			B:       b.Name(),
			OutA:    ab.Point(0),
			OutB:    ba.Point(0),
		}
	}
	return nil
}
