package types

import "errors"

// Backend is one EC library adapted to the common input/output contract.
// Implementations hold no mutable state and are safe for concurrent use.
type Backend interface {
	// Name identifies the backend in reports and on the command line.
	Name() string
	// Process computes Scalar * (CoordX, CoordY).
	Process(in *Input) *Output
	// Add computes (CoordX, CoordY) + (Coord2X, Coord2Y).
	Add(in *Input) *Output
}

// ErrorCode classifies the result of a backend call.
type ErrorCode int

const (
	// ErrorNone means the output is valid and comparable.
	ErrorNone ErrorCode = iota
	// ErrorUnsupported means the backend declined on a documented
	// precondition. The backend is excluded from the comparison.
	ErrorUnsupported
	// ErrorUnknown is any other failure, and a likely bug.
	ErrorUnknown
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorNone:
		return "NONE"
	case ErrorUnsupported:
		return "UNSUPPORTED"
	case ErrorUnknown:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// Errors shared by backends before translation into an ErrorCode.
var (
	ErrUnsupportedCurve = errors.New("curve not supported by backend")
	ErrInvalidPoint     = errors.New("point rejected by backend")
	ErrScalarRange      = errors.New("scalar outside range accepted by backend")
)

type disabled struct {
	name string
}

// Disabled returns a backend that answers ErrorUnsupported to every call.
// Packages compiled out with their ecfuzz_no_<name> build tag return it so
// that the backend still shows up under its own name.
func Disabled(name string) Backend {
	return &disabled{name: name}
}

func (d *disabled) Name() string {
	return d.name
}

func (d *disabled) Process(*Input) *Output {
	return NewErrorOutput(ErrorUnsupported)
}

func (d *disabled) Add(*Input) *Output {
	return NewErrorOutput(ErrorUnsupported)
}
