package tailmap

import "errors"

// Variant selects the scalar reducer applied to each tail sum before the
// circular shift into 1..26.
type Variant int

const (
	// Linear feeds the tail sum directly into the shift.
	Linear Variant = iota

	// DigitSum first reduces the tail sum to its decimal digit sum.
	DigitSum
)

// String returns the canonical lowercase name used by flags and logs.
func (v Variant) String() string {
	switch v {
	case Linear:
		return "linear"
	case DigitSum:
		return "digitsum"
	default:
		return "unknown"
	}
}

// ParseVariant maps a flag value to a Variant.
//
// Errors:
//   - ErrUnknownVariant for anything but "linear" or "digitsum".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "digitsum":
		return DigitSum, nil
	default:
		return 0, ErrUnknownVariant
	}
}

var (
	// ErrEmptyInput indicates an empty value or target sequence (n ≥ 1 required).
	ErrEmptyInput = errors.New("tailmap: sequence must be non-empty")

	// ErrValueOutOfRange indicates an input or derived value outside [1,26].
	ErrValueOutOfRange = errors.New("tailmap: value outside 1..26")

	// ErrNoSolution indicates the closed-form inversion could not pin exactly
	// one candidate at some position (inconsistent or malformed target).
	ErrNoSolution = errors.New("tailmap: no unique reconstruction")

	// ErrUnknownVariant indicates a Variant outside the declared set.
	ErrUnknownVariant = errors.New("tailmap: unknown variant")
)

// Result holds the outcome of a reconstruction run.
type Result struct {
	// Solutions are the recovered value sequences, each in input order with
	// every value in [1,26]. Linear reconstruction yields exactly one entry;
	// DigitSum reconstruction yields zero or more.
	Solutions [][]int

	// Unique reports whether exactly one solution exists. For Linear it is
	// guaranteed by construction; for DigitSum it simply reflects the count.
	Unique bool
}
