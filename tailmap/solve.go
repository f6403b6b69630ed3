package tailmap

import "fmt"

// Reconstruct dispatches a target output sequence to the variant's
// reconstruction algorithm and wraps the outcome in a uniform Result.
//
//   - Linear routes to Invert: exactly one solution on success, and
//     ErrNoSolution surfaces as an error.
//   - DigitSum routes to Search: zero or more solutions, and an empty set
//     is reported through Result, not as an error.
//
// Errors:
//   - ErrUnknownVariant for a Variant outside the declared set.
//   - Everything Invert/Search may return for the chosen variant.
func Reconstruct(target []int, v Variant) (Result, error) {
	switch v {
	case Linear:
		values, err := Invert(target)
		if err != nil {
			return Result{}, err
		}

		return Result{Solutions: [][]int{values}, Unique: true}, nil

	case DigitSum:
		sols, err := Search(target)
		if err != nil {
			return Result{}, err
		}

		return Result{Solutions: sols, Unique: len(sols) == 1}, nil

	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}
