package tailmap

import (
	"fmt"

	"github.com/matthewdeanmartin/gizyskon/alphabet"
)

// Invert — closed-form backward reconstruction for the Linear variant.
//
// Because the Linear constraint is y_i = shifted(T_i) and shifted is a
// bijection on residue classes mod 26, every target output pins T_i to a
// single residue class. Walking right to left:
//
//  1. T_{n-1} = x_{n-1} must lie in [1,26]; exactly one member of the
//     class (y_{n-1} − 6) mod 26 does (residue 0 normalizes to 26).
//  2. For i < n−1, T_i must lie in the window [T_{i+1}+1, T_{i+1}+26] —
//     26 consecutive integers, hence exactly one member of T_i's residue
//     class. Zero or multiple matches signal a malformed target and are
//     rejected rather than assumed impossible.
//  3. x_i = T_i − T_{i+1} must land in [1,26].
//
// The reconstruction is deterministic: it never yields more than one
// candidate, and re-applying Forward(…, Linear) to a successful result
// reproduces the target exactly.
//
// Errors:
//   - ErrEmptyInput if target is empty.
//   - ErrValueOutOfRange if a target output or a derived value leaves [1,26].
//   - ErrNoSolution if some position has no (or no single) consistent tail sum.
//
// Complexity: O(n) time, O(n) space.
func Invert(target []int) ([]int, error) {
	n := len(target)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateOutputs(target); err != nil {
		return nil, err
	}

	values := make([]int, n)

	// Last position: T_{n-1} equals x_{n-1}, the unique member of its
	// residue class inside [1,26].
	tNext := mod26(target[n-1] - shift)
	if tNext == 0 {
		tNext = alphabet.Size
	}
	if tNext < 1 || tNext > alphabet.Size {
		return nil, ErrNoSolution
	}
	values[n-1] = tNext

	for i := n - 2; i >= 0; i-- {
		res := mod26(target[i] - shift)
		low := tNext + 1
		high := tNext + alphabet.Size

		// First member of the residue class at or above low. The window
		// holds exactly 26 consecutive integers, so a second member would
		// sit 26 above the first; both checks guard against a malformed
		// window rather than a reachable state.
		r0 := res
		if r0 == 0 {
			r0 = alphabet.Size
		}
		t := low + mod26(r0-low)
		if t > high {
			return nil, ErrNoSolution
		}
		if t+alphabet.Size <= high {
			return nil, ErrNoSolution
		}

		x := t - tNext
		if x < 1 || x > alphabet.Size {
			return nil, fmt.Errorf("%w: derived value %d at position %d", ErrValueOutOfRange, x, i)
		}
		values[i] = x
		tNext = t
	}

	return values, nil
}

// InvertWord reconstructs the unique word whose Linear forward image is
// the target word. Convenience composition of the alphabet codec and Invert.
func InvertWord(word string) (string, error) {
	target, err := alphabet.WordValues(word)
	if err != nil {
		return "", err
	}
	values, err := Invert(target)
	if err != nil {
		return "", err
	}

	return alphabet.ValuesWord(values)
}

// validateOutputs rejects target sequences containing a value outside [1,26].
//
// Complexity: O(n).
func validateOutputs(target []int) error {
	for i, y := range target {
		if y < 1 || y > alphabet.Size {
			return fmt.Errorf("%w: target value %d at position %d", ErrValueOutOfRange, y, i)
		}
	}

	return nil
}
