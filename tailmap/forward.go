package tailmap

import (
	"fmt"

	"github.com/matthewdeanmartin/gizyskon/alphabet"
)

// shift is the circular offset added to every reduced tail sum.
const shift = 6

// mod26 returns the non-negative residue of n modulo 26.
func mod26(n int) int {
	n %= alphabet.Size
	if n < 0 {
		n += alphabet.Size
	}

	return n
}

// shifted maps a reduced tail sum into [1,26] via the circular +6 offset;
// a zero residue normalizes to 26, never 0.
func shifted(r int) int {
	return (r+shift-1)%alphabet.Size + 1
}

// digitSum returns the sum of the decimal digits of n (n ≥ 1).
func digitSum(n int) int {
	s := 0
	for n > 0 {
		s += n % 10
		n /= 10
	}

	return s
}

// reduce applies the variant's scalar reducer to a tail sum.
func (v Variant) reduce(tail int) int {
	if v == DigitSum {
		return digitSum(tail)
	}

	return tail
}

// Forward computes the output values of a value sequence under variant v.
//
// The sequence is walked right to left while a running tail sum
// accumulates; each position's output is shifted(v.reduce(T_i)), stored in
// input order. Pure function of its arguments.
//
// Errors:
//   - ErrEmptyInput if values is empty.
//   - ErrValueOutOfRange on the first value outside [1,26].
//
// Complexity: O(n) time, O(n) space.
func Forward(values []int, v Variant) ([]int, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]int, n)
	tail := 0
	for i := n - 1; i >= 0; i-- {
		x := values[i]
		if x < 1 || x > alphabet.Size {
			return nil, fmt.Errorf("%w: input value %d at position %d", ErrValueOutOfRange, x, i)
		}
		tail += x
		out[i] = shifted(v.reduce(tail))
	}

	return out, nil
}

// ForwardWord forward-maps a word and returns the resulting word.
// Convenience composition of the alphabet codec and Forward; this is the
// verification utility used to check claimed example words.
func ForwardWord(word string, v Variant) (string, error) {
	values, err := alphabet.WordValues(word)
	if err != nil {
		return "", err
	}
	out, err := Forward(values, v)
	if err != nil {
		return "", err
	}

	return alphabet.ValuesWord(out)
}
