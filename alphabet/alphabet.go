package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of recognized letters ('A'..'Z').
const Size = 26

var (
	// ErrInvalidSymbol indicates a character outside the 26 recognized letters.
	ErrInvalidSymbol = errors.New("alphabet: symbol outside 'A'..'Z'")

	// ErrValueOutOfRange indicates an integer value outside [1,26].
	ErrValueOutOfRange = errors.New("alphabet: value outside 1..26")
)

// LetterValue maps an uppercase letter to its positional value in [1,26].
//
// Errors:
//   - ErrInvalidSymbol if r is not one of 'A'..'Z'.
//
// Complexity: O(1).
func LetterValue(r rune) (int, error) {
	if r < 'A' || r > 'Z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}

	return int(r-'A') + 1, nil
}

// ValueLetter maps a positional value in [1,26] back to its letter.
//
// Errors:
//   - ErrValueOutOfRange if v is not in [1,26].
//
// Complexity: O(1).
func ValueLetter(v int) (rune, error) {
	if v < 1 || v > Size {
		return 0, fmt.Errorf("%w: %d", ErrValueOutOfRange, v)
	}

	return rune('A' + v - 1), nil
}

// WordValues converts a word into its value sequence, left to right.
// The empty word yields an empty (non-nil) sequence.
//
// Errors:
//   - ErrInvalidSymbol on the first character outside 'A'..'Z'.
//
// Complexity: O(n) time, O(n) space for n = len(word).
func WordValues(word string) ([]int, error) {
	values := make([]int, 0, len(word))
	for _, r := range word {
		v, err := LetterValue(r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// ValuesWord converts a value sequence back into a word.
// Inverse of WordValues over the valid domain.
//
// Errors:
//   - ErrValueOutOfRange on the first value outside [1,26].
//
// Complexity: O(n) time, O(n) space for n = len(values).
func ValuesWord(values []int) (string, error) {
	var b strings.Builder
	b.Grow(len(values))
	for _, v := range values {
		r, err := ValueLetter(v)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}
