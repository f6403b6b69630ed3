// Package alphabet provides the bidirectional codec between the 26
// uppercase Latin letters and their positional values 1..26.
//
// The mapping is a total bijection: 'A' ⇄ 1, 'B' ⇄ 2, … 'Z' ⇄ 26.
// Word-level helpers convert whole words to value sequences and back;
// the two directions are mutual inverses over the valid domain, so
// ValuesWord(WordValues(w)) == w for every recognized word w.
//
// All functions are pure and allocation-light; invalid inputs are
// reported through the package sentinels ErrInvalidSymbol and
// ErrValueOutOfRange, never by panic.
package alphabet
