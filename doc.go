// Package gizyskon solves a letter-substitution puzzle built on suffix
// sums: map A=1..Z=26, take each position's tail sum, shift it +6
// circularly in 1..26 space, and read the result back as letters — then,
// the interesting direction, reconstruct an original word from a target
// output word.
//
// What's inside:
//
//	alphabet/ — the 26-letter ⇄ 1..26 codec (words ⇄ value sequences)
//	tailmap/  — the forward transform plus both reconstruction engines:
//	            • Linear reducer → closed-form, deterministic inversion
//	            • DigitSum reducer → exhaustive backtracking enumeration
//	cmd/      — the gizyskon CLI: forward-map a word, or reconstruct
//	            the word(s) behind a target
//
// Why two engines?
//
//   - The linear constraint is invertible by residue arithmetic mod 26:
//     every target pins exactly one tail sum per position, O(1) each.
//   - The digit-sum constraint is many-to-one, so reconstruction walks a
//     chain of 26-wide candidate windows by depth-first search and
//     reports every consistent word — all solutions, never a "best" one.
//
// Everything is pure, deterministic and single-threaded; the search space
// is bounded by construction (branching ≤ 26, depth = word length).
//
//	go get github.com/matthewdeanmartin/gizyskon
package gizyskon
