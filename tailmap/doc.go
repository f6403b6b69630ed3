// Package tailmap implements the tail-sum letter transform and its
// reconstruction engines.
//
// Forward direction:
//
//	For a value sequence x_0..x_{n-1} (each in 1..26), the tail sum at
//	position i is T_i = x_i + x_{i+1} + … + x_{n-1}. Each T_i passes
//	through a variant-specific scalar reducer, then through the circular
//	shift f(r) = ((r+6-1) mod 26) + 1 that lands in 1..26 (a zero residue
//	normalizes to 26). The outputs keep input order.
//
// Variants:
//
//   - Linear   — the reducer is the identity; the constraint stays linear
//     modulo 26, so inversion has a closed form (see Invert).
//   - DigitSum — the reducer is the decimal digit sum of T_i; the
//     constraint is non-linear, so inversion enumerates candidates by
//     backtracking (see Search).
//
// Reconstruction exploits the recurrence T_i = x_i + T_{i+1}: once T_{i+1}
// is fixed, T_i lies in the 26-integer window [T_{i+1}+1, T_{i+1}+26],
// which bounds every backward step to at most 26 candidates.
//
// All functions are pure, deterministic, single-threaded and side-effect
// free; errors are reported through the package sentinels in types.go.
//
// Complexity:
//
//	Forward — O(n).
//	Invert  — O(n) (one residue solve per position).
//	Search  — O(26^n) worst case, tightly pruned by the window+constraint
//	          filter; tractable for word lengths up to ~10.
package tailmap
