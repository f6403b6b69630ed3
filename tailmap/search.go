package tailmap

import "github.com/matthewdeanmartin/gizyskon/alphabet"

// Search — backtracking enumeration for the DigitSum variant.
//
// The digit-sum reducer collapses many tail sums onto the same output, so
// no closed form exists; instead a depth-first search walks positions
// right to left. Each level scans the 26-integer window
// [T_{i+1}+1, T_{i+1}+26] for tail sums whose reduced, shifted image
// matches the target output, derives x_i = T_i − T_{i+1}, and recurses.
// The accumulator follows strict append/recurse/undo discipline, so every
// branch sees a clean prefix and the full solution set is enumerated —
// first-match shortcuts would lose solutions.
//
// Rationale (succinct):
//  1. The last position is seeded by a brute scan of [1,26]: T_{n-1} is
//     x_{n-1} itself, so all 26 letters are candidates.
//  2. A derived x_i outside [1,26] prunes that branch only; it is not an
//     error for the whole search (contrast with Invert).
//  3. Solutions are recorded in DFS discovery order (ascending tail sum at
//     every level), which keeps runs reproducible. The set is complete and
//     duplicate-free: two distinct branches fix different tail-sum chains
//     and therefore different value sequences.
//
// Complexity:
//   - Worst case O(26^n); the window+constraint filter prunes hard in
//     practice and keeps n ≤ ~10 tractable.
//   - Memory: O(n) search state plus the recorded solutions.

// searchEngine holds the DFS state for one enumeration run. A dedicated
// engine struct (instead of closures) keeps the hot-path state explicit
// and the backtracking discipline easy to audit.
type searchEngine struct {
	target []int   // target outputs, input order
	acc    []int   // chosen values, rightmost position first
	sols   [][]int // completed solutions, input order
}

// dfs extends the partial reconstruction at position i, given the already
// fixed tail sum tNext = T_{i+1}. On i < 0 the accumulator holds a full
// solution in reverse order.
func (e *searchEngine) dfs(i, tNext int) {
	if i < 0 {
		sol := make([]int, len(e.acc))
		for k, x := range e.acc {
			sol[len(e.acc)-1-k] = x
		}
		e.sols = append(e.sols, sol)

		return
	}

	y := e.target[i]
	low := tNext + 1
	high := tNext + alphabet.Size
	for t := low; t <= high; t++ {
		if shifted(digitSum(t)) != y {
			continue
		}
		x := t - tNext
		if x < 1 || x > alphabet.Size {
			continue // prune this branch, keep siblings
		}
		e.acc = append(e.acc, x)
		e.dfs(i-1, t)
		e.acc = e.acc[:len(e.acc)-1]
	}
}

// Search enumerates every value sequence whose DigitSum forward image
// equals target. An empty result is a valid outcome, not an error.
//
// Errors:
//   - ErrEmptyInput if target is empty.
//   - ErrValueOutOfRange if a target output leaves [1,26].
func Search(target []int) ([][]int, error) {
	n := len(target)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateOutputs(target); err != nil {
		return nil, err
	}

	e := searchEngine{
		target: target,
		acc:    make([]int, 0, n),
	}

	// Seed the last position: T_{n-1} = x_{n-1}, so scan the letter range.
	for t := 1; t <= alphabet.Size; t++ {
		if shifted(digitSum(t)) != target[n-1] {
			continue
		}
		e.acc = append(e.acc, t)
		e.dfs(n-2, t)
		e.acc = e.acc[:len(e.acc)-1]
	}

	return e.sols, nil
}

// SearchWords enumerates every word whose DigitSum forward image is the
// target word. Convenience composition of the alphabet codec and Search.
func SearchWords(word string) ([]string, error) {
	target, err := alphabet.WordValues(word)
	if err != nil {
		return nil, err
	}
	sols, err := Search(target)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(sols))
	for _, sol := range sols {
		w, werr := alphabet.ValuesWord(sol)
		if werr != nil {
			return nil, werr
		}
		words = append(words, w)
	}

	return words, nil
}
