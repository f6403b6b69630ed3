package tailmap_test

import (
	"fmt"

	"github.com/matthewdeanmartin/gizyskon/tailmap"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleForwardWord
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Forward-map the single letter "A" (value 1) under the linear reducer.
//	The only tail sum is 1, and ((1+6-1) mod 26)+1 = 7 → "G".
//
// ExampleForwardWord demonstrates the word-level forward transform.
func ExampleForwardWord() {
	word, err := tailmap.ForwardWord("A", tailmap.Linear)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(word)
	// Output:
	// G
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleInvertWord
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Reconstruct the word whose linear forward image is "G".
//	Exactly one exists: "A".
//
// ExampleInvertWord demonstrates the closed-form reconstruction.
func ExampleInvertWord() {
	word, err := tailmap.InvertWord("G")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(word)
	// Output:
	// A
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSearch
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate every sequence whose digit-sum forward image is [7].
//	A single letter t qualifies iff digitSum(t) = 1, so t ∈ {1, 10}.
//
// ExampleSearch demonstrates full enumeration, not first-match search.
func ExampleSearch() {
	sols, err := tailmap.Search([]int{7})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sols)
	// Output:
	// [[1] [10]]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleReconstruct
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Dispatch the same target to both variants and compare outcomes:
//	the linear closed form pins one sequence, the digit-sum search
//	enumerates two.
//
// ExampleReconstruct demonstrates the uniform dispatcher result.
func ExampleReconstruct() {
	linear, err := tailmap.Reconstruct([]int{7}, tailmap.Linear)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	digit, err := tailmap.Reconstruct([]int{7}, tailmap.DigitSum)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("linear: unique=%v solutions=%v\n", linear.Unique, linear.Solutions)
	fmt.Printf("digitsum: unique=%v solutions=%v\n", digit.Unique, digit.Solutions)
	// Output:
	// linear: unique=true solutions=[[1]]
	// digitsum: unique=false solutions=[[1] [10]]
}
