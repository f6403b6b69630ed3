package main

import (
	"fmt"

	"github.com/matthewdeanmartin/gizyskon/alphabet"
	"github.com/matthewdeanmartin/gizyskon/tailmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// maxListed caps how many digit-sum solutions are printed in full;
// above this only the count is reported.
const maxListed = 5

// reconstructCmd recovers original words from a target word.
var reconstructCmd = &cobra.Command{
	Use:   "reconstruct WORD",
	Short: "Reconstruct the word(s) whose forward image is WORD",
	Long: `Recovers the original word(s) that forward-map to WORD under the
selected variant.

linear:   prints the unique reconstructed word, its value sequence, and
          the re-applied forward image (round-trip check), or reports
          that no unique solution exists.
digitsum: prints the number of consistent words and, when at most 5
          exist, each word with its value sequence. Zero solutions is a
          valid outcome, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runReconstruct,
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	v, err := tailmap.ParseVariant(variantName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, variantName)
	}
	target := args[0]
	targetVals, err := alphabet.WordValues(target)
	if err != nil {
		return err
	}
	logger.Debug("reconstructing",
		zap.String("target", target),
		zap.Stringer("variant", v),
		zap.Int("length", len(targetVals)))

	res, err := tailmap.Reconstruct(targetVals, v)
	if err != nil {
		return fmt.Errorf("no unique solution for %q: %w", target, err)
	}

	if v == tailmap.Linear {
		return printUnique(target, res.Solutions[0])
	}

	return printEnumeration(res.Solutions)
}

// printUnique reports the single linear reconstruction together with its
// re-verified forward image.
func printUnique(target string, values []int) error {
	word, err := alphabet.ValuesWord(values)
	if err != nil {
		return err
	}
	mapped, err := tailmap.ForwardWord(word, tailmap.Linear)
	if err != nil {
		return err
	}
	logger.Debug("round-trip check",
		zap.String("reconstructed", word),
		zap.Bool("matches", mapped == target))

	fmt.Printf("reconstructed: %s\n", word)
	fmt.Printf("values:        %v\n", values)
	fmt.Printf("maps back to:  %s\n", mapped)

	return nil
}

// printEnumeration reports the digit-sum solution count, listing the
// solutions themselves only while the set stays small.
func printEnumeration(sols [][]int) error {
	fmt.Printf("solutions: %d\n", len(sols))
	if len(sols) > maxListed {
		return nil
	}
	for _, sol := range sols {
		word, err := alphabet.ValuesWord(sol)
		if err != nil {
			return err
		}
		fmt.Printf("  %s %v\n", word, sol)
	}

	return nil
}
