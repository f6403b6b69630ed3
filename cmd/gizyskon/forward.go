package main

import (
	"fmt"

	"github.com/matthewdeanmartin/gizyskon/tailmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// forwardCmd applies the forward transform to a word and prints the image.
var forwardCmd = &cobra.Command{
	Use:   "forward WORD",
	Short: "Forward-map a word and print the resulting word",
	Long: `Applies the selected variant's forward transform to WORD
(uppercase A..Z) and prints the resulting word. Useful for checking
claimed example words:

  gizyskon forward GIZSKYON`,
	Args: cobra.ExactArgs(1),
	RunE: runForward,
}

func runForward(cmd *cobra.Command, args []string) error {
	v, err := tailmap.ParseVariant(variantName)
	if err != nil {
		return fmt.Errorf("%w: %q", err, variantName)
	}
	word := args[0]
	logger.Debug("forward mapping",
		zap.String("word", word),
		zap.Stringer("variant", v))

	mapped, err := tailmap.ForwardWord(word, v)
	if err != nil {
		return err
	}
	fmt.Printf("%s maps to %s\n", word, mapped)

	return nil
}
