// Command gizyskon maps words through the tail-sum letter transform and
// reconstructs original words from target outputs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	variantName string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "gizyskon",
	Short: "Tail-sum letter cipher: forward mapping and reconstruction",
	Long: `gizyskon maps words through the tail-sum letter transform
(A=1..Z=26; each position's suffix sum is shifted +6 circularly in
1..26 space) and reconstructs original words from target outputs.

Variants:
  linear   — the suffix sum feeds the shift directly; reconstruction
             is deterministic and yields at most one word
  digitsum — the decimal digit sum of the suffix sum feeds the shift;
             reconstruction enumerates every consistent word`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&variantName, "variant", "linear", "reducer variant: linear or digitsum")
	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(reconstructCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
