// Command gausslegendre integrates one-dimensional functions with
// Gauss-Legendre quadrature.
//
// Run without arguments, it integrates the sample function
// x^6 - x^2 sin(2x) over [1, 3] with the 7-point rule and prints the result.
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
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd runs the sample integral
var rootCmd = &cobra.Command{
	Use:   "gausslegendre",
	Short: "Gauss-Legendre quadrature of one-dimensional functions",
	Long: `gausslegendre approximates definite integrals with Gauss-Legendre quadrature.

The nodes of the rule are the roots of the Legendre polynomial P_N, found by
Newton's method on [-1, 1] and rescaled to the integration interval.

Run without arguments to integrate the sample x^6 - x^2 sin(2x) over [1, 3]
with the 7-point rule.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
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
	RunE: runSample,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(integrateCmd, nodesCmd, studyCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
