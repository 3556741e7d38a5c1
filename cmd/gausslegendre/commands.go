package main

import (
	"fmt"
	"math"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuneinsight/gausslegendre/integrand"
	"github.com/tuneinsight/gausslegendre/quadrature"
	"github.com/tuneinsight/gausslegendre/utils"
	"github.com/tuneinsight/gausslegendre/utils/bignum"
)

const (
	sampleOrder = 7
	sampleA     = 1.0
	sampleB     = 3.0
)

var (
	// integrate flags
	order    int
	lower    float64
	upper    float64
	funcName string
	prec     uint

	// nodes flags
	nodesOrder int
	nodesLower float64
	nodesUpper float64

	// study flags
	maxOrder int
)

var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Integrate a registered function over [a, b]",
	Long: `Integrates a registered function over [a, b] with the Gauss-Legendre rule of
the given order and prints the result.

With --prec, the rule and the integrand are evaluated with the given number of
bits of precision instead of float64.

Example:
  gausslegendre integrate --func "exp(x)" --a 0 --b 1 --order 12`,
	Args: cobra.NoArgs,
	RunE: runIntegrate,
}

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the nodes and weights of a rule",
	Args:  cobra.NoArgs,
	RunE:  runNodes,
}

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Tabulate the integral of a function for orders 1 to --max-order",
	Args:  cobra.NoArgs,
	RunE:  runStudy,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered functions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	integrateCmd.Flags().IntVarP(&order, "order", "n", sampleOrder, "number of quadrature nodes")
	integrateCmd.Flags().Float64Var(&lower, "a", sampleA, "lower bound of the interval")
	integrateCmd.Flags().Float64Var(&upper, "b", sampleB, "upper bound of the interval")
	integrateCmd.Flags().StringVarP(&funcName, "func", "f", integrand.Sample, "name of the function to integrate (see list)")
	integrateCmd.Flags().UintVar(&prec, "prec", 0, "bits of precision, 0 for float64")

	nodesCmd.Flags().IntVarP(&nodesOrder, "order", "n", sampleOrder, "number of quadrature nodes")
	nodesCmd.Flags().Float64Var(&nodesLower, "a", -1, "lower bound of the interval")
	nodesCmd.Flags().Float64Var(&nodesUpper, "b", 1, "upper bound of the interval")

	studyCmd.Flags().IntVarP(&maxOrder, "max-order", "m", 10, "largest order of the study")
	studyCmd.Flags().Float64Var(&lower, "a", sampleA, "lower bound of the interval")
	studyCmd.Flags().Float64Var(&upper, "b", sampleB, "upper bound of the interval")
	studyCmd.Flags().StringVarP(&funcName, "func", "f", integrand.Sample, "name of the function to integrate (see list)")
}

// runSample integrates the sample function over [1, 3] with the 7-point rule.
func runSample(cmd *cobra.Command, args []string) error {

	params, err := quadrature.NewParametersFromLiteral(quadrature.ParametersLiteral{Order: sampleOrder})
	if err != nil {
		return err
	}

	ref, err := quadrature.NewRule(params)
	if err != nil {
		return err
	}

	rule, err := ref.Scale(sampleA, sampleB)
	if err != nil {
		return err
	}

	f, err := integrand.Lookup(integrand.Sample)
	if err != nil {
		return err
	}

	result, err := rule.Sum(f)
	if err != nil {
		return err
	}

	logger.Debug("sample integrated", zap.Int("order", sampleOrder), zap.Float64("a", sampleA), zap.Float64("b", sampleB), zap.Float64("result", result))

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func runIntegrate(cmd *cobra.Command, args []string) error {

	f, err := integrand.Lookup(funcName)
	if err != nil {
		return err
	}

	start := time.Now()

	if prec == 0 {

		result, err := quadrature.Integrate(lower, upper, order, f)
		if err != nil {
			return fmt.Errorf("integrate %s over [%v, %v]: %w", f.Name, lower, upper, err)
		}

		logger.Debug("integrated",
			zap.String("func", f.Name),
			zap.Int("order", order),
			zap.Float64("a", lower),
			zap.Float64("b", upper),
			zap.Duration("elapsed", time.Since(start)))

		if exact, ok := f.Exact(lower, upper); ok {
			logger.Debug("closed form", zap.Float64("exact", exact), zap.Float64("abs_error", math.Abs(exact-result)))
		}

		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}

	if prec < quadrature.MinPrec {
		return fmt.Errorf("--prec must be 0 or at least %d but is %d", quadrature.MinPrec, prec)
	}

	result, err := quadrature.IntegrateBig(bignum.NewFloat(lower, prec), bignum.NewFloat(upper, prec), order, prec, f)
	if err != nil {
		return fmt.Errorf("integrate %s over [%v, %v]: %w", f.Name, lower, upper, err)
	}

	logger.Debug("integrated",
		zap.String("func", f.Name),
		zap.Int("order", order),
		zap.Uint("prec", prec),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintln(cmd.OutOrStdout(), result.Text('g', decimalDigits(prec)))
	return nil
}

func runNodes(cmd *cobra.Command, args []string) error {

	params, err := quadrature.NewParametersFromLiteral(quadrature.ParametersLiteral{Order: nodesOrder})
	if err != nil {
		return err
	}

	ref, err := quadrature.NewRule(params)
	if err != nil {
		return err
	}

	rule, err := ref.Scale(nodesLower, nodesUpper)
	if err != nil {
		return err
	}

	digest, err := rule.Digest()
	if err != nil {
		return err
	}

	logger.Debug("rule generated", zap.Int("order", rule.Order), zap.Binary("digest", digest))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "i\tnode\tweight")
	for i := range rule.Nodes {
		fmt.Fprintf(w, "%d\t%.17g\t%.17g\n", i, rule.Nodes[i], rule.Weights[i])
	}
	return w.Flush()
}

func runStudy(cmd *cobra.Command, args []string) error {

	f, err := integrand.Lookup(funcName)
	if err != nil {
		return err
	}

	report, err := quadrature.Study(lower, upper, utils.RangeInt(1, maxOrder), f)
	if err != nil {
		return fmt.Errorf("study %s over [%v, %v]: %w", f.Name, lower, upper, err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "order\testimate\t|difference|")
	for i, n := range report.Orders {
		if i == 0 {
			fmt.Fprintf(w, "%d\t%.17g\t\n", n, report.Estimates[i])
			continue
		}
		fmt.Fprintf(w, "%d\t%.17g\t%.3e\n", n, report.Estimates[i], report.Differences[i-1])
	}
	if err = w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "max %.3e  mean %.3e  median %.3e\n", report.MaxDifference, report.MeanDifference, report.MedianDifference)

	if exact, ok := f.Exact(lower, upper); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "closed form %.17g\n", exact)
	}

	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	for _, name := range integrand.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

// decimalDigits returns the number of significant decimal digits of a
// prec-bit mantissa.
func decimalDigits(prec uint) int {
	return int(float64(prec) * math.Log10(2))
}
