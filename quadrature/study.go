package quadrature

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Report tabulates the integral of a function at increasing orders.
// Differences[i] is |Estimates[i+1] - Estimates[i]|.
type Report struct {
	A, B        float64
	Orders      []int
	Estimates   []float64
	Differences []float64

	MaxDifference    float64
	MeanDifference   float64
	MedianDifference float64
}

// Study integrates f over [a, b] at each of the given orders and summarizes
// the successive differences of the estimates. At least two orders are
// required. The orders are used in the given sequence.
func Study(a, b float64, orders []int, f interface{}) (report *Report, err error) {

	if len(orders) < 2 {
		return nil, fmt.Errorf("cannot Study: %w: at least two orders are required but %d were given", ErrInvalidParameter, len(orders))
	}

	var eval *Evaluator
	if eval, err = NewEvaluator(ParametersLiteral{}); err != nil {
		return nil, fmt.Errorf("cannot Study: %w", err)
	}

	report = &Report{
		A:           a,
		B:           b,
		Orders:      append([]int{}, orders...),
		Estimates:   make([]float64, len(orders)),
		Differences: make([]float64, len(orders)-1),
	}

	for i, order := range orders {
		if report.Estimates[i], err = eval.Integrate(a, b, order, f); err != nil {
			return nil, err
		}
		if i > 0 {
			report.Differences[i-1] = math.Abs(report.Estimates[i] - report.Estimates[i-1])
		}
	}

	data := stats.Float64Data(report.Differences)

	if report.MaxDifference, err = stats.Max(data); err != nil {
		return nil, fmt.Errorf("cannot Study: %w", err)
	}

	if report.MeanDifference, err = stats.Mean(data); err != nil {
		return nil, fmt.Errorf("cannot Study: %w", err)
	}

	if report.MedianDifference, err = stats.Median(data); err != nil {
		return nil, fmt.Errorf("cannot Study: %w", err)
	}

	return
}

// Last returns the estimate at the last order of the study.
func (r Report) Last() float64 {
	return r.Estimates[len(r.Estimates)-1]
}
