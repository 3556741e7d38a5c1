package quadrature

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Problem is a single integration task of a batch.
type Problem struct {
	A, B  float64
	Order int
	F     interface{}
}

// Evaluator integrates with reference rules that are generated once per
// order and then shared. It is safe for concurrent use.
// The rules it returns are shared and must not be modified.
type Evaluator struct {
	literal ParametersLiteral

	mu    sync.RWMutex
	rules map[int]*Rule

	group singleflight.Group
}

// NewEvaluator creates a new Evaluator generating its rules with the
// tolerance and iteration bound of literal. literal.Order is ignored:
// the order is given at each call.
func NewEvaluator(literal ParametersLiteral) (*Evaluator, error) {

	literal.Order = 1

	params, err := NewParametersFromLiteral(literal)
	if err != nil {
		return nil, fmt.Errorf("cannot NewEvaluator: %w", err)
	}

	return &Evaluator{
		literal: params.ParametersLiteral(),
		rules:   map[int]*Rule{},
	}, nil
}

// Rule returns the reference rule of the given order, generating it on
// the first call. Concurrent first calls for the same order share a
// single generation.
func (eval *Evaluator) Rule(order int) (*Rule, error) {

	eval.mu.RLock()
	rule, ok := eval.rules[order]
	eval.mu.RUnlock()

	if ok {
		return rule, nil
	}

	v, err, _ := eval.group.Do(strconv.Itoa(order), func() (interface{}, error) {

		eval.mu.RLock()
		rule, ok := eval.rules[order]
		eval.mu.RUnlock()

		if ok {
			return rule, nil
		}

		literal := eval.literal
		literal.Order = order

		params, err := NewParametersFromLiteral(literal)
		if err != nil {
			return nil, err
		}

		if rule, err = NewRule(params); err != nil {
			return nil, err
		}

		eval.mu.Lock()
		eval.rules[order] = rule
		eval.mu.Unlock()

		return rule, nil
	})

	if err != nil {
		return nil, fmt.Errorf("cannot Rule: %w", err)
	}

	return v.(*Rule), nil
}

// CachedOrders returns the number of rules held by the evaluator.
func (eval *Evaluator) CachedOrders() int {
	eval.mu.RLock()
	defer eval.mu.RUnlock()
	return len(eval.rules)
}

// Integrate approximates the integral of f over [a, b] with the cached
// rule of the given order. See Integrate.
func (eval *Evaluator) Integrate(a, b float64, order int, f interface{}) (float64, error) {

	ref, err := eval.Rule(order)
	if err != nil {
		return 0, fmt.Errorf("cannot Integrate: %w", err)
	}

	return integrate(ref, a, b, f)
}

// IntegrateBatch integrates the independent problems with at most workers
// concurrent goroutines, or runtime.GOMAXPROCS(0) if workers < 1.
// results[i] is the integral of problems[i]. The first error cancels the
// remaining problems and is returned as is, without any partial result.
func (eval *Evaluator) IntegrateBatch(ctx context.Context, problems []Problem, workers int) (results []float64, err error) {

	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results = make([]float64, len(problems))

	for i := range problems {

		i := i

		g.Go(func() (err error) {

			if err = ctx.Err(); err != nil {
				return
			}

			p := problems[i]
			results[i], err = eval.Integrate(p.A, p.B, p.Order, p.F)
			return
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return
}
