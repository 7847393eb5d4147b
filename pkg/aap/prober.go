package aap

// prober.go: speculative concurrent evaluation of independent oracle calls.

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/aapsearch/internal/parallel"
)

// ProbeResult is the outcome of one counterexample query.
type ProbeResult struct {
	N              int
	Counterexample bool
}

// Prober evaluates counterexample queries for several range sizes at once.
// Queries for different sizes are independent, so the doubling phase of a
// threshold search can speculate on the whole candidate ladder in parallel.
//
// Every probe constructs a private Oracle (its own coloring buffer and memo
// table); probes share only the read-only configuration, so no
// synchronization beyond result collection is needed.
type Prober struct {
	workers int
	config  *OracleConfig
	monitor *SearchMonitor
}

// NewProber creates a prober running at most workers probes concurrently.
// workers <= 0 selects the number of CPU cores. A nil config selects
// DefaultOracleConfig; ReuseMemo is ignored because probes are one-shot.
func NewProber(workers int, config *OracleConfig) *Prober {
	if config == nil {
		config = DefaultOracleConfig()
	}
	return &Prober{workers: workers, config: config}
}

// SetMonitor attaches a shared monitor to all probes.
func (p *Prober) SetMonitor(monitor *SearchMonitor) {
	p.monitor = monitor
}

// Probe evaluates ExistsCounterexample(n, k1, k2) for every n in ns.
// Results are returned positionally. The first probe error (invalid
// parameters or cancellation) aborts the batch.
func (p *Prober) Probe(ctx context.Context, ns []int, k1, k2 int) ([]ProbeResult, error) {
	pool := parallel.NewWorkerPool(p.workers)
	defer pool.Shutdown()

	results := make([]ProbeResult, len(ns))
	g, gctx := errgroup.WithContext(ctx)
	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			return pool.Run(gctx, func(ctx context.Context) error {
				o := NewOracleWithConfig(p.config)
				o.SetMonitor(p.monitor)
				ce, err := o.ExistsCounterexample(ctx, n, k1, k2)
				if err != nil {
					return err
				}
				results[i] = ProbeResult{N: n, Counterexample: ce}
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MinimalThresholdParallel is MinimalThreshold with a speculative doubling
// phase: the whole ladder 1, 2, 4, ..., nmax is probed concurrently, then
// binary search runs sequentially inside the resulting bracket.
//
// It returns the same answer as the sequential search; speculation only
// trades wasted probes below the threshold for wall-clock time.
func (p *Prober) MinimalThresholdParallel(ctx context.Context, k1, k2, nmax int) (int, error) {
	if err := validateParams(k1, k2, nmax); err != nil {
		return Unresolved, err
	}

	ladder := make([]int, 0, 32)
	for n := 1; ; n = min(n*2, nmax) {
		ladder = append(ladder, n)
		if n == nmax {
			break
		}
	}

	results, err := p.Probe(ctx, ladder, k1, k2)
	if err != nil {
		return Unresolved, err
	}

	// Monotonicity: counterexamples exist strictly below the threshold.
	// The first rung where the predicate holds closes the bracket; the
	// last rung before it with a counterexample opens it.
	lo, hi := 1, Unresolved
	for _, r := range results {
		if !r.Counterexample {
			hi = r.N
			break
		}
		lo = r.N + 1
	}
	if hi == Unresolved {
		return Unresolved, nil
	}

	o := NewOracleWithConfig(p.config)
	o.SetMonitor(p.monitor)
	return o.binarySearchMin(ctx, lo, hi, k1, k2)
}
