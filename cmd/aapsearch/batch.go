package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/aapsearch/pkg/aap"
)

var batchFlags struct {
	file    string
	workers int
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compute thresholds for a list of targets from a YAML file",
	Long: `Batch reads a YAML file describing threshold targets and computes them
concurrently, one oracle per target. Output order follows the file.

File format:

    targets:
      - {k: 3, l: 3, nmax: 200}
      - {k: 4, l: 3, nmax: 500}`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchFlags.file, "file", "targets.yaml", "YAML file listing targets")
	batchCmd.Flags().IntVar(&batchFlags.workers, "workers", 0, "maximum concurrent targets (0 = number of CPUs)")
}

// batchTarget is one threshold request from the batch file.
type batchTarget struct {
	K    int `yaml:"k"`
	L    int `yaml:"l"`
	Nmax int `yaml:"nmax"`
}

// batchSpec is the top-level batch file structure.
type batchSpec struct {
	Targets []batchTarget `yaml:"targets"`
}

// batchResult pairs a target with its outcome for ordered reporting.
type batchResult struct {
	target  batchTarget
	value   int
	elapsed time.Duration
}

func loadBatchSpec(path string) (*batchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var spec batchSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if len(spec.Targets) == 0 {
		return nil, errors.New("batch file lists no targets")
	}
	for i, t := range spec.Targets {
		if t.K < 1 || t.L < 1 || t.Nmax < 1 {
			return nil, fmt.Errorf("target %d is invalid: k=%d, l=%d, nmax=%d", i, t.K, t.L, t.Nmax)
		}
	}
	return &spec, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	spec, err := loadBatchSpec(batchFlags.file)
	if err != nil {
		return err
	}

	results := make([]batchResult, len(spec.Targets))
	g, ctx := errgroup.WithContext(cmd.Context())
	if batchFlags.workers > 0 {
		g.SetLimit(batchFlags.workers)
	}

	for i, target := range spec.Targets {
		i, target := i, target
		g.Go(func() error {
			config := aap.DefaultOracleConfig()
			config.ReuseMemo = true
			oracle := aap.NewOracleWithConfig(config)

			start := time.Now()
			b, err := oracle.ComputeThreshold(ctx, target.K, target.L, target.Nmax)
			if err != nil {
				return fmt.Errorf("target B(%d,%d): %w", target.K, target.L, err)
			}
			results[i] = batchResult{target: target, value: b, elapsed: time.Since(start)}
			slog.Debug("target finished", "k", target.K, "l", target.L, "value", b, "elapsed", results[i].elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if r.value == aap.Unresolved {
			fmt.Printf("B(%d,%d): unresolved up to Nmax=%d (%.3f ms)\n",
				r.target.K, r.target.L, r.target.Nmax, float64(r.elapsed)/float64(time.Millisecond))
		} else {
			fmt.Printf("B(%d,%d) = %d (%.3f ms)\n",
				r.target.K, r.target.L, r.value, float64(r.elapsed)/float64(time.Millisecond))
		}
	}
	return nil
}
