package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/aapsearch/pkg/aap"
)

var computeFlags struct {
	k        int
	l        int
	nmax     int
	linear   bool
	parallel int
	stats    bool
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a single threshold B(k, l)",
	Long: `Compute runs the two-stage threshold search for one (k, l) pair.

By default the optimized search is used: symmetric anchor, exponential
bound-finding, binary search, memoized oracle. --linear selects the plain
linear scan instead (slow, used as a reference), and --parallel evaluates
the bound-finding probes concurrently.`,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().IntVar(&computeFlags.k, "k", 3, "red pattern length")
	computeCmd.Flags().IntVar(&computeFlags.l, "l", 3, "blue pattern length")
	computeCmd.Flags().IntVar(&computeFlags.nmax, "nmax", 200, "search cap")
	computeCmd.Flags().BoolVar(&computeFlags.linear, "linear", false, "use the basic linear-scan search")
	computeCmd.Flags().IntVar(&computeFlags.parallel, "parallel", 0, "probe concurrently with this many workers (0 = sequential)")
	computeCmd.Flags().BoolVar(&computeFlags.stats, "stats", false, "print search statistics")
}

func runCompute(cmd *cobra.Command, args []string) error {
	k, l, nmax := computeFlags.k, computeFlags.l, computeFlags.nmax
	monitor := aap.NewSearchMonitor()
	ctx := cmd.Context()

	slog.Debug("starting threshold search",
		"k", k, "l", l, "nmax", nmax,
		"linear", computeFlags.linear, "parallel", computeFlags.parallel)

	start := time.Now()
	var (
		b   int
		err error
	)
	switch {
	case computeFlags.linear:
		oracle := aap.NewOracleWithConfig(aap.BasicOracleConfig())
		oracle.SetMonitor(monitor)
		b, err = oracle.LinearThreshold(ctx, k, l, nmax)
	case computeFlags.parallel > 0:
		prober := aap.NewProber(computeFlags.parallel, nil)
		prober.SetMonitor(monitor)
		b, err = prober.MinimalThresholdParallel(ctx, k, l, nmax)
	default:
		config := aap.DefaultOracleConfig()
		config.ReuseMemo = true
		oracle := aap.NewOracleWithConfig(config)
		oracle.SetMonitor(monitor)
		b, err = oracle.ComputeThreshold(ctx, k, l, nmax)
	}
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	if b == aap.Unresolved {
		fmt.Printf("Unresolved up to Nmax=%d\n", nmax)
	} else {
		fmt.Printf("B(%d,%d) = %d\n", k, l, b)
	}
	fmt.Printf("Elapsed: %.3f ms\n", float64(elapsed)/float64(time.Millisecond))

	if computeFlags.stats {
		fmt.Println(monitor.Stats())
	}
	return nil
}
