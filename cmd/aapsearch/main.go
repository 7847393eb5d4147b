// Command aapsearch computes two-color AAP threshold numbers B(k, l).
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aapsearch",
	Short: "Search for two-color almost-arithmetic progression thresholds",
	Long: `aapsearch computes B(k, l): the minimal N such that every red/blue
coloring of {0, ..., N-1} contains a red almost-arithmetic progression of
length k or a blue one of length l. An almost-arithmetic progression is an
increasing index sequence whose consecutive gaps take exactly two distinct
values, each used at least once.

Searches are capped by --nmax; a threshold beyond the cap is reported as
unresolved rather than searched for indefinitely.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(batchCmd)
}
