// Command netzwerk optimises the contraction order of a tensor network
// described by two text files: the network itself and a spanning tree of
// it. It prints "[<algorithm>] cost=<value>" on stdout and keeps all
// diagnostics on stderr.
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stoianmihail/netzwerk"
	"github.com/stoianmihail/netzwerk/optimizer"
)

var (
	verbose       bool
	threads       int
	outerProducts bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "netzwerk <algorithm> [graph-file tree-file]",
		Short:        "Compute a low-cost contraction order for a tensor network",
		Long: "netzwerk reads a tensor network and a spanning tree of it and computes a\n" +
			"contraction order with the selected algorithm: tensor-ikkbz, lindp, greedy,\n" +
			"tensor-ikkbz-parallel or lindp-parallel.",
		Args:         cobra.RangeArgs(1, 3),
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 0, "worker count for the parallel algorithms (0 = hardware concurrency - 1)")
	rootCmd.Flags().BoolVar(&outerProducts, "outer-products", false, "permit outer-product splits in lindp")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	algorithm := args[0]
	graphPath, treePath := "../graph.in", "../tree.in"
	if len(args) == 3 {
		graphPath, treePath = args[1], args[2]
	} else if len(args) == 2 {
		return fmt.Errorf("expected either one or three arguments, got %d", len(args))
	}

	log.Debugf("graph=%s tree=%s", graphPath, treePath)

	started := time.Now()
	result, err := netzwerk.RunFiles(algorithm, graphPath, treePath,
		optimizer.WithThreads(threads), optimizer.WithOuterProducts(outerProducts))
	if err != nil {
		return err
	}
	log.Infof("%s took %.3f ms, %d contractions", algorithm,
		float64(time.Since(started).Microseconds())/1e3, len(result.Sequence))

	fmt.Printf("[%s] cost=%.2f\n", algorithm, result.Cost)

	return nil
}
