package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagSeed       uint64
	flagCount      int
	flagWorkers    int
	flagCacheDepth int
)

func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, 0x74776973747921))
}

var rootCmd = &cobra.Command{
	Use:   "twisty",
	Short: "Explore the configuration spaces of small twisty puzzles",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()
		setupLogging()
		if !cmd.Flags().Changed("count") {
			flagCount = config.ScrambleCount
		}
		if !cmd.Flags().Changed("workers") {
			flagWorkers = config.Workers
		}
		if !cmd.Flags().Changed("cache-depth") {
			flagCacheDepth = config.CacheDepth
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known puzzles",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range registry {
			fmt.Printf("%-20s %s\n", p.name, p.about)
		}
	},
}

var depthCmd = &cobra.Command{
	Use:   "depth <puzzle>",
	Short: "Count every configuration by distance from solved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findPuzzle(args[0])
		if err != nil {
			return err
		}

		elapsed, summary := p.enumerate()
		log.WithFields(map[string]any{
			"puzzle":  p.name,
			"elapsed": elapsed,
		}).Info("enumeration finished")

		fmt.Print(summary.String())
		return nil
	},
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble <puzzle>",
	Short: "Print a uniformly random scramble with its optimal length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findPuzzle(args[0])
		if err != nil {
			return err
		}
		if p.scramble == nil {
			return fmt.Errorf("%s has no random state generator", p.name)
		}

		s, err := p.scramble(newRand(), flagCacheDepth)
		if err != nil {
			return err
		}

		fmt.Println(s)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <puzzle>",
	Short: "Solve a batch of random states and report the length distribution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := findPuzzle(args[0])
		if err != nil {
			return err
		}
		if p.bulk == nil {
			return fmt.Errorf("%s has no random state generator", p.name)
		}

		start := time.Now()
		lengths, err := p.bulk(newRand(), flagCacheDepth, flagCount, flagWorkers)
		if err != nil {
			return err
		}
		log.WithFields(map[string]any{
			"puzzle":  p.name,
			"count":   flagCount,
			"elapsed": time.Since(start),
		}).Info("batch finished")

		fmt.Print(formatLengths(lengths))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "random seed, 0 seeds from the clock")

	scrambleCmd.Flags().IntVar(&flagCacheDepth, "cache-depth", 6, "pattern database build radius")

	statsCmd.Flags().IntVar(&flagCacheDepth, "cache-depth", 6, "pattern database build radius")
	statsCmd.Flags().IntVarP(&flagCount, "count", "n", 1000, "number of random states to solve")
	statsCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "solver goroutines, 0 means one per CPU")

	rootCmd.AddCommand(listCmd, depthCmd, scrambleCmd, statsCmd)
}
