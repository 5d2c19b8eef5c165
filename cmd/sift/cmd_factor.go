package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/odvcencio/sift/pkg/factor"
)

func newFactorCmd() *cobra.Command {
	var all bool
	var stats bool
	var verbose bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "factor <target>",
		Short: "Compute the largest prime factor of a target integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			if cfg.source != "" {
				logger.Debug().Str("path", cfg.source).Msg("config loaded")
			}

			target, err := parseTarget(args[0])
			if err != nil {
				return err
			}

			// Explicit flags win over configured defaults.
			if !cmd.Flags().Changed("all") {
				all = cfg.Output.Factorization
			}
			if !cmd.Flags().Changed("stats") {
				stats = cfg.Output.Stats
			}

			start := time.Now()
			res, err := factor.Largest(target)
			if err != nil {
				return fmt.Errorf("factor %d: %w", target, err)
			}
			logger.Debug().
				Uint64("target", target).
				Bool("target_prime", res.TargetPrime).
				Int("factors", res.Stats.FactorsFound).
				Uint64("divisions", res.Stats.Divisions).
				Dur("elapsed", time.Since(start)).
				Msg("factor run complete")

			out := cmd.OutOrStdout()
			if res.TargetPrime {
				fmt.Fprintf(out, "%d is prime\n", target)
				return nil
			}
			fmt.Fprintf(out, "%d\n", res.Factor)

			if all {
				primes, err := factor.Decompose(target)
				if err != nil {
					return fmt.Errorf("decompose %d: %w", target, err)
				}
				fmt.Fprintf(out, "%d = %s\n", target, formatProduct(primes))
			}
			if stats {
				printStats(out, res.Stats)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "also print the complete prime factorization")
	cmd.Flags().BoolVar(&stats, "stats", false, "print work counters after the result")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: $SIFT_CONFIG or ./sift.toml)")

	return cmd
}

// parseTarget converts the CLI argument into the engine's target integer.
// Targets below 2 fail fast, before any computation starts.
func parseTarget(raw string) (uint64, error) {
	target, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target %q: expected a positive integer", raw)
	}
	if target < 2 {
		return 0, fmt.Errorf("invalid target %d: %w", target, factor.ErrInvalidTarget)
	}
	return target, nil
}

func formatProduct(primes []uint64) string {
	parts := make([]string, len(primes))
	for i, p := range primes {
		parts[i] = strconv.FormatUint(p, 10)
	}
	return strings.Join(parts, " * ")
}

func printStats(out io.Writer, st factor.Stats) {
	fmt.Fprintf(out, "divisions:       %d\n", st.Divisions)
	fmt.Fprintf(out, "factors found:   %d\n", st.FactorsFound)
	fmt.Fprintf(out, "factors scanned: %d\n", st.FactorsScanned)
	fmt.Fprintf(out, "sieve bound:     %d\n", st.SieveBound)
	fmt.Fprintf(out, "primes sieved:   %d\n", st.PrimesSieved)
}
