package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/odvcencio/sift/pkg/sieve"
)

func newPrimesCmd() *cobra.Command {
	var countOnly bool
	var verbose bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "primes <bound>",
		Short: "List every prime up to and including a bound",
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

			raw := strings.TrimSpace(args[0])
			bound, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bound %q: expected a non-negative integer", args[0])
			}

			start := time.Now()
			primes := sieve.Generate(bound)
			logger.Debug().
				Uint64("bound", bound).
				Int("primes", len(primes)).
				Dur("elapsed", time.Since(start)).
				Msg("sieve complete")

			if countOnly {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", len(primes))
				return nil
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, p := range primes {
				fmt.Fprintf(out, "%d\n", p)
			}
			return out.Flush()
		},
	}

	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the number of primes")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default: $SIFT_CONFIG or ./sift.toml)")

	return cmd
}
