// Command rabinkarp searches a file for the leftmost occurrence of a
// string using the parallel Rabin-Karp matcher.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/exascience/parseq/rabinkarp"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rabinkarp <search_string> <filename>",
	Short: "Parallel Rabin-Karp string search",
	Long: `rabinkarp locates the leftmost occurrence of a search string in a file
using a parallel Rabin-Karp matcher, and prints its position.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := []byte(args[0])
		text, err := os.ReadFile(args[1])
		if err != nil {
			logger.Error("reading input file", zap.Error(err))
			return fmt.Errorf("reading %s: %w", args[1], err)
		}
		logger.Debug("searching",
			zap.Int("text_size", len(text)),
			zap.Int("pattern_size", len(pattern)))
		start := time.Now()
		loc, found := rabinkarp.Search(text, pattern)
		logger.Debug("search finished",
			zap.Duration("elapsed", time.Since(start)),
			zap.Bool("found", found))
		if found {
			fmt.Printf("found at position: %d\n", loc)
		} else {
			fmt.Println("not found")
		}
		return nil
	},
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging on stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
