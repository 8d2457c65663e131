// Package main is the robotforge command line: assemble robots from YAML
// loadouts, inspect chassis layouts, roll salvage and browse history.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/robot-forge/internal/config"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

var (
	cfg *config.Config

	// Global flags
	logLevel   string
	outputFmt  string
	redisAddrs []string
	ephemeral  bool
)

var rootCmd = &cobra.Command{
	Use:   "robotforge",
	Short: "Assemble and inspect collectible robots",
	Long: `robotforge builds robots from part loadouts, checks their configuration
and keeps an assembly history in redis.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides ROBOTFORGE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringSliceVar(&redisAddrs, "redis", nil, "Redis addresses (overrides ROBOTFORGE_REDIS_ADDRS)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Use an in-process redis that is discarded on exit")

	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(salvageCmd)
	rootCmd.AddCommand(historyCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if len(redisAddrs) > 0 {
		loaded.RedisAddrs = redisAddrs
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	switch outputFmt {
	case "text", "json", "yaml":
	default:
		return errors.InvalidArgumentf("unknown output format %q", outputFmt)
	}

	opts := &slog.HandlerOptions{Level: loaded.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if loaded.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	cfg = loaded
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
