package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "ethtoolbox",
		Short:        "Ethereum utility conversions",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive console",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
	addSessionFlags(shellCmd)
	root.AddCommand(shellCmd)

	evalCmd := &cobra.Command{
		Use:   "eval <command> [args...]",
		Short: "Run one console command and print its result",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEval,
	}
	addSessionFlags(evalCmd)
	evalCmd.Flags().String("abi", "", "function signature to set before running the command")
	root.AddCommand(evalCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the toolbox over an HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addSessionFlags(serveCmd)
	serveCmd.Flags().String("listen", "127.0.0.1:8545", "HTTP listen address")
	serveCmd.Flags().Duration("read-header-timeout", 5*time.Second, "HTTP read header timeout")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "JSON-RPC URL for chainid, block and balance")
	cmd.Flags().String("transcript", "", "append the result log to this JSONL file")
	cmd.Flags().String("pg-dsn", "", "also write the result log to Postgres")
	cmd.Flags().Int("max-retries", 3, "maximum RPC retry attempts")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial RPC retry backoff")
	cmd.Flags().String("log-level", "warn", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
