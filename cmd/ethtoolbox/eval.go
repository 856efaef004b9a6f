package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"ethToolBox/internal/config"
)

func runEval(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, closeSession, err := openSession(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSession()

	if signature, _ := cmd.Flags().GetString("abi"); signature != "" {
		added, err := sess.Eval(ctx, "abi "+strconv.Quote(signature))
		if err != nil {
			return err
		}
		printEntries(cmd.OutOrStdout(), added)
		if state := sess.State(); state.AbiError != "" {
			return fmt.Errorf("abi: %s", state.AbiError)
		}
	}

	added, err := sess.Eval(ctx, quoteArgs(args))
	printEntries(cmd.OutOrStdout(), added)
	if err != nil {
		return err
	}
	for _, entry := range added {
		if entry.Failed {
			return fmt.Errorf("command failed")
		}
	}
	return nil
}

// quoteArgs rebuilds a console line from shell arguments, quoting any
// argument the console would otherwise split or unescape.
func quoteArgs(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if i > 0 && (arg == "" || strings.ContainsAny(arg, " \t\"")) {
			arg = strconv.Quote(arg)
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}
