package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ethToolBox/internal/config"
	"ethToolBox/internal/console"
)

func runShell(cmd *cobra.Command, _ []string) error {
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

	out := cmd.OutOrStdout()
	printEntries(out, sess.Entries())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "exit", "quit":
			return finishShell(ctx, out, cfg, sess)
		case "log":
			printEntries(out, sess.Entries())
			continue
		}

		added, err := sess.Eval(ctx, line)
		printEntries(out, added)
		if err != nil {
			logger.Warn("transcript write failed", zap.Error(err))
		}
		if ctx.Err() != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read console: %w", err)
	}
	fmt.Fprintln(out)
	return finishShell(context.Background(), out, cfg, sess)
}

// finishShell flushes pending transcript entries. Without a sink the log is
// discarded, which the user is told about.
func finishShell(ctx context.Context, out io.Writer, cfg config.Config, sess *console.Session) error {
	if cfg.Transcript == "" && cfg.PGDSN == "" {
		fmt.Fprintf(out, "session %s closed, %d log entries discarded\n", sess.ID(), len(sess.Entries()))
		return nil
	}
	return sess.Flush(ctx)
}
