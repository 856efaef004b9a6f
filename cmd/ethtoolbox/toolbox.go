package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ethToolBox/internal/chain"
	"ethToolBox/internal/config"
	"ethToolBox/internal/console"
	"ethToolBox/internal/model"
	"ethToolBox/internal/session"
	"ethToolBox/internal/storage"
	"ethToolBox/internal/storage/postgres"
)

var _ session.ChainReader = (*chain.Client)(nil)

// openSession wires the optional RPC client and transcript sinks around a
// fresh session. The returned func releases them.
func openSession(ctx context.Context, cfg config.Config, logger *zap.Logger) (*console.Session, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var reader session.ChainReader
	if cfg.RPCURL != "" {
		client, err := chain.NewClient(ctx, cfg.RPCURL, cfg.MaxRetries, cfg.RetryBackoff)
		if err != nil {
			return nil, nil, fmt.Errorf("connect rpc: %w", err)
		}
		closers = append(closers, client.Close)
		reader = client
	}

	var sinks storage.Multi
	if cfg.Transcript != "" {
		sinks = append(sinks, storage.NewJsonlSink(cfg.Transcript))
	}
	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		closers = append(closers, store.Close)
		if err := store.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, store)
	}

	var sink console.Sink
	switch len(sinks) {
	case 0:
	case 1:
		sink = sinks[0]
	default:
		sink = sinks
	}

	id := uuid.NewString()
	dispatcher := session.NewDispatcher(reader, logger)
	sess := console.NewSession(id, console.New(dispatcher), sink, logger)

	logger.Info("session start",
		zap.String("session", id),
		zap.Bool("rpc", reader != nil),
		zap.String("transcript", cfg.Transcript),
		zap.Bool("postgres", cfg.PGDSN != ""),
	)
	return sess, closeAll, nil
}

func printEntries(w io.Writer, entries []model.LogEntry) {
	for _, entry := range entries {
		marker := " "
		if entry.Failed {
			marker = "!"
		}
		line := strings.ReplaceAll(entry.Line, "\n", "\n      ")
		fmt.Fprintf(w, "%4d%s %s\n", entry.Seq, marker, line)
	}
}
