package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ethToolBox/internal/config"
	"ethToolBox/internal/server"
)

func runServe(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadServe(cfgFile, cmd.Flags())
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

	sess, closeSession, err := openSession(ctx, cfg.Config, logger)
	if err != nil {
		return err
	}
	defer closeSession()

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(server.Options{
		Listen:            cfg.Listen,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, sess, logger)

	logger.Info("serve start",
		zap.String("listen", cfg.Listen),
		zap.String("session", sess.ID()),
	)

	if err := srv.Run(ctx); err != nil {
		return err
	}
	return sess.Flush(context.Background())
}
