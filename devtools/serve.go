package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devtools.znkr.io/devtools/config"
	"devtools.znkr.io/devtools/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the string tools via HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Serve.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		s, err := server.Run(addr, cat.Language(), logger)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				logger.Warn("Shutdown failed", zap.Error(err))
			}
		}()
		logger.Info("Now serving, press Ctrl-C to shut down", zap.Stringer("addr", s.Addr()))

		// Setup signals to react to Ctrl-C.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		defer signal.Stop(sigint)

		select {
		case err := <-s.Error():
			return fmt.Errorf("serving: %v", err)
		case <-sigint:
			fmt.Fprint(os.Stderr, "\r") // remove Ctrl-C output characters
			logger.Info("Received Ctrl-C, shutting down")
			return nil
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (default "+config.DefaultAddr+")")
}
