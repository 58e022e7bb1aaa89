// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AleutianAI/janafdb/services/janafd"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	serveListen string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP table service",
		Long: `Run the janafd HTTP service, exposing index search, phase
resolution, and property evaluation under /v1/janaf/.`,
		RunE: runServeCommand,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config, then :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}

	listen := serveListen
	if listen == "" {
		listen = config.Listen
	}

	gin.SetMode(gin.ReleaseMode)
	router := janafd.NewRouter(janafd.NewHandlers(db, logger.Slog()))

	srv := &http.Server{
		Addr:              listen,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
