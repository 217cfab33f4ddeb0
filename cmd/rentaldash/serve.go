package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jgoulah/rentaldash/internal/log"
	"github.com/jgoulah/rentaldash/internal/server"
)

var (
	servePort   int
	serveSource string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard over HTTP",
	Long: `Starts an HTTP server with the dashboard at / and JSON summaries under /api.
The data is loaded once, on the first request, and shared by all requests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 8501)")
	serveCmd.Flags().StringVar(&serveSource, "source", "", "Data source: csv or db (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	src, closeSrc, err := openSource(cfg, serveSource)
	if err != nil {
		return err
	}
	defer closeSrc()

	port := cfg.GetPort()
	if servePort > 0 {
		port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	ctrl := server.NewController(ctx, &wg, src, cfg.GetListenAddr(), port, log.GetSugaredLogger())
	if err := ctrl.StartController(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	fmt.Printf("Dashboard available at http://%s/\n", ctrl.Server.Addr)

	select {
	case <-ctx.Done():
		wg.Wait()
		return nil
	case err := <-ctrl.Errors():
		stop()
		wg.Wait()
		return err
	}
}
