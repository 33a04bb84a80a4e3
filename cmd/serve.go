package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dotcommander/geoscore/internal/stubserver"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local stand-in for the scoring service",
	Long: `Runs a local scoring API so geoscore can be exercised without the
hosted service. Point the CLI at it with --api-base http://localhost:8000/api
(the default). Scores are seeded from the brand name, so repeated requests
for the same brand return the same scorecard.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8000", "Listen address for the stub scoring API")
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	log := newLogger(verbose)
	defer log.Sync()

	srv := stubserver.New(log)

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(listenAddr, srv.Routes()) }()
	fmt.Fprintf(os.Stderr, "stub scoring service listening on %s\n", listenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		fmt.Fprintf(os.Stderr, "shutting down on %s\n", sig)
		log.Debug("shutdown signal", zap.Stringer("signal", sig))
		time.Sleep(100 * time.Millisecond)
		return nil
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}
