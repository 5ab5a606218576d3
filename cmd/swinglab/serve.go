package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swinglab/swinglab/internal/api"
	"github.com/swinglab/swinglab/internal/ingestion"
)

func newServeCmd(root *rootOpts) *cobra.Command {
	var (
		port       string
		storageDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a local API server",
		Long: `Starts the swinglab HTTP API on localhost, storing swings on the local
filesystem. No database is used, so athlete history is unavailable; use
swinglabd for the hosted service.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := buildAnalyzer(root)
			if err != nil {
				return err
			}
			dir := firstNonEmpty(storageDir, loadConfig(root.configPath).Storage.LocalPath)
			svc := ingestion.NewService(nil, ingestion.NewLocalStorage(dir), an)

			mux := http.NewServeMux()
			api.NewHandler(an, svc, nil, nil).RegisterRoutes(mux)
			srv := &http.Server{Addr: "127.0.0.1:" + port, Handler: api.CORS(mux)}

			fmt.Fprintf(os.Stderr, "swinglab API server\n")
			fmt.Fprintf(os.Stderr, "  Storage:    %s\n", dir)
			fmt.Fprintf(os.Stderr, "  Listening:  http://localhost:%s\n", port)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				_ = srv.Shutdown(context.Background())
			}()

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "7700", "Port to serve on")
	cmd.Flags().StringVar(&storageDir, "storage-dir", "", "Directory for stored swings (default: config storage.local_path)")

	return cmd
}
