package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mspro-labs/menuboard/internal/metrics"
	"mspro-labs/menuboard/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the menu screens over HTTP",
	Long: `Starts the display server. Every request to /screens/{n} fetches the sheet
again, so the board always shows the current spreadsheet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: :$PORT or :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command) error {
	m := metrics.New()
	appCfg, b, err := newBoard(m)
	if err != nil {
		return err
	}
	addr := appCfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(b, m, logger).Run(ctx, addr)
}
