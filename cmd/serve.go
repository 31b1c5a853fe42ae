package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/internal/metrics"
	"github.com/tubegrab/tubegrab/internal/server"
	"github.com/tubegrab/tubegrab/key"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	lo.Must0(viper.BindPFlag(key.ServePort, serveCmd.Flags().Lookup("port")))
	serveCmd.Flags().String("host", "", "Interface to bind, all of them when empty")
}

// serveCmd exposes lookups and selections as JSON endpoints.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups and selections over HTTP",
	Long: `Start an HTTP server with the following endpoints:

  GET /v1/video?url=<url>                  metadata of a video
  GET /v1/download?url=<url>&quality=<q>   selected MP4 variant
  GET /healthz                             liveness probe
  GET /metrics                             Prometheus metrics

When serve.token is set, /v1 requires it in the X-API-Key header.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := fmt.Sprintf("%s:%d", lo.Must(cmd.Flags().GetString("host")), viper.GetInt(key.ServePort))
		cmd.Printf("Listening on %s\n", addr)

		handleErr(server.Serve(ctx, addr, server.Config{
			Service: newService(metrics.ObserveUpstream),
			Token:   viper.GetString(key.ServeToken),
		}))
	},
}
