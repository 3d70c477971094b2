package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/AI2HU/mongoping/internal/api"
	"github.com/AI2HU/mongoping/internal/db"
	"github.com/AI2HU/mongoping/internal/db/mongodb"
	"github.com/AI2HU/mongoping/internal/probe"
)

var (
	serveHost  string
	servePort  string
	serveRate  float64
	serveBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the connectivity check over HTTP",
	Long: `Start an HTTP server answering GET /health (and /api/v1/health) with the
result of one connectivity check per request: 200 when MongoDB answers,
503 otherwise. Requests above --rate per second are rejected with 429.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "0.0.0.0", "Host to bind the server to")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8990", "Port to run the server on")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 1, "Maximum checks per second (0 disables limiting)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 5, "Burst of checks allowed above --rate")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveRate < 0 {
		return fmt.Errorf("rate must not be negative, got %v", serveRate)
	}

	factory := func() db.Checker { return mongodb.New(cfg) }
	server := api.NewServer(cfg.URI, factory, rate.Limit(serveRate), serveBurst)
	address := net.JoinHostPort(serveHost, servePort)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, FormatHeader("🚀 Starting mongoping health server"))
	fmt.Fprintln(out, FormatDim("===================================="))
	fmt.Fprintln(out, FormatLabelValue("Target:", probe.Redact(cfg.URI)))
	fmt.Fprintln(out, FormatLabelValue("Timeout:", formatDuration(cfg.ServerSelectionTimeout)))
	fmt.Fprintln(out, FormatLabelValue("URL:", fmt.Sprintf("http://%s/health", address)))
	fmt.Fprintln(out, FormatMeta("Press Ctrl+C to stop the server"))

	return server.Run(cmd.Context(), address)
}
