package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/viewkit-go/viewkit/pkg/metrics"
	"github.com/viewkit-go/viewkit/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the rendered tree locally",
		Long: `Preview starts a local HTTP server that re-renders the tree on
every request, so manifest and template edits show up on refresh.
Connected browsers reload automatically over a websocket.

Endpoints:
  /             the rendered document
  /healthz      health check
  /metrics      Prometheus metrics
  /_live/reload live reload socket

Examples:
  viewkit preview
  viewkit preview --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from viewkit.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from viewkit.json)")

	return cmd
}

func runPreview(port int, host string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	if port > 0 {
		proj.cfg.Preview.Port = port
	}
	if host != "" {
		proj.cfg.Preview.Host = host
	}

	reg := prometheus.NewRegistry()
	proj.mets = metrics.New(metrics.WithRegistry(reg))

	printBanner()
	fmt.Println("  preview")
	fmt.Println()
	info("http://%s:%d", proj.cfg.Preview.Host, proj.cfg.Preview.Port)

	hub := preview.NewHub()
	server := preview.NewServer(preview.Options{
		Host: proj.cfg.Preview.Host,
		Port: proj.cfg.Preview.Port,
		Hub:  hub,
		Render: func() (string, error) {
			// Re-load so manifest edits are picked up per request.
			fresh, err := loadProject()
			if err != nil {
				return "", err
			}
			fresh.mets = proj.mets
			return fresh.buildDocument()
		},
		Gatherer: reg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = server.Start(ctx)
	fmt.Println()
	success("Preview stopped")
	return err
}
