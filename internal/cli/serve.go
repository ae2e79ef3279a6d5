package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eddiman/mariposa/internal/config"
	"github.com/eddiman/mariposa/internal/filter"
	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/pipe"
	"github.com/eddiman/mariposa/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP bridge for the filter and pipe adapters",
	RunE:  runServe,
}

var serveListen string

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "host:port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	listen := cfg.Server.Listen
	if serveListen != "" {
		listen = serveListen
	}

	client := mariposa.NewClient(cfg.Mariposa.URL)
	f := filter.New(client, filter.Options{
		EnableSlashCommands: cfg.Filter.EnableSlashCommands,
		EnableAutoFetch:     cfg.Filter.EnableAutoFetch,
	})
	p := pipe.New(client, pipe.Options{PassthroughModel: cfg.Pipe.PassthroughModel})
	srv := server.New(f, p, server.Options{Verbose: cfg.Verbose || globalFlags.Verbose})

	listener, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("binding %s: %w", listen, err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	s := newStyles(os.Stdout)
	fmt.Println(s.sectionHeader("mariposa-assist bridge"))
	fmt.Println(s.kv("Listening", listener.Addr().String()))
	fmt.Println(s.kv("Mariposa", cfg.Mariposa.URL))
	fmt.Println(s.dim("POST /v1/filter/inlet · POST /v1/pipe · GET /healthz"))

	return srv.Serve(ctx, listener)
}

// loadConfig resolves the effective config with global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if globalFlags.ServiceURL != "" {
		cfg.Mariposa.URL = globalFlags.ServiceURL
	}
	return cfg, nil
}
