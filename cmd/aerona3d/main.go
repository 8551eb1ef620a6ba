// cmd/aerona3d/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	"github.com/openheat/aerona3/internal/api"
	"github.com/openheat/aerona3/internal/config"
	"github.com/openheat/aerona3/internal/coordinator"
	"github.com/openheat/aerona3/internal/publish"
	"github.com/openheat/aerona3/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: aerona3d <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	interval := time.Duration(cfg.Device.PollIntervalS) * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Coordinator + write gateway
	// --------------------

	coord, err := coordinator.Build(
		cfg.Device,
		log.New(os.Stdout, "[coordinator] ", log.LstdFlags),
	)
	if err != nil {
		log.Fatalf("coordinator build failed: %v", err)
	}

	gate, err := writer.Build(
		cfg.Device,
		coord,
		log.New(os.Stdout, "[writer] ", log.LstdFlags),
	)
	if err != nil {
		log.Fatalf("writer build failed: %v", err)
	}

	// --------------------
	// MQTT publisher (optional)
	// --------------------

	if cfg.MQTT.Broker != "" {
		pub, err := publish.New(cfg.MQTT, log.New(os.Stdout, "[mqtt] ", log.LstdFlags))
		if err != nil {
			log.Fatalf("mqtt connect failed: %v", err)
		}
		defer pub.Close()
		go pub.Run(ctx, coord.Subscribe(), interval)
		log.Printf("publishing snapshots to %s under %q", cfg.MQTT.Broker, cfg.MQTT.Prefix)
	}

	// --------------------
	// Poll loop
	// --------------------

	go coord.Run(ctx)

	// --------------------
	// HTTP API
	// --------------------

	router := api.NewRouter(api.NewServer(coord, gate, interval))
	srv := &http.Server{
		Addr:    cfg.HTTP.Listen,
		Handler: handlers.LoggingHandler(os.Stdout, router),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("aerona3d listening on %s (device %s:%d, interval %s)",
		cfg.HTTP.Listen, cfg.Device.Host, cfg.Device.Port, interval)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server failed: %v", err)
	}
}
