// internal/publish/mqtt.go

// Package publish pushes each published snapshot to MQTT so consumers
// refresh on change instead of polling the HTTP API. Disabled entirely
// when no broker is configured.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/openheat/aerona3/internal/config"
	"github.com/openheat/aerona3/internal/coordinator"
	"github.com/openheat/aerona3/internal/health"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second

	payloadOnline  = "online"
	payloadOffline = "offline"
)

type Publisher struct {
	client mqtt.Client
	prefix string
	logger *log.Logger
}

// New connects to the broker. The availability topic carries a last-will
// so consumers see "offline" if the bridge itself dies.
func New(cfg config.MQTTConfig, logger *log.Logger) (*Publisher, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("publish: broker required")
	}
	if logger == nil {
		logger = log.Default()
	}

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "aerona3-" + uuid.NewString()[:8]
	}

	p := &Publisher{prefix: cfg.Prefix, logger: logger}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetWill(p.topic("availability"), payloadOffline, 0, true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}

	p.client = mqtt.NewClient(opts)
	token := p.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("publish: connect to %s timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("publish: connect to %s: %w", cfg.Broker, err)
	}
	return p, nil
}

// Run consumes the coordinator's subscription channel until ctx is
// cancelled. interval feeds the staleness evaluation for availability.
func (p *Publisher) Run(ctx context.Context, snaps <-chan *coordinator.Snapshot, interval time.Duration) {
	for {
		select {
		case <-ctx.Done():
			p.publishRetained("availability", payloadOffline)
			return
		case snap := <-snaps:
			if snap != nil {
				p.publishSnapshot(snap, interval)
			}
		}
	}
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

func (p *Publisher) publishSnapshot(snap *coordinator.Snapshot, interval time.Duration) {
	code := health.Evaluate(true, snap.Successful, time.Since(snap.Timestamp), interval)
	avail := payloadOffline
	if code.Online() {
		avail = payloadOnline
	}
	p.publishRetained("availability", avail)

	payload, err := json.Marshal(snap)
	if err != nil {
		p.logger.Printf("publish: marshal snapshot: %v", err)
		return
	}
	p.publishRetained("snapshot", string(payload))

	for key, value := range snap.Derived {
		p.publish("derived/"+key, fmt.Sprintf("%.3f", value))
	}
}

func (p *Publisher) publish(suffix, payload string) {
	p.send(suffix, payload, false)
}

func (p *Publisher) publishRetained(suffix, payload string) {
	p.send(suffix, payload, true)
}

func (p *Publisher) send(suffix, payload string, retained bool) {
	token := p.client.Publish(p.topic(suffix), 0, retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		p.logger.Printf("publish: %s timed out", suffix)
		return
	}
	if err := token.Error(); err != nil {
		p.logger.Printf("publish: %s: %v", suffix, err)
	}
}

func (p *Publisher) topic(suffix string) string {
	return p.prefix + "/" + suffix
}
