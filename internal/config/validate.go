// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/openheat/aerona3/internal/catalog"
)

// Poll interval bounds, seconds. The lower bound keeps a misconfigured
// installation from hammering an embedded Modbus server.
const (
	MinPollIntervalS = 10
	MaxPollIntervalS = 300
)

var knownSubsystems = map[string]bool{
	catalog.SubsystemDHW:     true,
	catalog.SubsystemZone2:   true,
	catalog.SubsystemCooling: true,
	catalog.SubsystemBuffer:  true,
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.Device

	if d.Host == "" {
		return fmt.Errorf("device: host is required")
	}
	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("device: port %d out of range", d.Port)
	}
	if d.TimeoutMs < 0 {
		return fmt.Errorf("device: timeout_ms must not be negative")
	}

	// 0 means "use the default"; anything else must be in bounds.
	if d.PollIntervalS != 0 &&
		(d.PollIntervalS < MinPollIntervalS || d.PollIntervalS > MaxPollIntervalS) {
		return fmt.Errorf(
			"device: poll_interval_s %d out of range %d-%d",
			d.PollIntervalS, MinPollIntervalS, MaxPollIntervalS,
		)
	}

	if d.FlowRateLMin < 0 {
		return fmt.Errorf("device: flow_rate_l_min must not be negative")
	}
	if d.RatedPowerW < 0 {
		return fmt.Errorf("device: rated_power_w must not be negative")
	}
	if d.TariffRate < 0 {
		return fmt.Errorf("device: tariff_rate must not be negative")
	}

	seen := make(map[string]bool)
	for _, s := range d.Subsystems {
		if !knownSubsystems[s] {
			return fmt.Errorf("device: unknown subsystem %q", s)
		}
		if seen[s] {
			return fmt.Errorf("device: subsystem %q listed twice", s)
		}
		seen[s] = true
	}

	return nil
}
