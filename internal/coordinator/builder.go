// internal/coordinator/builder.go
package coordinator

import (
	"log"
	"net"
	"strconv"
	"time"

	"github.com/openheat/aerona3/internal/config"
	"github.com/openheat/aerona3/internal/transport"
)

// Build constructs a coordinator from device configuration, wiring a
// transport dialer that opens one connection per cycle. Connections are
// deliberately not reused: embedded Modbus servers drop idle sockets, and
// a reconnect per cycle beats chasing stale-socket errors.
func Build(d config.DeviceConfig, logger *log.Logger) (*Coordinator, error) {
	tcfg := transport.Config{
		Endpoint: net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		UnitID:   d.UnitID,
		Timeout:  time.Duration(d.TimeoutMs) * time.Millisecond,
	}
	dial := func() (Conn, error) {
		return transport.Dial(tcfg)
	}

	return New(CoordinatorConfig(d), dial, logger)
}

// CoordinatorConfig maps device configuration to runtime config, for
// reconfiguration without rebuilding the dialer.
func CoordinatorConfig(d config.DeviceConfig) Config {
	return Config{
		Interval:     time.Duration(d.PollIntervalS) * time.Second,
		Subsystems:   d.SubsystemSet(),
		FlowRateLMin: d.FlowRateLMin,
		RatedPowerW:  d.RatedPowerW,
		TariffRate:   d.TariffRate,
	}
}
