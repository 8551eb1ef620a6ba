// internal/writer/builder.go
package writer

import (
	"log"
	"net"
	"strconv"
	"time"

	"github.com/openheat/aerona3/internal/config"
	"github.com/openheat/aerona3/internal/transport"
)

// Build constructs a gateway that opens a dedicated connection per write,
// independent of the poll cycle's connection. A write never shares a
// physical connection with an in-flight read.
func Build(d config.DeviceConfig, refresh Refresher, logger *log.Logger) (*Gateway, error) {
	tcfg := transport.Config{
		Endpoint: net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		UnitID:   d.UnitID,
		Timeout:  time.Duration(d.TimeoutMs) * time.Millisecond,
	}
	dial := func() (Conn, error) {
		return transport.Dial(tcfg)
	}
	return New(dial, refresh, logger)
}
