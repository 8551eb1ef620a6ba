// internal/writer/writer.go

// Package writer is the write gateway: one dedicated connection per
// write, verify by read-back, then request an accelerated poll so the
// published snapshot catches up. The snapshot is never updated
// optimistically; the next poll is authoritative.
package writer

import (
	"fmt"
	"log"
)

// Conn is the exact contract the gateway uses.
type Conn interface {
	ReadHolding(addr uint16) (uint16, error)
	WriteHolding(addr, value uint16) error
	ReadCoil(addr uint16) (bool, error)
	WriteCoil(addr uint16, on bool) error
	Close() error
}

// Dialer opens one connection, used for exactly one write.
type Dialer func() (Conn, error)

// Refresher is the coordinator surface the gateway needs.
type Refresher interface {
	RequestRefresh()
}

// Gateway performs single-register writes against the device. Callers
// pre-scale physical values to raw integers and check writability against
// the catalog; the gateway validates the raw range only.
type Gateway struct {
	dial    Dialer
	refresh Refresher
	logger  *log.Logger
}

func New(dial Dialer, refresh Refresher, logger *log.Logger) (*Gateway, error) {
	if dial == nil {
		return nil, fmt.Errorf("writer: dialer required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Gateway{dial: dial, refresh: refresh, logger: logger}, nil
}

// WriteHoldingRegister writes one raw value to a holding register and
// verifies it by reading it back. Returns false on any failure; the
// caller's prior state is left unchanged.
func (g *Gateway) WriteHoldingRegister(addr uint16, raw int) bool {
	if raw < 0 || raw > 0xFFFF {
		g.logger.Printf("writer: raw value %d out of uint16 range for register %d", raw, addr)
		return false
	}
	value := uint16(raw)

	conn, err := g.dial()
	if err != nil {
		g.logger.Printf("writer: connect failed writing register %d=%d: %v", addr, raw, err)
		return false
	}
	defer conn.Close()

	if err := conn.WriteHolding(addr, value); err != nil {
		g.logger.Printf("writer: write register %d=%d failed: %v", addr, raw, err)
		return false
	}

	got, err := conn.ReadHolding(addr)
	if err != nil {
		g.logger.Printf("writer: verify register %d failed: %v", addr, err)
		return false
	}
	if got != value {
		g.logger.Printf("writer: verify register %d mismatch: wrote %d, read %d", addr, value, got)
		return false
	}

	g.requestRefresh()
	return true
}

// WriteCoil writes one coil and verifies it by reading it back.
func (g *Gateway) WriteCoil(addr uint16, on bool) bool {
	conn, err := g.dial()
	if err != nil {
		g.logger.Printf("writer: connect failed writing coil %d=%t: %v", addr, on, err)
		return false
	}
	defer conn.Close()

	if err := conn.WriteCoil(addr, on); err != nil {
		g.logger.Printf("writer: write coil %d=%t failed: %v", addr, on, err)
		return false
	}

	got, err := conn.ReadCoil(addr)
	if err != nil {
		g.logger.Printf("writer: verify coil %d failed: %v", addr, err)
		return false
	}
	if got != on {
		g.logger.Printf("writer: verify coil %d mismatch: wrote %t, read %t", addr, on, got)
		return false
	}

	g.requestRefresh()
	return true
}

func (g *Gateway) requestRefresh() {
	if g.refresh != nil {
		g.refresh.RequestRefresh()
	}
}
