// internal/transport/client.go

// Package transport wraps goburrow/modbus with the single-register
// read/write surface the coordinator and write gateway need, plus the
// unit-identifier probe some Modbus TCP gateways require.
package transport

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"
)

// ErrRegister marks a device-level exception response: the register is
// unavailable but the transport is healthy. Callers must treat it as a
// per-register failure and keep going.
var ErrRegister = errors.New("register unavailable")

// coilOn is the FC5 wire encoding for "on".
const coilOn uint16 = 0xFF00

type Config struct {
	Endpoint string // host:port
	UnitID   uint8
	Timeout  time.Duration
}

// Conn is one live Modbus TCP connection. Not safe for concurrent use;
// the device processes one transaction at a time anyway.
type Conn struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
	unitID  uint8
}

// Dial connects and resolves the unit-identifier convention. Older
// gateways expect the configured slave id in the MBAP unit field; newer
// ones only answer 0xFF and drop everything else on the floor. Probing
// here keeps a wrong guess from making every later read fail silently.
func Dial(cfg Config) (*Conn, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("transport: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("transport: connect %s: %w", cfg.Endpoint, err)
	}

	c := &Conn{
		handler: h,
		client:  modbus.NewClient(h),
		unitID:  cfg.UnitID,
	}

	if err := c.probeUnitID(); err != nil {
		h.Close()
		return nil, err
	}
	return c, nil
}

// probeUnitID issues one read with the configured unit id and falls back
// to 0xFF if nothing answers. An exception response counts as an answer:
// the device is there, the convention is right.
func (c *Conn) probeUnitID() error {
	_, err := c.client.ReadInputRegisters(0, 1)
	if err == nil || isException(err) {
		return nil
	}

	c.handler.SlaveId = 0xFF
	_, err = c.client.ReadInputRegisters(0, 1)
	if err == nil || isException(err) {
		c.unitID = 0xFF
		return nil
	}

	// Restore the configured id before reporting; the caller may retry.
	c.handler.SlaveId = c.unitID
	return fmt.Errorf("transport: unit id probe failed (tried %d and 255): %w", c.unitID, err)
}

// UnitID reports the unit identifier the device actually answered on.
func (c *Conn) UnitID() uint8 { return c.unitID }

func (c *Conn) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ReadInput reads one input register (FC4).
func (c *Conn) ReadInput(addr uint16) (uint16, error) {
	raw, err := c.client.ReadInputRegisters(addr, 1)
	return firstRegister(raw, err)
}

// ReadHolding reads one holding register (FC3).
func (c *Conn) ReadHolding(addr uint16) (uint16, error) {
	raw, err := c.client.ReadHoldingRegisters(addr, 1)
	return firstRegister(raw, err)
}

// ReadCoil reads one coil (FC1).
func (c *Conn) ReadCoil(addr uint16) (bool, error) {
	raw, err := c.client.ReadCoils(addr, 1)
	if err != nil {
		return false, classify(err)
	}
	if len(raw) < 1 {
		return false, fmt.Errorf("transport: short coil response for %d", addr)
	}
	return raw[0]&0x01 != 0, nil
}

// WriteHolding writes one holding register (FC6).
func (c *Conn) WriteHolding(addr, value uint16) error {
	_, err := c.client.WriteSingleRegister(addr, value)
	return classify(err)
}

// WriteCoil writes one coil (FC5).
func (c *Conn) WriteCoil(addr uint16, on bool) error {
	var v uint16
	if on {
		v = coilOn
	}
	_, err := c.client.WriteSingleCoil(addr, v)
	return classify(err)
}

func firstRegister(raw []byte, err error) (uint16, error) {
	if err != nil {
		return 0, classify(err)
	}
	if len(raw) < 2 {
		return 0, errors.New("transport: short register response")
	}
	return uint16(raw[0])<<8 | uint16(raw[1]), nil
}

// classify folds device exception responses into ErrRegister while
// leaving transport errors untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isException(err) {
		return fmt.Errorf("%w: %v", ErrRegister, err)
	}
	return err
}

func isException(err error) bool {
	var me *modbus.ModbusError
	return errors.As(err, &me)
}
