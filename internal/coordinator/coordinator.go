// internal/coordinator/coordinator.go

// Package coordinator drives the poll cycle against one heat pump:
// connect, read every relevant register individually, decode, synthesize
// derived values, publish one immutable snapshot, disconnect. Consumers
// read the published snapshot; they never touch the transport.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openheat/aerona3/internal/catalog"
	"github.com/openheat/aerona3/internal/transport"
)

const notRelevantReason = "not relevant to configured system"

// Coordinator owns the poll schedule and the current snapshot for one
// device. One loop goroutine; register reads are sequential because the
// device processes one transaction at a time.
type Coordinator struct {
	dial   Dialer
	logger *log.Logger

	// pollMu serializes cycles. TryLock makes an overlapping manual
	// refresh a no-op instead of a second in-flight poll.
	pollMu sync.Mutex

	mu       sync.RWMutex
	cfg      Config
	current  *Snapshot
	lastOK   bool
	failures int
	subs     []chan *Snapshot

	refresh chan struct{}
}

// New creates a coordinator with the given dialer. The dialer is invoked
// once per cycle and once per write; connections are never held open
// between cycles.
func New(cfg Config, dial Dialer, logger *log.Logger) (*Coordinator, error) {
	if dial == nil {
		return nil, errors.New("coordinator: dialer required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("coordinator: interval must be > 0")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{
		dial:    dial,
		logger:  logger,
		cfg:     cfg,
		refresh: make(chan struct{}, 1),
	}, nil
}

// Run drives the poll schedule until ctx is cancelled. A cycle in flight
// when ctx falls is allowed to finish and publish; half-written snapshots
// do not exist in this design, but a silently dropped one would still
// leave consumers stale for a full interval.
func (c *Coordinator) Run(ctx context.Context) {
	c.Poll()

	for {
		timer := time.NewTimer(c.interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			c.Poll()
		case <-c.refresh:
			timer.Stop()
			// After a failed connect, wait out the full interval
			// instead of hammering the device.
			if c.LastUpdateSuccessful() {
				c.Poll()
			}
		}
	}
}

// RequestRefresh asks for an accelerated cycle, typically after a write.
// Requests are coalesced: one queued at a time, and a poll already in
// flight satisfies any request made while it runs.
func (c *Coordinator) RequestRefresh() {
	select {
	case c.refresh <- struct{}{}:
	default:
	}
}

// Poll runs one cycle now. Returns false if a cycle was already in
// flight, in which case that cycle's snapshot satisfies the caller.
func (c *Coordinator) Poll() bool {
	if !c.pollMu.TryLock() {
		return false
	}
	defer c.pollMu.Unlock()

	snap := c.pollCycle(c.config())
	c.publish(snap)

	// A refresh requested while this cycle ran is satisfied by it.
	select {
	case <-c.refresh:
	default:
	}
	return true
}

// Snapshot returns the current published snapshot, or nil before the
// first cycle. Snapshots are immutable; callers may hold them freely.
func (c *Coordinator) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// LastUpdateSuccessful reports whether the most recent cycle reached the
// device. Independent of per-register availability.
func (c *Coordinator) LastUpdateSuccessful() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastOK
}

// ConsecutiveFailures counts failed cycles since the last success.
func (c *Coordinator) ConsecutiveFailures() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.failures
}

// Subscribe returns a channel that receives each published snapshot.
// Slow consumers see the latest snapshot only; delivery never blocks
// the poll loop.
func (c *Coordinator) Subscribe() <-chan *Snapshot {
	ch := make(chan *Snapshot, 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// Reconfigure replaces the runtime configuration. The next cycle picks
// it up; a cycle in flight finishes under the old one.
func (c *Coordinator) Reconfigure(cfg Config) error {
	if cfg.Interval <= 0 {
		return errors.New("coordinator: interval must be > 0")
	}
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
	return nil
}

func (c *Coordinator) config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func (c *Coordinator) interval() time.Duration {
	return c.config().Interval
}

// ---- one poll cycle ----

func (c *Coordinator) pollCycle(cfg Config) *Snapshot {
	conn, err := c.dial()
	if err != nil {
		c.logger.Printf("coordinator: connect failed: %v", err)
		return c.failedSnapshot(fmt.Sprintf("connection failed: %v", err))
	}
	defer conn.Close()

	readings := make(map[string]Reading, catalog.Count())

	// Relevance is recomputed every cycle; the subsystem selection can
	// change between cycles.
	for _, bank := range []catalog.Bank{catalog.Input, catalog.Holding, catalog.Coil} {
		for _, d := range catalog.ByBank(bank) {
			if !catalog.Relevant(d, cfg.Subsystems) {
				readings[d.Key()] = skippedReading(d)
				continue
			}
			readings[d.Key()] = c.readOne(conn, d)
		}
	}

	return &Snapshot{
		ID:         uuid.NewString(),
		Readings:   readings,
		Derived:    derive(collectDeriveInputs(readings), cfg),
		Timestamp:  time.Now(),
		Successful: true,
	}
}

// readOne performs one Modbus transaction. One transaction per address
// on purpose: the maps are sparse and the device rejects block reads
// spanning unimplemented gaps, so a single bad address must not take a
// whole block with it.
func (c *Coordinator) readOne(conn Conn, d catalog.Descriptor) Reading {
	r := Reading{
		Address: d.Address,
		Bank:    d.Bank,
		Name:    d.Name,
		Unit:    d.Unit,
	}

	switch d.Bank {
	case catalog.Coil:
		on, err := conn.ReadCoil(d.Address)
		if err != nil {
			return c.unavailable(r, d, err)
		}
		r.On = on
		if on {
			r.Raw, r.Value = 1, 1
		}
	default:
		var raw uint16
		var err error
		if d.Bank == catalog.Input {
			raw, err = conn.ReadInput(d.Address)
		} else {
			raw, err = conn.ReadHolding(d.Address)
		}
		if err != nil {
			return c.unavailable(r, d, err)
		}
		r.Raw = catalog.SignCorrect(raw)
		r.Value = d.Decode(raw)
		if d.EnumMap != nil {
			r.Label = d.EnumLabel(int(r.Raw))
		}
	}

	r.Available = true
	return r
}

func (c *Coordinator) unavailable(r Reading, d catalog.Descriptor, err error) Reading {
	if errors.Is(err, transport.ErrRegister) {
		c.logger.Printf("coordinator: %s %d unavailable: %v", d.Bank, d.Address, err)
	} else {
		c.logger.Printf("coordinator: %s %d read failed: %v", d.Bank, d.Address, err)
	}
	r.Available = false
	r.Error = err.Error()
	return r
}

func skippedReading(d catalog.Descriptor) Reading {
	return Reading{
		Address:   d.Address,
		Bank:      d.Bank,
		Name:      d.Name,
		Unit:      d.Unit,
		Available: false,
		Error:     notRelevantReason,
	}
}

// failedSnapshot keeps the previous cycle's values visible but marks
// every reading unavailable. Stale-but-present beats wiped.
func (c *Coordinator) failedSnapshot(reason string) *Snapshot {
	prev := c.Snapshot()

	readings := make(map[string]Reading, catalog.Count())
	var derived map[string]float64

	for _, d := range catalog.All() {
		r := Reading{
			Address: d.Address,
			Bank:    d.Bank,
			Name:    d.Name,
			Unit:    d.Unit,
		}
		if prev != nil {
			if old, ok := prev.Readings[d.Key()]; ok {
				r = old
			}
		}
		r.Available = false
		r.Error = reason
		readings[d.Key()] = r
	}
	if prev != nil {
		derived = prev.Derived
	}

	return &Snapshot{
		ID:         uuid.NewString(),
		Readings:   readings,
		Derived:    derived,
		Timestamp:  time.Now(),
		Successful: false,
	}
}

// publish swaps in the new snapshot and notifies subscribers. A single
// reference replace; readers never see a partial snapshot.
func (c *Coordinator) publish(snap *Snapshot) {
	c.mu.Lock()
	c.current = snap
	c.lastOK = snap.Successful
	if snap.Successful {
		c.failures = 0
	} else {
		c.failures++
	}
	subs := make([]chan *Snapshot, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
			// Replace the stale snapshot the consumer never read.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

func inputKey(addr uint16) string {
	return catalog.Key(catalog.Input, addr)
}
