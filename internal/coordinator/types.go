// internal/coordinator/types.go
package coordinator

import (
	"time"

	"github.com/openheat/aerona3/internal/catalog"
)

// Conn abstracts the Modbus operations one poll cycle needs.
// The coordinator depends on single-register reads only.
type Conn interface {
	ReadInput(addr uint16) (uint16, error)
	ReadHolding(addr uint16) (uint16, error)
	ReadCoil(addr uint16) (bool, error)
	Close() error
}

// Dialer opens one connection. ONE attempt per call; the coordinator
// owns retry pacing.
type Dialer func() (Conn, error)

// Reading is the decoded state of one register for one cycle. A reading
// exists for every catalog descriptor every cycle; a failed or skipped
// read carries Available=false and an explanation, never a missing entry.
type Reading struct {
	Address uint16       `json:"address"`
	Bank    catalog.Bank `json:"-"`

	Name string `json:"name"`
	Unit string `json:"unit,omitempty"`

	Raw   int16   `json:"raw"`             // sign-corrected wire value
	Value float64 `json:"value"`           // Raw after scaling; 0/1 for coils
	On    bool    `json:"on,omitempty"`    // coil state
	Label string  `json:"label,omitempty"` // enum translation, if any

	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// Snapshot is one complete, internally consistent set of readings plus
// derived values. Immutable once published; replaced, never mutated.
type Snapshot struct {
	ID        string             `json:"id"`
	Readings  map[string]Reading `json:"readings"` // key "bank:address"
	Derived   map[string]float64 `json:"derived"`
	Timestamp time.Time          `json:"timestamp"`

	// Successful reports whether the cycle that produced this snapshot
	// reached the device. Per-register availability is independent.
	Successful bool `json:"successful"`
}

// Derived value keys. cop and cop_estimate are deliberately distinct:
// the estimate is a heuristic and must never be mistaken for a
// flow-rate-based measurement.
const (
	DerivedEstimatedPowerW   = "estimated_power_w"
	DerivedCOP               = "cop"
	DerivedCOPEstimate       = "cop_estimate"
	DerivedWeatherCompTarget = "weather_comp_target_c"
	DerivedDailyEnergyKWh    = "daily_energy_kwh"
	DerivedDailyCost         = "daily_cost"
)

// Config is the runtime configuration one coordinator consumes. It is
// read at construction and on Reconfigure; a cycle in flight finishes
// under the config it started with.
type Config struct {
	Interval   time.Duration
	Subsystems map[string]bool

	FlowRateLMin float64 // measured flow rate; 0 means unknown
	RatedPowerW  float64 // unit's rated electrical maximum
	TariffRate   float64 // currency per kWh, for the daily cost estimate
}
