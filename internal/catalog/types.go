// internal/catalog/types.go
package catalog

import "fmt"

// Bank is one of the three Modbus address spaces used by the Aerona3.
type Bank uint8

const (
	Input Bank = iota
	Holding
	Coil
)

func (b Bank) String() string {
	switch b {
	case Input:
		return "input"
	case Holding:
		return "holding"
	case Coil:
		return "coil"
	}
	return fmt.Sprintf("bank(%d)", uint8(b))
}

// Capability tags a descriptor with the installation subsystem it belongs
// to. Relevance filtering matches on tags, never on name substrings.
type Capability uint8

const (
	CapCore Capability = iota // always relevant
	CapDHW                    // hot water cylinder fitted
	CapZone2                  // second heating zone fitted
	CapCooling                // cooling enabled on the controller
	CapBuffer                 // buffer tank fitted
)

// Subsystem selection keys, as they appear in configuration.
const (
	SubsystemDHW     = "hot_water_cylinder"
	SubsystemZone2   = "multiple_heating_zones"
	SubsystemCooling = "cooling_enabled"
	SubsystemBuffer  = "buffer_tank"
)

// Descriptor is the static definition of one register.
// Defined once at process start; never mutated at runtime.
type Descriptor struct {
	Address     uint16
	Bank        Bank
	Name        string
	Description string
	Unit        string
	Scale       float64
	Signed      bool
	Writable    bool
	Capability  Capability

	// EnumMap translates raw integers to human labels for registers that
	// hold enumerated modes. Nil for continuous values.
	EnumMap map[int]string
}

// Key formats the snapshot map key for a register, "bank:address".
// The single owner of the key format; consumers building lookup keys
// use this rather than formatting their own.
func Key(b Bank, addr uint16) string {
	return fmt.Sprintf("%s:%d", b, addr)
}

// Key is the snapshot map key for a descriptor, "bank:address".
func (d Descriptor) Key() string {
	return Key(d.Bank, d.Address)
}

// EnumLabel resolves a raw value against the descriptor's enum map.
// A miss is reported, not fatal: callers get "unknown value N".
func (d Descriptor) EnumLabel(raw int) string {
	if d.EnumMap == nil {
		return ""
	}
	if label, ok := d.EnumMap[raw]; ok {
		return label
	}
	return fmt.Sprintf("unknown value %d", raw)
}
