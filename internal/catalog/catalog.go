// internal/catalog/catalog.go

// Package catalog holds the static Modbus register map of the Grant
// Aerona3 controller: descriptor tables for the input, holding and coil
// banks, raw-value decoding rules and the installation relevance filter.
//
// The tables are versioned, tested data. Register meaning has drifted
// between controller firmware revisions; anyone integrating against a
// real unit should verify addresses against the vendor's Modbus
// documentation before trusting a write.
package catalog

import "sort"

// Well-known input register addresses used by derived-value computation.
const (
	RegReturnTemp          uint16 = 0
	RegCompressorFrequency uint16 = 1
	RegPowerConsumption    uint16 = 3
	RegOutdoorTemp         uint16 = 6
	RegFlowTemp            uint16 = 9
)

// ByBank returns the descriptor table for one bank, ordered by address.
// The returned slice is shared; callers must not mutate it.
func ByBank(b Bank) []Descriptor {
	switch b {
	case Input:
		return inputRegisters
	case Holding:
		return holdingRegisters
	case Coil:
		return coilRegisters
	}
	return nil
}

// All returns every descriptor across the three banks.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(inputRegisters)+len(holdingRegisters)+len(coilRegisters))
	out = append(out, inputRegisters...)
	out = append(out, holdingRegisters...)
	out = append(out, coilRegisters...)
	return out
}

// Lookup finds the descriptor for an address within a bank.
func Lookup(b Bank, addr uint16) (Descriptor, bool) {
	table := ByBank(b)
	i := sort.Search(len(table), func(i int) bool { return table[i].Address >= addr })
	if i < len(table) && table[i].Address == addr {
		return table[i], true
	}
	return Descriptor{}, false
}

// Count is the total number of descriptors. Every published snapshot
// carries exactly this many readings.
func Count() int {
	return len(inputRegisters) + len(holdingRegisters) + len(coilRegisters)
}
