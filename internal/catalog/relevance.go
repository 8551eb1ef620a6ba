// internal/catalog/relevance.go
package catalog

// Relevant reports whether a descriptor is worth polling and exposing for
// an installation with the given subsystem selection. Filtering matches on
// the descriptor's capability tag; the default is included, so an untagged
// descriptor can never silently disappear.
func Relevant(d Descriptor, subsystems map[string]bool) bool {
	switch d.Capability {
	case CapDHW:
		return subsystems[SubsystemDHW]
	case CapZone2:
		return subsystems[SubsystemZone2]
	case CapCooling:
		return subsystems[SubsystemCooling]
	case CapBuffer:
		return subsystems[SubsystemBuffer]
	}
	return true
}

// RelevantSet returns the relevant subset of a descriptor table, in table
// order. Pure function of its inputs.
func RelevantSet(table []Descriptor, subsystems map[string]bool) []Descriptor {
	out := make([]Descriptor, 0, len(table))
	for _, d := range table {
		if Relevant(d, subsystems) {
			out = append(out, d)
		}
	}
	return out
}
