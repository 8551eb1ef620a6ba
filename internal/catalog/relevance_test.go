// internal/catalog/relevance_test.go
package catalog

import "testing"

func TestRelevant_DefaultIncluded(t *testing.T) {
	none := map[string]bool{}
	for _, d := range All() {
		if d.Capability == CapCore && !Relevant(d, none) {
			t.Errorf("core descriptor %s excluded with no subsystems", d.Key())
		}
	}
}

func TestRelevant_PerSubsystem(t *testing.T) {
	dhwTank, _ := Lookup(Input, 16)  // DHW tank temperature
	zone2, _ := Lookup(Holding, 7)   // Zone 2 set point
	cooling, _ := Lookup(Coil, 2)    // cooling enable
	buffer, _ := Lookup(Holding, 99) // buffer set point

	none := map[string]bool{}
	if Relevant(dhwTank, none) || Relevant(zone2, none) || Relevant(cooling, none) || Relevant(buffer, none) {
		t.Error("tagged descriptors must be excluded when their subsystem is unselected")
	}

	if !Relevant(dhwTank, map[string]bool{SubsystemDHW: true}) {
		t.Error("DHW descriptor excluded despite hot_water_cylinder selected")
	}
	if !Relevant(zone2, map[string]bool{SubsystemZone2: true}) {
		t.Error("Zone 2 descriptor excluded despite multiple_heating_zones selected")
	}
	if !Relevant(cooling, map[string]bool{SubsystemCooling: true}) {
		t.Error("cooling descriptor excluded despite cooling_enabled selected")
	}
	if !Relevant(buffer, map[string]bool{SubsystemBuffer: true}) {
		t.Error("buffer descriptor excluded despite buffer_tank selected")
	}
}

// Same inputs, same answer: the filter holds no hidden state.
func TestRelevantSet_Idempotent(t *testing.T) {
	subsystems := map[string]bool{SubsystemDHW: true, SubsystemCooling: true}

	first := RelevantSet(ByBank(Holding), subsystems)
	second := RelevantSet(ByBank(Holding), subsystems)

	if len(first) != len(second) {
		t.Fatalf("set size changed between calls: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Address != second[i].Address {
			t.Fatalf("set order changed at index %d", i)
		}
	}
}

// Every descriptor maps to included or excluded; nothing is dropped by an
// unhandled case.
func TestRelevant_Total(t *testing.T) {
	all := map[string]bool{
		SubsystemDHW:     true,
		SubsystemZone2:   true,
		SubsystemCooling: true,
		SubsystemBuffer:  true,
	}
	for _, d := range All() {
		if !Relevant(d, all) {
			t.Errorf("%s excluded with every subsystem selected", d.Key())
		}
	}
}
