// internal/coordinator/derive_test.go
package coordinator

import (
	"math"
	"testing"

	"github.com/openheat/aerona3/internal/catalog"
)

func readingsWith(values map[uint16]float64) map[string]Reading {
	out := make(map[string]Reading)
	for addr, v := range values {
		out[inputKey(addr)] = Reading{
			Address: addr, Bank: catalog.Input, Value: v, Available: true,
		}
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }

func TestCOPMeasured_ReferenceCase(t *testing.T) {
	// 20 L/min, 7 °C lift, 2 kW in: (20/60 × 4.18 × 7) / 2 ≈ 4.87.
	in := deriveInputs{
		flowTemp:   floatPtr(42.0),
		returnTemp: floatPtr(35.0),
		powerW:     floatPtr(2000),
	}
	cop, ok := copMeasured(20, in, 8000)
	if !ok {
		t.Fatal("expected a COP value")
	}
	if math.Abs(cop-4.8767) > 0.01 {
		t.Errorf("COP = %v, want ≈4.877", cop)
	}
}

func TestCOPMeasured_Guards(t *testing.T) {
	base := func() deriveInputs {
		return deriveInputs{
			flowTemp:   floatPtr(42.0),
			returnTemp: floatPtr(35.0),
			powerW:     floatPtr(2000),
		}
	}

	// Delta-T below the noise floor.
	in := base()
	in.returnTemp = floatPtr(41.5)
	if _, ok := copMeasured(20, in, 8000); ok {
		t.Error("0.5 °C delta-T must be rejected")
	}

	// Delta-T above the sensor-fault ceiling.
	in = base()
	in.returnTemp = floatPtr(15.0)
	if _, ok := copMeasured(20, in, 8000); ok {
		t.Error("27 °C delta-T must be rejected")
	}

	// Power at or below zero.
	in = base()
	in.powerW = floatPtr(0)
	if _, ok := copMeasured(20, in, 8000); ok {
		t.Error("zero power must be rejected")
	}

	// Power beyond the rated maximum is a garbage reading.
	in = base()
	in.powerW = floatPtr(9000)
	if _, ok := copMeasured(20, in, 8000); ok {
		t.Error("power above rated max must be rejected")
	}

	// Negative lift is folded to magnitude (cooling direction).
	in = base()
	in.flowTemp = floatPtr(35.0)
	in.returnTemp = floatPtr(42.0)
	if _, ok := copMeasured(20, in, 8000); !ok {
		t.Error("reversed delta-T should still produce a COP")
	}

	// Missing inputs.
	in = base()
	in.flowTemp = nil
	if _, ok := copMeasured(20, in, 8000); ok {
		t.Error("missing flow temp must be rejected")
	}
}

func TestCOPEstimate_BandsAndClamp(t *testing.T) {
	for _, c := range []struct {
		outdoor float64
		want    float64
	}{
		{12, 4.2},
		{8, 3.8},
		{4, 3.2},
		{0, 2.8},
		{-10, 2.3},
	} {
		in := deriveInputs{outdoorTemp: floatPtr(c.outdoor)}
		cop, ok := copEstimate(in, 8000)
		if !ok {
			t.Fatalf("outdoor %v: expected an estimate", c.outdoor)
		}
		if cop != c.want {
			t.Errorf("outdoor %v: estimate = %v, want %v (band only)", c.outdoor, cop, c.want)
		}
	}

	// Heavy load drags the estimate down but never below the floor.
	in := deriveInputs{outdoorTemp: floatPtr(-10), powerW: floatPtr(8000)}
	cop, _ := copEstimate(in, 8000)
	if cop < copFloor || cop > copCeiling {
		t.Errorf("estimate %v escaped clamp [%v, %v]", cop, copFloor, copCeiling)
	}

	if _, ok := copEstimate(deriveInputs{}, 8000); ok {
		t.Error("no outdoor temperature, no estimate")
	}
}

func TestWeatherCompTarget(t *testing.T) {
	// 35 + (21−13) × 1.5 = 47.
	if got := weatherCompTarget(13); got != 47 {
		t.Errorf("target(13) = %v, want 47", got)
	}
	// Capped at 55.
	if got := weatherCompTarget(-5); got != 55 {
		t.Errorf("target(-5) = %v, want 55", got)
	}
	// At or above indoor target the base flow temp holds.
	if got := weatherCompTarget(21); got != 35 {
		t.Errorf("target(21) = %v, want 35", got)
	}
	if got := weatherCompTarget(30); got != 35 {
		t.Errorf("target(30) = %v, want 35", got)
	}
}

func TestDerive_EstimatedPower(t *testing.T) {
	readings := readingsWith(map[uint16]float64{
		catalog.RegCompressorFrequency: 60,
	})
	out := derive(collectDeriveInputs(readings), Config{})

	if got := out[DerivedEstimatedPowerW]; got != 1800 {
		t.Errorf("estimated power = %v, want 1800", got)
	}

	// Capped at the unit maximum.
	readings = readingsWith(map[uint16]float64{
		catalog.RegCompressorFrequency: 400,
	})
	out = derive(collectDeriveInputs(readings), Config{})
	if got := out[DerivedEstimatedPowerW]; got != maxEstimatedPowerW {
		t.Errorf("estimated power = %v, want cap %v", got, maxEstimatedPowerW)
	}

	// Idle compressor produces no estimate at all.
	readings = readingsWith(map[uint16]float64{
		catalog.RegCompressorFrequency: 0,
	})
	out = derive(collectDeriveInputs(readings), Config{})
	if _, ok := out[DerivedEstimatedPowerW]; ok {
		t.Error("zero frequency must omit the power estimate")
	}
}

func TestDerive_DailyEnergyAndCost(t *testing.T) {
	readings := readingsWith(map[uint16]float64{
		catalog.RegCompressorFrequency: 100, // 3000 W
	})
	out := derive(collectDeriveInputs(readings), Config{TariffRate: 0.30})

	if got := out[DerivedDailyEnergyKWh]; got != 72 {
		t.Errorf("daily energy = %v, want 72", got)
	}
	if got := out[DerivedDailyCost]; math.Abs(got-21.6) > 1e-9 {
		t.Errorf("daily cost = %v, want 21.6", got)
	}
}

func TestDerive_COPKeySelection(t *testing.T) {
	readings := readingsWith(map[uint16]float64{
		catalog.RegFlowTemp:         42,
		catalog.RegReturnTemp:       35,
		catalog.RegOutdoorTemp:      5,
		catalog.RegPowerConsumption: 2000,
	})

	// Flow rate configured: the measured key, never the estimate.
	out := derive(collectDeriveInputs(readings), Config{FlowRateLMin: 20})
	if _, ok := out[DerivedCOP]; !ok {
		t.Error("expected measured COP with a flow rate configured")
	}
	if _, ok := out[DerivedCOPEstimate]; ok {
		t.Error("estimate key must be absent when flow rate is known")
	}

	// No flow rate: estimate only.
	out = derive(collectDeriveInputs(readings), Config{})
	if _, ok := out[DerivedCOP]; ok {
		t.Error("measured COP key must be absent without a flow rate")
	}
	if _, ok := out[DerivedCOPEstimate]; !ok {
		t.Error("expected a COP estimate without a flow rate")
	}
}

func TestDerive_FailuresOmitValueOnly(t *testing.T) {
	// Unavailable readings feed nothing; derive still returns a map.
	readings := map[string]Reading{
		inputKey(catalog.RegOutdoorTemp): {Available: false, Error: "timeout"},
	}
	out := derive(collectDeriveInputs(readings), Config{FlowRateLMin: 20})
	if len(out) != 0 {
		t.Errorf("expected no derived values, got %v", out)
	}
}
