// internal/coordinator/derive.go
package coordinator

import "github.com/openheat/aerona3/internal/catalog"

// Derivation constants. The power proxy and compensation curve follow the
// controller documentation; the COP bands are a conservative heuristic for
// installations without a flow meter.
const (
	ratedPowerDefaultW = 8000.0
	maxEstimatedPowerW = 8000.0
	wattsPerHundredHz  = 3000.0

	specificHeatWater = 4.18 // kJ/(kg·K)

	minCOPDeltaT = 1.0  // below this the sensors are in the noise
	maxCOPDeltaT = 20.0 // above this a sensor is lying
	copFloor     = 1.8
	copCeiling   = 6.5

	indoorTargetC = 21.0
	baseFlowTempC = 35.0
	curveFactor   = 1.5
	maxFlowTempC  = 55.0
)

// deriveInputs is the subset of decoded readings the formulas consume.
// A nil field means the reading was unavailable this cycle.
type deriveInputs struct {
	flowTemp    *float64
	returnTemp  *float64
	outdoorTemp *float64
	frequencyHz *float64
	powerW      *float64
}

func collectDeriveInputs(readings map[string]Reading) deriveInputs {
	get := func(addr uint16) *float64 {
		r, ok := readings[inputKey(addr)]
		if !ok || !r.Available {
			return nil
		}
		v := r.Value
		return &v
	}
	return deriveInputs{
		flowTemp:    get(catalog.RegFlowTemp),
		returnTemp:  get(catalog.RegReturnTemp),
		outdoorTemp: get(catalog.RegOutdoorTemp),
		frequencyHz: get(catalog.RegCompressorFrequency),
		powerW:      get(catalog.RegPowerConsumption),
	}
}

// derive computes every derived value that has its inputs this cycle.
// A value whose inputs are missing or whose guards trip is omitted;
// nothing here can fail the cycle.
func derive(in deriveInputs, cfg Config) map[string]float64 {
	out := make(map[string]float64)

	rated := cfg.RatedPowerW
	if rated <= 0 {
		rated = ratedPowerDefaultW
	}

	if in.frequencyHz != nil && *in.frequencyHz > 0 {
		est := (*in.frequencyHz / 100) * wattsPerHundredHz
		if est > maxEstimatedPowerW {
			est = maxEstimatedPowerW
		}
		out[DerivedEstimatedPowerW] = est

		daily := est / 1000 * 24
		out[DerivedDailyEnergyKWh] = daily
		if cfg.TariffRate > 0 {
			out[DerivedDailyCost] = daily * cfg.TariffRate
		}
	}

	if cfg.FlowRateLMin > 0 {
		if cop, ok := copMeasured(cfg.FlowRateLMin, in, rated); ok {
			out[DerivedCOP] = cop
		}
	} else if cop, ok := copEstimate(in, rated); ok {
		out[DerivedCOPEstimate] = cop
	}

	if in.outdoorTemp != nil {
		out[DerivedWeatherCompTarget] = weatherCompTarget(*in.outdoorTemp)
	}

	return out
}

// copMeasured computes COP from a known flow rate:
// heat output (kW) = mass flow (kg/s) × 4.18 × |ΔT|, electrical input
// (kW) = power register / 1000. Guards reject sensor noise (ΔT ≤ 1 °C),
// sensor faults (ΔT > 20 °C) and garbage power readings.
func copMeasured(flowLMin float64, in deriveInputs, ratedW float64) (float64, bool) {
	if in.flowTemp == nil || in.returnTemp == nil || in.powerW == nil {
		return 0, false
	}

	deltaT := *in.flowTemp - *in.returnTemp
	if deltaT < 0 {
		deltaT = -deltaT
	}
	if deltaT <= minCOPDeltaT || deltaT > maxCOPDeltaT {
		return 0, false
	}

	powerW := *in.powerW
	if powerW <= 0 || powerW > ratedW {
		return 0, false
	}

	massFlowKgS := flowLMin / 60 // water, 1 kg/L
	heatKW := massFlowKgS * specificHeatWater * deltaT
	return heatKW / (powerW / 1000), true
}

// copEstimate falls back to outdoor-temperature bands when no flow meter
// is fitted, adjusted by load and delta-T factors and clamped. The result
// is an approximation and is published under a separate key.
func copEstimate(in deriveInputs, ratedW float64) (float64, bool) {
	if in.outdoorTemp == nil {
		return 0, false
	}

	var cop float64
	switch outdoor := *in.outdoorTemp; {
	case outdoor >= 10:
		cop = 4.2
	case outdoor >= 7:
		cop = 3.8
	case outdoor >= 2:
		cop = 3.2
	case outdoor >= -2:
		cop = 2.8
	default:
		cop = 2.3
	}

	if in.powerW != nil && *in.powerW > 0 {
		load := *in.powerW / ratedW
		if load > 1 {
			load = 1
		}
		// Lighter compressor load runs closer to the optimum.
		cop *= 1.1 - 0.2*load
	}

	if in.flowTemp != nil && in.returnTemp != nil {
		deltaT := *in.flowTemp - *in.returnTemp
		if deltaT < 0 {
			deltaT = -deltaT
		}
		if deltaT > 0 && deltaT <= maxCOPDeltaT {
			// Wider circuits run hotter flow for the same heat.
			cop *= 1.0 - 0.02*(deltaT-5.0)
		}
	}

	if cop < copFloor {
		cop = copFloor
	}
	if cop > copCeiling {
		cop = copCeiling
	}
	return cop, true
}

// weatherCompTarget computes the compensated target flow temperature,
// capped at the circuit maximum.
func weatherCompTarget(outdoorC float64) float64 {
	if outdoorC >= indoorTargetC {
		return baseFlowTempC
	}
	target := baseFlowTempC + (indoorTargetC-outdoorC)*curveFactor
	if target > maxFlowTempC {
		target = maxFlowTempC
	}
	return target
}
