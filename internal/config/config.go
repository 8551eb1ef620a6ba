// internal/config/config.go
package config

type Config struct {
	Device DeviceConfig `yaml:"device"`
	HTTP   HTTPConfig   `yaml:"http"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	PollIntervalS int `yaml:"poll_interval_s"`

	// FlowRateLMin is the commissioned circulation flow rate. 0 means no
	// flow meter: COP falls back to the outdoor-temperature estimate.
	FlowRateLMin float64 `yaml:"flow_rate_l_min"`
	RatedPowerW  float64 `yaml:"rated_power_w"`
	TariffRate   float64 `yaml:"tariff_rate"`

	// Subsystems fitted to this installation; registers for anything
	// not listed are skipped and reported as not relevant.
	Subsystems []string `yaml:"subsystems"`
}

// ---- CONSUMER SURFACES ----

type HTTPConfig struct {
	Listen string `yaml:"listen"`
}

type MQTTConfig struct {
	Broker   string `yaml:"broker"` // empty disables publishing
	Prefix   string `yaml:"prefix"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SubsystemSet returns the subsystem selection as a lookup set.
func (d DeviceConfig) SubsystemSet() map[string]bool {
	set := make(map[string]bool, len(d.Subsystems))
	for _, s := range d.Subsystems {
		set[s] = true
	}
	return set
}
