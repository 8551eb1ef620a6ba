// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultPort          = 502
	DefaultUnitID        = 1
	DefaultTimeoutMs     = 5000
	DefaultPollIntervalS = 30
	DefaultRatedPowerW   = 8000
	DefaultTariffRate    = 0.30 // UK standard rate, currency per kWh
	DefaultMQTTPrefix    = "aerona3"
	DefaultHTTPListen    = ":8502"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Device
	if d.Port == 0 {
		d.Port = DefaultPort
	}
	if d.UnitID == 0 {
		d.UnitID = DefaultUnitID
	}
	if d.TimeoutMs == 0 {
		d.TimeoutMs = DefaultTimeoutMs
	}
	if d.PollIntervalS == 0 {
		d.PollIntervalS = DefaultPollIntervalS
	}
	if d.RatedPowerW == 0 {
		d.RatedPowerW = DefaultRatedPowerW
	}
	if d.TariffRate == 0 {
		d.TariffRate = DefaultTariffRate
	}

	if cfg.HTTP.Listen == "" {
		cfg.HTTP.Listen = DefaultHTTPListen
	}
	if cfg.MQTT.Prefix == "" {
		cfg.MQTT.Prefix = DefaultMQTTPrefix
	}
}
