// internal/health/health.go

// Package health derives a device health code from poll outcomes.
// No IO. No side effects.
package health

import "time"

// Code is the device health state exposed on the HTTP health endpoint
// and as the MQTT availability payload.
type Code uint8

// ---- HEALTH CODES ----

// Unknown represents a boot state before the first poll completes.
const Unknown Code = 0

// OK represents a healthy device with a fresh snapshot.
const OK Code = 1

// Error represents a device that failed its last poll.
const Error Code = 2

// Stale represents a device whose last success is too old to trust.
const Stale Code = 3

// staleAfterIntervals is how many missed intervals make a snapshot stale.
const staleAfterIntervals = 3

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case Error:
		return "error"
	case Stale:
		return "stale"
	}
	return "unknown"
}

// Online reports whether consumers should treat the device as reachable.
func (c Code) Online() bool { return c == OK }

// Evaluate computes the health code from the coordinator's last outcome.
// age is time since the last published snapshot; interval is the
// configured poll interval.
func Evaluate(hasSnapshot, lastOK bool, age, interval time.Duration) Code {
	if !hasSnapshot {
		return Unknown
	}
	if !lastOK {
		return Error
	}
	if interval > 0 && age > time.Duration(staleAfterIntervals)*interval {
		return Stale
	}
	return OK
}
