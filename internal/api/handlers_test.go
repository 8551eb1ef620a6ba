// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/openheat/aerona3/internal/coordinator"
)

type fakeCoordinator struct {
	snap     *coordinator.Snapshot
	lastOK   bool
	failures int
}

func (f *fakeCoordinator) Snapshot() *coordinator.Snapshot { return f.snap }
func (f *fakeCoordinator) LastUpdateSuccessful() bool      { return f.lastOK }
func (f *fakeCoordinator) ConsecutiveFailures() int        { return f.failures }

type fakeWriter struct {
	holdingAddr uint16
	holdingRaw  int
	coilAddr    uint16
	coilOn      bool
	calls       int
	fail        bool
}

func (f *fakeWriter) WriteHoldingRegister(addr uint16, raw int) bool {
	f.calls++
	f.holdingAddr, f.holdingRaw = addr, raw
	return !f.fail
}

func (f *fakeWriter) WriteCoil(addr uint16, on bool) bool {
	f.calls++
	f.coilAddr, f.coilOn = addr, on
	return !f.fail
}

func serve(t *testing.T, coord *fakeCoordinator, gate *fakeWriter, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(NewServer(coord, gate, 30*time.Second))
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func freshSnapshot() *coordinator.Snapshot {
	return &coordinator.Snapshot{
		ID:         "test-snapshot",
		Readings:   map[string]coordinator.Reading{},
		Timestamp:  time.Now(),
		Successful: true,
	}
}

func TestHealth(t *testing.T) {
	// Before the first poll the state is unknown, not an error.
	rec := serve(t, &fakeCoordinator{}, &fakeWriter{}, "GET", "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 before first snapshot", rec.Code)
	}
	var boot map[string]any
	json.NewDecoder(rec.Body).Decode(&boot)
	if boot["status"] != "unknown" {
		t.Errorf("boot health status = %v, want unknown", boot["status"])
	}

	// Fresh snapshot, last cycle good: 200.
	coord := &fakeCoordinator{snap: freshSnapshot(), lastOK: true}
	rec = serve(t, coord, &fakeWriter{}, "GET", "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("bad health body: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("health status = %v, want ok", payload["status"])
	}

	// Device unreachable: error, 503, failures surfaced.
	coord = &fakeCoordinator{snap: freshSnapshot(), lastOK: false, failures: 3}
	rec = serve(t, coord, &fakeWriter{}, "GET", "/api/v1/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when device unreachable", rec.Code)
	}
	json.NewDecoder(rec.Body).Decode(&payload)
	if payload["consecutive_failures"] != float64(3) {
		t.Errorf("consecutive_failures = %v, want 3", payload["consecutive_failures"])
	}
}

func TestSnapshot(t *testing.T) {
	rec := serve(t, &fakeCoordinator{}, &fakeWriter{}, "GET", "/api/v1/snapshot", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 before first snapshot", rec.Code)
	}

	coord := &fakeCoordinator{snap: freshSnapshot(), lastOK: true}
	rec = serve(t, coord, &fakeWriter{}, "GET", "/api/v1/snapshot", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload struct {
		Snapshot             coordinator.Snapshot `json:"snapshot"`
		LastUpdateSuccessful bool                 `json:"last_update_successful"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("bad snapshot body: %v", err)
	}
	if payload.Snapshot.ID != "test-snapshot" || !payload.LastUpdateSuccessful {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestRegisters(t *testing.T) {
	rec := serve(t, &fakeCoordinator{}, &fakeWriter{}, "GET", "/api/v1/registers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var regs []registerInfo
	if err := json.NewDecoder(rec.Body).Decode(&regs); err != nil {
		t.Fatalf("bad registers body: %v", err)
	}
	if len(regs) == 0 {
		t.Fatal("no registers listed")
	}
	for i := 1; i < len(regs); i++ {
		if regs[i].Bank < regs[i-1].Bank {
			t.Fatal("registers not sorted by bank")
		}
		if regs[i].Bank == regs[i-1].Bank && regs[i].Address <= regs[i-1].Address {
			t.Fatal("registers not sorted by address within bank")
		}
	}
}

func TestFaults(t *testing.T) {
	rec := serve(t, &fakeCoordinator{}, &fakeWriter{}, "GET", "/api/v1/faults", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var faults []faultCode
	if err := json.NewDecoder(rec.Body).Decode(&faults); err != nil {
		t.Fatalf("bad faults body: %v", err)
	}
	if len(faults) != 16 {
		t.Fatalf("%d fault codes listed, want 16", len(faults))
	}
	if faults[0].Code != 0 || faults[0].Label != "No Error" {
		t.Errorf("first fault = %+v, want 0/No Error", faults[0])
	}
	for i := 1; i < len(faults); i++ {
		if faults[i].Code <= faults[i-1].Code {
			t.Fatal("fault codes not sorted")
		}
	}
}

func TestWriteHolding_ScalesValue(t *testing.T) {
	gate := &fakeWriter{}
	coord := &fakeCoordinator{snap: freshSnapshot(), lastOK: true}

	// Holding 2 has scale 0.1: physical 45.0 is raw 450.
	rec := serve(t, coord, gate, "POST", "/api/v1/holding/2", `{"value": 45.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gate.holdingAddr != 2 || gate.holdingRaw != 450 {
		t.Errorf("gateway got addr=%d raw=%d, want 2/450", gate.holdingAddr, gate.holdingRaw)
	}
}

func TestWriteHolding_NegativeSetpoint(t *testing.T) {
	gate := &fakeWriter{}
	coord := &fakeCoordinator{snap: freshSnapshot(), lastOK: true}

	// Holding 34's factory default is -5 °C; it must reach the gateway as
	// the two's-complement wire word.
	rec := serve(t, coord, gate, "POST", "/api/v1/holding/34", `{"value": -5.0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gate.holdingAddr != 34 || gate.holdingRaw != 65486 {
		t.Errorf("gateway got addr=%d raw=%d, want 34/65486", gate.holdingAddr, gate.holdingRaw)
	}
}

func TestWriteHolding_Errors(t *testing.T) {
	coord := &fakeCoordinator{snap: freshSnapshot(), lastOK: true}

	// Unknown address.
	gate := &fakeWriter{}
	rec := serve(t, coord, gate, "POST", "/api/v1/holding/50", `{"value": 1}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown register: status = %d, want 404", rec.Code)
	}

	// Malformed body.
	rec = serve(t, coord, gate, "POST", "/api/v1/holding/2", `{"valve": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}

	// Encodes past uint16.
	rec = serve(t, coord, gate, "POST", "/api/v1/holding/2", `{"value": 99999}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("out-of-range value: status = %d, want 422", rec.Code)
	}
	if gate.calls != 0 {
		t.Errorf("rejected requests reached the gateway %d times", gate.calls)
	}

	// Address that does not parse as uint16.
	rec = serve(t, coord, gate, "POST", "/api/v1/holding/70000", `{"value": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized address: status = %d, want 400", rec.Code)
	}

	// Device refuses the write.
	gate = &fakeWriter{fail: true}
	rec = serve(t, coord, gate, "POST", "/api/v1/holding/2", `{"value": 45}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("gateway failure: status = %d, want 502", rec.Code)
	}
}

func TestWriteCoil(t *testing.T) {
	coord := &fakeCoordinator{snap: freshSnapshot(), lastOK: true}
	gate := &fakeWriter{}

	rec := serve(t, coord, gate, "POST", "/api/v1/coil/3", `{"on": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if gate.coilAddr != 3 || !gate.coilOn {
		t.Errorf("gateway got addr=%d on=%t, want 3/true", gate.coilAddr, gate.coilOn)
	}

	rec = serve(t, coord, gate, "POST", "/api/v1/coil/42", `{"on": true}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown coil: status = %d, want 404", rec.Code)
	}

	rec = serve(t, coord, gate, "POST", "/api/v1/coil/3", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing field: status = %d, want 400", rec.Code)
	}
}
