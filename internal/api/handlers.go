// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/openheat/aerona3/internal/catalog"
	"github.com/openheat/aerona3/internal/health"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- read surface ----

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	snap := s.coord.Snapshot()

	var age time.Duration
	var snapID string
	if snap != nil {
		age = time.Since(snap.Timestamp)
		snapID = snap.ID
	}
	code := health.Evaluate(snap != nil, s.coord.LastUpdateSuccessful(), age, s.interval)

	status := http.StatusOK
	if code == health.Error {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status":               code.String(),
		"consecutive_failures": s.coord.ConsecutiveFailures(),
		"snapshot_id":          snapID,
		"snapshot_age_s":       age.Seconds(),
	})
}

func (s *Server) snapshotHandler(w http.ResponseWriter, _ *http.Request) {
	snap := s.coord.Snapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot published yet")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot":               snap,
		"last_update_successful": s.coord.LastUpdateSuccessful(),
	})
}

type registerInfo struct {
	Bank        string         `json:"bank"`
	Address     uint16         `json:"address"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Unit        string         `json:"unit,omitempty"`
	Scale       float64        `json:"scale"`
	Signed      bool           `json:"signed"`
	Writable    bool           `json:"writable"`
	Enum        map[int]string `json:"enum,omitempty"`
}

func (s *Server) registersHandler(w http.ResponseWriter, _ *http.Request) {
	all := catalog.All()
	out := make([]registerInfo, 0, len(all))
	for _, d := range all {
		out = append(out, registerInfo{
			Bank:        d.Bank.String(),
			Address:     d.Address,
			Name:        d.Name,
			Description: d.Description,
			Unit:        d.Unit,
			Scale:       d.Scale,
			Signed:      d.Signed,
			Writable:    d.Writable,
			Enum:        d.EnumMap,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bank != out[j].Bank {
			return out[i].Bank < out[j].Bank
		}
		return out[i].Address < out[j].Address
	})
	writeJSON(w, http.StatusOK, out)
}

type faultCode struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

// faultsHandler lists the controller fault-code table so consumers can
// translate the service-menu fault display without carrying their own
// copy of the vendor table.
func (s *Server) faultsHandler(w http.ResponseWriter, _ *http.Request) {
	out := make([]faultCode, 0, len(catalog.ErrorCodes))
	for code, label := range catalog.ErrorCodes {
		out = append(out, faultCode{Code: code, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	writeJSON(w, http.StatusOK, out)
}

// ---- write surface ----

type writeHoldingRequest struct {
	// Value is the physical value; the handler pre-scales it to the raw
	// integer using the descriptor's scale.
	Value *float64 `json:"value"`
}

func (s *Server) writeHoldingHandler(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	desc, found := catalog.Lookup(catalog.Holding, addr)
	if !found {
		writeError(w, http.StatusNotFound, "no such holding register")
		return
	}
	if !desc.Writable {
		writeError(w, http.StatusForbidden, "register is read-only")
		return
	}

	var req writeHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"value\": <number>}")
		return
	}

	raw, fits := desc.Encode(*req.Value)
	if !fits {
		writeError(w, http.StatusUnprocessableEntity, "value out of register range")
		return
	}

	if !s.gate.WriteHoldingRegister(addr, int(raw)) {
		writeError(w, http.StatusBadGateway, "device write failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"written": true, "raw": raw})
}

type writeCoilRequest struct {
	On *bool `json:"on"`
}

func (s *Server) writeCoilHandler(w http.ResponseWriter, r *http.Request) {
	addr, ok := pathAddress(w, r)
	if !ok {
		return
	}

	desc, found := catalog.Lookup(catalog.Coil, addr)
	if !found {
		writeError(w, http.StatusNotFound, "no such coil")
		return
	}
	if !desc.Writable {
		writeError(w, http.StatusForbidden, "coil is read-only")
		return
	}

	var req writeCoilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.On == nil {
		writeError(w, http.StatusBadRequest, "body must be {\"on\": <bool>}")
		return
	}

	if !s.gate.WriteCoil(addr, *req.On) {
		writeError(w, http.StatusBadGateway, "device write failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"written": true, "on": *req.On})
}

func pathAddress(w http.ResponseWriter, r *http.Request) (uint16, bool) {
	raw := mux.Vars(r)["addr"]
	n, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		writeError(w, http.StatusBadRequest, "address out of range")
		return 0, false
	}
	return uint16(n), true
}
