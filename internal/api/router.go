// internal/api/router.go

// Package api is the consumer-facing HTTP surface: read the current
// snapshot, inspect the register catalog, and issue writes. It is a thin
// adapter over the coordinator and write gateway.
package api

import (
	"time"

	"github.com/gorilla/mux"

	"github.com/openheat/aerona3/internal/coordinator"
)

// Coordinator is the read surface the API consumes.
type Coordinator interface {
	Snapshot() *coordinator.Snapshot
	LastUpdateSuccessful() bool
	ConsecutiveFailures() int
}

// Writer is the write surface the API consumes.
type Writer interface {
	WriteHoldingRegister(addr uint16, raw int) bool
	WriteCoil(addr uint16, on bool) bool
}

type Server struct {
	coord    Coordinator
	gate     Writer
	interval time.Duration
}

func NewServer(coord Coordinator, gate Writer, interval time.Duration) *Server {
	return &Server{coord: coord, gate: gate, interval: interval}
}

func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/v1/health", s.healthHandler).Methods("GET")
	r.HandleFunc("/api/v1/snapshot", s.snapshotHandler).Methods("GET")
	r.HandleFunc("/api/v1/registers", s.registersHandler).Methods("GET")
	r.HandleFunc("/api/v1/faults", s.faultsHandler).Methods("GET")
	r.HandleFunc("/api/v1/holding/{addr:[0-9]+}", s.writeHoldingHandler).Methods("POST")
	r.HandleFunc("/api/v1/coil/{addr:[0-9]+}", s.writeCoilHandler).Methods("POST")

	return r
}
