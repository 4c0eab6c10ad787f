package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mkaranasou/elevatorsim/internal/dispatcher"
	"github.com/mkaranasou/elevatorsim/internal/domain"
	"github.com/mkaranasou/elevatorsim/internal/engine"
	"github.com/mkaranasou/elevatorsim/internal/factory"
	"github.com/mkaranasou/elevatorsim/internal/infra/config"
	"github.com/mkaranasou/elevatorsim/internal/report"
)

var tracer = otel.Tracer("elevator-simulator/http")

// requestDTO is one call request as received over the wire.
type requestDTO struct {
	Time   int    `json:"time"`
	ID     string `json:"id"`
	Source int    `json:"source"`
	Dest   int    `json:"dest"`
}

// simulateRequest is POST /v1/simulate's JSON body, grounded on the
// teacher's FloorRequestBody JSON-tagged request shape.
type simulateRequest struct {
	Floors    int          `json:"floors"`
	Elevators int          `json:"elevators"`
	Capacity  int          `json:"capacity"`
	Requests  []requestDTO `json:"requests"`
}

// simulateResponse is the synchronous /v1/simulate result: the
// elevator log, the request log, and summary metrics, per spec.md §6.
type simulateResponse struct {
	ElevatorLog []engine.TickSnapshot `json:"elevator_log"`
	RequestLog  []requestLogEntry     `json:"request_log"`
	Summary     report.Summary        `json:"summary"`
}

type requestLogEntry struct {
	ID          string `json:"id"`
	CallTime    int    `json:"call_time"`
	Source      int    `json:"source"`
	Target      int    `json:"target"`
	PickupTime  int    `json:"pickup_time"`
	DropoffTime int    `json:"dropoff_time"`
	Wait        int    `json:"wait"`
	Total       int    `json:"total"`
	Elevator    string `json:"elevator"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "http.simulate")
	defer span.End()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return
	}

	var body simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body: "+err.Error())
		return
	}

	async := r.URL.Query().Get("async") == "true"
	span.SetAttributes(
		attribute.Int("floors", body.Floors),
		attribute.Int("elevators", body.Elevators),
		attribute.Int("requests", len(body.Requests)),
		attribute.Bool("async", async),
	)

	observed, err := s.buildRun(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if async {
		s.startAsync(observed)
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
		return
	}

	if err := observed.Run(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, renderResult(observed.Engine))
}

// buildRun validates body and assembles a fresh fleet, request list,
// dispatcher, and engine wrapped for tick observation.
func (s *Server) buildRun(body simulateRequest) (*engine.Observed, error) {
	cfg := &config.Config{
		NumberOfFloors:        body.Floors,
		NumberOfElevators:     body.Elevators,
		MaxCapacityOfElevator: body.Capacity,
		InputCSVPath:          "http-request",
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fleet, err := factory.StandardElevatorFactory{}.CreateFleet(cfg)
	if err != nil {
		return nil, err
	}

	if len(body.Requests) == 0 {
		return nil, domain.NewValidationError("no call requests found", nil)
	}

	seen := make(map[string]bool, len(body.Requests))
	requests := make([]*domain.CallRequest, 0, len(body.Requests))
	for _, dto := range body.Requests {
		if seen[dto.ID] {
			return nil, domain.NewValidationError("duplicate request id", nil).WithContext("id", dto.ID)
		}
		seen[dto.ID] = true

		if dto.Time < 0 {
			return nil, domain.NewValidationError("call time must be non-negative", nil).WithContext("id", dto.ID)
		}
		if dto.Source <= 0 || dto.Dest <= 0 {
			return nil, domain.NewValidationError("floors must be positive", nil).WithContext("id", dto.ID)
		}
		if dto.Source == dto.Dest {
			return nil, domain.NewValidationError("source and dest must differ", nil).WithContext("id", dto.ID)
		}

		requests = append(requests, domain.NewCallRequest(dto.ID, dto.Time, domain.NewFloor(dto.Source), domain.NewFloor(dto.Dest)))
	}

	eng := engine.New(fleet, requests, dispatcher.New())
	return engine.NewObserved(eng, 256), nil
}

// startAsync runs observed in the background and records the fleet as
// the server's current run, so /ws/ticks and /health can observe it.
func (s *Server) startAsync(observed *engine.Observed) {
	s.mu.Lock()
	s.current = observed
	s.runErr = nil
	s.running = true
	s.mu.Unlock()

	go func() {
		err := observed.Run(context.Background())

		s.mu.Lock()
		s.running = false
		s.runErr = err
		s.mu.Unlock()
	}()
}

func renderResult(eng *engine.Engine) simulateResponse {
	requests := eng.RequestLog()
	entries := make([]requestLogEntry, len(requests))
	for i, r := range requests {
		entries[i] = requestLogEntry{
			ID:          r.ID,
			CallTime:    r.CallTime,
			Source:      r.SourceFloor.Value(),
			Target:      r.TargetFloor.Value(),
			PickupTime:  r.PickupTime,
			DropoffTime: r.DropoffTime,
			Wait:        r.WaitTime(),
			Total:       r.TotalTime(),
			Elevator:    r.AssignedElevator,
		}
	}

	return simulateResponse{
		ElevatorLog: eng.ElevatorLog(),
		RequestLog:  entries,
		Summary:     report.Summarize(requests),
	}
}

// apiError is the error envelope for non-2xx JSON responses, trimmed
// from the teacher's APIResponse/APIError pair down to the two fields
// this system's callers actually need.
type apiError struct {
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiError{Error: message, Timestamp: time.Now()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
