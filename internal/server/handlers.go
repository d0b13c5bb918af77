package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/tspbb/internal/api"
	"github.com/katalvlaran/tspbb/internal/cache"
	"github.com/katalvlaran/tspbb/internal/input"
	"github.com/katalvlaran/tspbb/internal/metrics"
	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

// StatusClientClosedRequest marks a solve abandoned by the client. Nothing
// reaches the client; it keeps logs and metrics apart from real 200s.
const StatusClientClosedRequest = 499

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	logger := s.reqLogger(r)

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	var req api.SolveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, r, http.StatusBadRequest, "malformed JSON: "+err.Error())
		return
	}

	rows := input.FromNullable(req.Matrix)
	if err := s.checkRows(rows); err != nil {
		metrics.SolvesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		s.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	key := cache.SolveKey(s.cfg.Cache.Prefix, rows, s.cfg.Frontier, s.cfg.MaxNodes)
	if resp, ok := s.cached(r.Context(), key); ok {
		logger.Debug("cache hit", "n", len(rows))
		writeJSON(w, http.StatusOK, resp)
		return
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		s.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx := r.Context()
	if s.cfg.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SolveTimeout)
		defer cancel()
	}

	opts := s.cfg.SolveOptions()
	opts.OnIncumbent = func(cost float64, tour []int) {
		logger.Debug("incumbent", "cost", cost, "tour", tsp.FormatTour(tour))
	}

	res, err := tsp.SolveContext(ctx, m, opts)
	metrics.ObserveSolve(res)
	resp := api.FromResult(res)

	switch {
	case err == nil, errors.Is(err, tsp.ErrNodeBudget):
		logger.Info("solved",
			"n", len(rows),
			"distance", resp.Distance,
			"optimal", res.Optimal,
			"expanded", res.Stats.Expanded,
			"elapsed", res.Stats.Elapsed,
		)
		s.store(r.Context(), key, resp)
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, tsp.ErrTimeLimit):
		logger.Warn("solve deadline", "n", len(rows), "found", res.Found, "expanded", res.Stats.Expanded)
		writeJSON(w, http.StatusGatewayTimeout, resp)
	case errors.Is(err, context.Canceled):
		logger.Info("client went away", "expanded", res.Stats.Expanded)
		w.WriteHeader(StatusClientClosedRequest)
	default:
		s.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	}
}

// checkRows applies the API-boundary checks before any solver work.
func (s *Server) checkRows(rows [][]float64) error {
	if len(rows) > s.cfg.MaxCities {
		return fmt.Errorf("too many cities: %d > %d", len(rows), s.cfg.MaxCities)
	}
	return tsp.ValidateRows(rows)
}

func (s *Server) cached(ctx context.Context, key string) (api.SolveResponse, bool) {
	var resp api.SolveResponse
	data, hit, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.CacheLookups.WithLabelValues("error").Inc()
		s.logger.Warn("cache get failed", "err", err)
		return resp, false
	case !hit:
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return resp, false
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		_ = s.cache.Delete(ctx, key)
		return resp, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	resp.Cached = true

	return resp, true
}

func (s *Server) store(ctx context.Context, key string, resp api.SolveResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.Cache.TTL); err != nil {
		s.logger.Warn("cache set failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg, RequestID: requestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
