package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspbb/internal/api"
	"github.com/katalvlaran/tspbb/internal/cache"
	"github.com/katalvlaran/tspbb/internal/config"
	"github.com/katalvlaran/tspbb/internal/metrics"
)

const classic4 = `{"matrix": [[0,10,15,20],[10,0,35,25],[15,35,0,30],[20,25,30,0]]}`

func testServer(t *testing.T, mutate func(*config.Config), c cache.Cache) *httptest.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s := New(cfg, c, log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/solve", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestSolve_Classic(t *testing.T) {
	ts := testServer(t, nil, nil)

	resp, body := post(t, ts, classic4)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	var out api.SolveResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Equal(t, api.Distance{Value: 80, Found: true}, out.Distance)
	require.Equal(t, []int{0, 1, 3, 2, 0}, out.Path)
	require.True(t, out.Optimal)
	require.Equal(t, 10, out.Nodes)
	require.False(t, out.Cached)
}

func TestSolve_NoSolution(t *testing.T) {
	ts := testServer(t, nil, nil)

	resp, body := post(t, ts, `{"matrix": [[0,1,null],[1,0,null],[1,1,0]]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	require.Equal(t, api.NoSolution, raw["distance"])
	require.Nil(t, raw["path"])
	require.Equal(t, true, raw["optimal"])
}

func TestSolve_Rejects(t *testing.T) {
	ts := testServer(t, func(c *config.Config) { c.MaxCities = 3 }, nil)

	cases := map[string]struct {
		body   string
		status int
	}{
		"malformed":     {`{"matrix": [[0,1],`, http.StatusBadRequest},
		"unknown field": {`{"rows": [[0,1],[1,0]]}`, http.StatusBadRequest},
		"empty":         {`{"matrix": []}`, http.StatusUnprocessableEntity},
		"one city":      {`{"matrix": [[0]]}`, http.StatusUnprocessableEntity},
		"ragged":        {`{"matrix": [[0,1],[1]]}`, http.StatusUnprocessableEntity},
		"negative":      {`{"matrix": [[0,-1],[1,0]]}`, http.StatusUnprocessableEntity},
		"too many":      {`{"matrix": [[0,1,1,1],[1,0,1,1],[1,1,0,1],[1,1,1,0]]}`, http.StatusUnprocessableEntity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			resp, body := post(t, ts, tc.body)
			require.Equal(t, tc.status, resp.StatusCode, string(body))

			var e api.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &e))
			require.NotEmpty(t, e.Error)
			require.Equal(t, resp.Header.Get(HeaderRequestID), e.RequestID)
		})
	}
}

func TestSolve_BodyTooLarge(t *testing.T) {
	ts := testServer(t, func(c *config.Config) { c.MaxBodyBytes = 16 }, nil)

	resp, _ := post(t, ts, classic4)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestSolve_DeadlineReturns504(t *testing.T) {
	ts := testServer(t, func(c *config.Config) { c.SolveTimeout = time.Nanosecond }, nil)

	resp, body := post(t, ts, classic4)
	require.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)

	var out api.SolveResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.False(t, out.Optimal)
}

func TestSolve_ClientCanceled(t *testing.T) {
	s := New(config.DefaultConfig(), nil, log.New(io.Discard))
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/solve", "499")
	before := counterValue(t, counter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(classic4)).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, StatusClientClosedRequest, rec.Code)
	require.Zero(t, rec.Body.Len())
	require.Equal(t, before+1, counterValue(t, counter))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestSolve_NodeBudget(t *testing.T) {
	ts := testServer(t, func(c *config.Config) { c.MaxNodes = 1 }, nil)

	resp, body := post(t, ts, classic4)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.SolveResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.False(t, out.Optimal)
	require.Equal(t, 1, out.Nodes)
}

func TestSolve_Cache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	ts := testServer(t, nil, c)

	_, body := post(t, ts, classic4)
	var first api.SolveResponse
	require.NoError(t, json.Unmarshal(body, &first))
	require.False(t, first.Cached)

	_, body = post(t, ts, classic4)
	var second api.SolveResponse
	require.NoError(t, json.Unmarshal(body, &second))
	require.True(t, second.Cached)
	require.Equal(t, first.Distance, second.Distance)
	require.Equal(t, first.Path, second.Path)
}

func TestRequestIDPropagates(t *testing.T) {
	ts := testServer(t, nil, nil)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestRoutes(t *testing.T) {
	ts := testServer(t, nil, nil)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(data), "tspbb_http_requests_total")

	resp, err = http.Get(ts.URL + "/solve")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRecoveryMiddleware(t *testing.T) {
	s := New(config.DefaultConfig(), nil, log.New(io.Discard))
	h := s.requestIDMiddleware(s.recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStartAndShutdown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	s := New(cfg, nil, log.New(io.Discard))

	addr, err := s.Start()
	require.NoError(t, err)

	resp, err := http.Post("http://"+addr+"/solve", "application/json", bytes.NewBufferString(classic4))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))
}
