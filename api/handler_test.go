package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-simulator/config"
	"scheduler-simulator/internal/responses"
)

const scenarioBody = `{
	"processes": [
		{"arrival": 0, "burst": 5, "priority": 2},
		{"arrival": 1, "burst": 3, "priority": 1},
		{"arrival": 2, "burst": 8, "priority": 3}
	],
	"quantum": 2
}`

func testConfig() *config.SchedulerConfig {
	return &config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MaxProcesses:          50,
		WaitingWeight:         1,
		TurnaroundWeight:      1,
		AllowOrigins:          "*",
		BodyLimit:             1 << 20,
	}
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSchedule(t *testing.T) {
	app := NewApp(testConfig())
	status, body := post(t, app, "/api/v1/schedule", scenarioBody)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(body, &response))

	assert.Equal(t, "fcfs", response.Recommendation)
	assert.Len(t, response.Results, 4)
	for _, name := range []string{"fcfs", "sjf", "round_robin", "priority"} {
		assert.Contains(t, response.Results, name)
	}

	fcfs := response.Results["fcfs"]
	assert.InDelta(t, 3.33, fcfs.AverageWaitingTime, 0.01)
	assert.InDelta(t, 8.67, fcfs.AverageTurnAroundTime, 0.01)
	assert.InDelta(t, 3.0/16, fcfs.CpuThroughput, 1e-9)
	require.Len(t, fcfs.Details, 3)
	assert.Equal(t, 4, fcfs.Details[1].WaitingTime)

	rr := response.Results["round_robin"]
	assert.Len(t, rr.Timeline, 9)
	assert.Equal(t, 2, response.Quantum)
	assert.NotEmpty(t, response.ID)
}

func TestScheduleDefaultsQuantumFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RoundRobinTimeQuantum = 16
	app := NewApp(cfg)

	status, body := post(t, app, "/api/v1/schedule", `{"processes": [{"arrival": 0, "burst": 5}, {"arrival": 1, "burst": 3}]}`)
	require.Equal(t, http.StatusOK, status, string(body))

	var response responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, 16, response.Quantum)
	assert.Equal(t, response.Results["fcfs"].AverageWaitingTime, response.Results["round_robin"].AverageWaitingTime)
}

func TestAlgorithmRoutes(t *testing.T) {
	routes := map[string]string{
		"/api/v1/fcfs":     "fcfs",
		"/api/v1/sjf":      "sjf",
		"/api/v1/rr":       "round_robin",
		"/api/v1/priority": "priority",
	}
	app := NewApp(testConfig())
	for path, name := range routes {
		t.Run(name, func(t *testing.T) {
			status, body := post(t, app, path, scenarioBody)
			require.Equal(t, http.StatusOK, status, string(body))

			var response responses.ComparisonResponse
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Len(t, response.Results, 1)
			assert.Contains(t, response.Results, name)
			assert.Equal(t, name, response.Recommendation)
		})
	}

	status, body := post(t, app, "/api/v1/all", `{"algorithm": "sjf", "processes": [{"burst": 2}]}`)
	require.Equal(t, http.StatusOK, status)
	var response responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Len(t, response.Results, 4)
}

func TestScheduleWithoutTimeline(t *testing.T) {
	app := NewApp(testConfig())
	status, body := post(t, app, "/api/v1/schedule", `{"include_timeline": false, "processes": [{"burst": 2}, {"burst": 4}]}`)
	require.Equal(t, http.StatusOK, status)

	var response responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(body, &response))
	for _, r := range response.Results {
		assert.Nil(t, r.Timeline)
		assert.Len(t, r.Details, 2)
	}
}

func TestScheduleRejects(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		error string
	}{
		{"malformed json", `{"processes": [`, "invalid request format"},
		{"no processes", `{"processes": []}`, "no processes provided"},
		{"zero burst", `{"processes": [{"arrival": 0, "burst": 0}]}`, "non-positive burst"},
		{"bad quantum", `{"quantum": 0, "processes": [{"burst": 3}]}`, "time quantum must be positive"},
		{"unknown algorithm", `{"algorithm": "lottery", "processes": [{"burst": 3}]}`, "unknown algorithm"},
		{"time overflow", `{"processes": [{"arrival": 9223372036854775800, "burst": 10}]}`, "exceed the limit"},
	}
	app := NewApp(testConfig())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := post(t, app, "/api/v1/schedule", tc.body)
			assert.Equal(t, http.StatusBadRequest, status)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Contains(t, payload["error"], tc.error)
		})
	}
}

func TestScheduleProcessLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxProcesses = 1
	app := NewApp(cfg)

	status, _ := post(t, app, "/api/v1/schedule", `{"processes": [{"burst": 1}, {"burst": 2}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHealth(t *testing.T) {
	app := NewApp(testConfig())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Status         string   `json:"status"`
		DefaultQuantum int      `json:"default_quantum"`
		Algorithms     []string `json:"algorithms"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "running", payload.Status)
	assert.Equal(t, 2, payload.DefaultQuantum)
	assert.Equal(t, []string{"fcfs", "sjf", "round_robin", "priority"}, payload.Algorithms)
}
