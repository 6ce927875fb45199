package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procsim/procsim/sim"
)

func postJSON(t *testing.T, path string, body any) (int, []byte) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := New().Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	return resp.StatusCode, data
}

func TestSchedule_ValidRequest_ReturnsResult(t *testing.T) {
	// GIVEN the canonical FCFS process set
	status, body := postJSON(t, "/api/v1/schedule", ScheduleRequest{
		Algorithm: sim.AlgorithmFCFS,
		Processes: []ProcessInput{
			{PID: 1, ArrivalTime: 0, BurstTime: 4},
			{PID: 2, ArrivalTime: 1, BurstTime: 3},
			{PID: 3, ArrivalTime: 2, BurstTime: 1},
		},
	})

	// THEN the response carries the full result
	assert.Equal(t, 200, status)
	var res sim.Result
	assert.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, sim.AlgorithmFCFS, res.Algorithm)
	assert.Equal(t, int64(8), res.Summary.TotalTime)
	assert.Len(t, res.Timeline, 3)
	assert.Len(t, res.PerProcess, 3)
}

func TestSchedule_UnknownAlgorithm_BadRequest(t *testing.T) {
	status, body := postJSON(t, "/api/v1/schedule", ScheduleRequest{
		Algorithm: "mlfq",
		Processes: []ProcessInput{{PID: 1, BurstTime: 1}},
	})

	assert.Equal(t, 400, status)
	assert.Contains(t, string(body), "unknown algorithm")
}

func TestSchedule_MissingAlgorithm_BadRequest(t *testing.T) {
	status, _ := postJSON(t, "/api/v1/schedule", ScheduleRequest{
		Processes: []ProcessInput{{PID: 1, BurstTime: 1}},
	})

	assert.Equal(t, 400, status)
}

func TestSchedule_InvalidProcess_BadRequest(t *testing.T) {
	// burst_time 0 violates the data model and rejects the record
	status, body := postJSON(t, "/api/v1/schedule", ScheduleRequest{
		Algorithm: sim.AlgorithmFCFS,
		Processes: []ProcessInput{{PID: 1, BurstTime: 0}},
	})

	assert.Equal(t, 400, status)
	assert.Contains(t, string(body), "invalid process")
}

func TestCompare_ReturnsOneResultPerAlgorithm(t *testing.T) {
	status, body := postJSON(t, "/api/v1/compare", ScheduleRequest{
		Quantum: 2,
		Processes: []ProcessInput{
			{PID: 1, ArrivalTime: 0, BurstTime: 5},
			{PID: 2, ArrivalTime: 0, BurstTime: 3},
		},
	})

	assert.Equal(t, 200, status)
	var results []sim.Result
	assert.NoError(t, json.Unmarshal(body, &results))
	assert.Len(t, results, len(sim.Algorithms()))
	for _, res := range results {
		assert.Equal(t, int64(8), res.Summary.TotalTime, res.Algorithm)
	}
}

func TestAlgorithms_ListsRecognizedNames(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/algorithms", nil)
	resp, err := New().Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Algorithms []string `json:"algorithms"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, sim.Algorithms(), body.Algorithms)
}
