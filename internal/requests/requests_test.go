package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

func intPtr(v int) *int { return &v }

func TestParseProcessFileObject(t *testing.T) {
	request, err := ParseProcessFile([]byte(`{
		"algorithm": "rr",
		"quantum": 3,
		"include_timeline": false,
		"processes": [
			{"arrival": 0, "burst": 5, "priority": 2},
			{"arrival": 1, "burst": 3, "priority": 1, "process_id": 42}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "rr", request.Algorithm)
	assert.Equal(t, 3, request.TimeQuantum(2))
	assert.False(t, request.WithTimeline())
	require.Len(t, request.Processes, 2)
	assert.Equal(t, Job{Arrival: 0, Burst: 5, Priority: 2}, request.Processes[0])
	assert.Equal(t, intPtr(42), request.Processes[1].ProcessId)
}

func TestParseProcessFileArray(t *testing.T) {
	request, err := ParseProcessFile([]byte(`[
		{"arrival_time": 2, "burst_time": 4},
		{"burst": 1, "priority": 7}
	]`))
	require.NoError(t, err)

	assert.Equal(t, []Job{{Arrival: 2, Burst: 4}, {Burst: 1, Priority: 7}}, request.Processes)
	assert.Equal(t, 2, request.TimeQuantum(2))
	assert.True(t, request.WithTimeline())
}

func TestParseProcessFileErrors(t *testing.T) {
	cases := map[string]string{
		"not json":           `{"processes": [`,
		"scalar root":        `17`,
		"missing processes":  `{"algorithm": "all"}`,
		"record not object":  `[3]`,
		"missing burst":      `[{"arrival": 1}]`,
		"fractional burst":   `[{"burst": 2.5}]`,
		"string arrival":     `[{"burst": 2, "arrival": "soon"}]`,
		"fractional quantum": `{"quantum": 1.5, "processes": []}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProcessFile([]byte(body))
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

func TestToProcesses(t *testing.T) {
	request := ScheduleRequests{Processes: []Job{
		{Arrival: 0, Burst: 5, Priority: 2},
		{Arrival: 1, Burst: 3, Priority: 1, ProcessId: intPtr(9)},
		{Arrival: 2, Burst: 8, Priority: 3},
	}}
	processes, err := request.ToProcesses(50)
	require.NoError(t, err)

	assert.Equal(t, []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 9, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: 3, ArrivalTime: 2, BurstTime: 8, Priority: 3},
	}, processes)
}

func TestToProcessesRejects(t *testing.T) {
	cases := map[string]ScheduleRequests{
		"empty":        {},
		"zero burst":   {Processes: []Job{{Burst: 0}}},
		"duplicate id": {Processes: []Job{{Burst: 1}, {Burst: 1, ProcessId: intPtr(1)}}},
		"too many":     {Processes: []Job{{Burst: 1}, {Burst: 1}, {Burst: 1}}},
	}
	for name, request := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := request.ToProcesses(2)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}

	_, err := ScheduleRequests{Processes: []Job{{Burst: 1}, {Burst: 1}, {Burst: 1}}}.ToProcesses(0)
	assert.NoError(t, err)
}

func TestAlgorithms(t *testing.T) {
	all, err := ScheduleRequests{}.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, schedulers.All, all)

	all, err = ScheduleRequests{Algorithm: "all"}.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, schedulers.All, all)

	one, err := ScheduleRequests{Algorithm: "priority"}.Algorithms()
	require.NoError(t, err)
	assert.Equal(t, []schedulers.Algorithm{schedulers.Priority}, one)

	_, err = ScheduleRequests{Algorithm: "mlfq"}.Algorithms()
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
