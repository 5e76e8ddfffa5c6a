package requests

import (
	"fmt"

	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

// Job is one submitted process. ProcessId defaults to the 1-based position
// in the request.
type Job struct {
	ProcessId *int `json:"process_id,omitempty"`
	Arrival   int  `json:"arrival"`
	Burst     int  `json:"burst"`
	Priority  int  `json:"priority"`
}

type ScheduleRequests struct {
	Processes       []Job  `json:"processes"`
	Algorithm       string `json:"algorithm"`
	Quantum         *int   `json:"quantum,omitempty"`
	IncludeTimeline *bool  `json:"include_timeline,omitempty"`
}

// ToProcesses validates the jobs and converts them to engine processes.
// maxProcesses <= 0 disables the size check.
func (r ScheduleRequests) ToProcesses(maxProcesses int) ([]core.Process, error) {
	if maxProcesses > 0 && len(r.Processes) > maxProcesses {
		return nil, fmt.Errorf("%w: %d processes exceeds the limit of %d", core.ErrInvalidInput, len(r.Processes), maxProcesses)
	}
	processes := make([]core.Process, 0, len(r.Processes))
	for i, job := range r.Processes {
		id := i + 1
		if job.ProcessId != nil {
			id = *job.ProcessId
		}
		processes = append(processes, core.Process{
			ID:          id,
			ArrivalTime: job.Arrival,
			BurstTime:   job.Burst,
			Priority:    job.Priority,
		})
	}
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// Algorithms resolves the selector. An empty selector means "all".
func (r ScheduleRequests) Algorithms() ([]schedulers.Algorithm, error) {
	if r.Algorithm == "" || r.Algorithm == "all" {
		return schedulers.All, nil
	}
	a, err := schedulers.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{a}, nil
}

func (r ScheduleRequests) TimeQuantum(defaultQuantum int) int {
	if r.Quantum == nil {
		return defaultQuantum
	}
	return *r.Quantum
}

func (r ScheduleRequests) WithTimeline() bool {
	return r.IncludeTimeline == nil || *r.IncludeTimeline
}
