package schedulers

import (
	"fmt"
	"sort"
	"strings"

	"scheduler-simulator/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	RoundRobin          Algorithm = "round_robin"
	Priority            Algorithm = "priority"
)

// All lists the algorithms in precedence order. Recommendation ties fall
// to the earliest entry.
var All = []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, Priority}

var aliases = map[string]Algorithm{
	"fcfs":        FirstComeFirstServe,
	"sjf":         ShortestJobFirst,
	"rr":          RoundRobin,
	"round_robin": RoundRobin,
	"round-robin": RoundRobin,
	"roundrobin":  RoundRobin,
	"priority":    Priority,
}

func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidInput, name)
}

func (a Algorithm) DisplayName() string {
	switch a {
	case FirstComeFirstServe:
		return "FCFS (First Come First Serve)"
	case ShortestJobFirst:
		return "SJF (Shortest Job First)"
	case RoundRobin:
		return "Round Robin"
	case Priority:
		return "Priority Scheduling"
	}
	return string(a)
}

// Precedence is the position of a in All, or len(All) for unknown names.
func (a Algorithm) Precedence() int {
	for i, known := range All {
		if known == a {
			return i
		}
	}
	return len(All)
}

// Simulate dispatches to the simulator for a. quantum is only read by Round Robin.
func Simulate(a Algorithm, processes []core.Process, quantum int) (core.ScheduleResult, error) {
	switch a {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, quantum)
	case Priority:
		return SchedulePriority(processes)
	}
	return core.ScheduleResult{}, fmt.Errorf("%w: unknown algorithm %q", core.ErrInvalidInput, a)
}

// byArrival returns a copy of processes sorted by arrival time. The sort is
// stable so equal arrivals keep submission order.
func byArrival(processes []core.Process) []core.Process {
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return jobs
}
