package analytics

import (
	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

// ShortJobThreshold separates short jobs from long ones by burst time.
const ShortJobThreshold = 10

// Workload summarizes the submitted bursts. Hint is a rule of thumb based on
// the job mix alone, independent of any simulation.
type Workload struct {
	AverageBurst float64
	TotalBurst   int
	ShortJobs    int
	LongJobs     int
	Hint         schedulers.Algorithm
	Reason       string
}

func AnalyzeWorkload(processes []core.Process) Workload {
	var w Workload
	for _, p := range processes {
		w.TotalBurst += p.BurstTime
		if p.BurstTime < ShortJobThreshold {
			w.ShortJobs++
		} else {
			w.LongJobs++
		}
	}
	if len(processes) > 0 {
		w.AverageBurst = float64(w.TotalBurst) / float64(len(processes))
	}

	switch {
	case w.ShortJobs > w.LongJobs && w.AverageBurst < 15:
		w.Hint = schedulers.ShortestJobFirst
		w.Reason = "many short jobs benefit from shortest job first"
	case w.LongJobs > w.ShortJobs*2:
		w.Hint = schedulers.Priority
		w.Reason = "long jobs benefit from priority scheduling"
	default:
		w.Hint = schedulers.RoundRobin
		w.Reason = "mixed workload benefits from fair time sharing"
	}
	return w
}
