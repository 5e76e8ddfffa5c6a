package report

import (
	"scheduler-simulator/internal/analytics"
	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

type AlgorithmReport struct {
	Algorithm schedulers.Algorithm
	Schedule  core.ScheduleResult
	Metrics   analytics.Metrics
	Score     float64
}

// ComparisonReport is built per request and never stored.
type ComparisonReport struct {
	ID             string
	Quantum        int
	Processes      []core.Process
	Algorithms     []AlgorithmReport
	Recommendation analytics.Recommendation
	Workload       analytics.Workload
}

func (r *ComparisonReport) Find(a schedulers.Algorithm) (AlgorithmReport, bool) {
	for _, ar := range r.Algorithms {
		if ar.Algorithm == a {
			return ar, true
		}
	}
	return AlgorithmReport{}, false
}
