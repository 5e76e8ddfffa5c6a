package schedulers

import (
	"log/slog"

	"scheduler-simulator/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: whenever the cpu frees up the
// arrived process with the smallest burst runs to completion. Ties go to the
// earlier arrival, then to submission order.
func ScheduleShortestJobFirst(processes []core.Process) (core.ScheduleResult, error) {
	if err := core.Validate(processes); err != nil {
		return core.ScheduleResult{}, err
	}
	slog.Debug("running sjf algorithm", "processes", len(processes))

	return scheduleNonPreemptive(ShortestJobFirst, processes, shorterJob), nil
}

func shorterJob(a, b core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return a.ArrivalTime < b.ArrivalTime
}
