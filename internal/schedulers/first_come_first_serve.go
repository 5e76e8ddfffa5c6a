package schedulers

import (
	"log/slog"

	"scheduler-simulator/internal/core"
)

func ScheduleFirstComeFirstServe(processes []core.Process) (core.ScheduleResult, error) {
	if err := core.Validate(processes); err != nil {
		return core.ScheduleResult{}, err
	}
	slog.Debug("running fcfs algorithm", "processes", len(processes))

	result := core.NewScheduleResult(string(FirstComeFirstServe), processes)
	jobs := byArrival(processes)

	clock := jobs[0].ArrivalTime
	for _, job := range jobs {
		if clock < job.ArrivalTime {
			clock = job.ArrivalTime // cpu idles until the next arrival
		}
		result.Run(job, clock, clock+job.BurstTime)
		clock += job.BurstTime
		result.Complete(job, clock)
	}
	return result, nil
}
