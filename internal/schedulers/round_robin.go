package schedulers

import (
	"log/slog"

	"scheduler-simulator/internal/core"
)

func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.ScheduleResult, error) {
	if err := core.ValidateQuantum(timeQuantum); err != nil {
		return core.ScheduleResult{}, err
	}
	if err := core.Validate(processes); err != nil {
		return core.ScheduleResult{}, err
	}
	slog.Debug("running roundRobin algorithm", "processes", len(processes), "timeQuantum", timeQuantum)

	result := core.NewScheduleResult(string(RoundRobin), processes)
	jobs := byArrival(processes)

	remaining := make([]int, len(jobs))
	for i, job := range jobs {
		remaining[i] = job.BurstTime
	}

	readyQueue := make([]int, 0, len(jobs))
	next := 0 // first job in arrival order not yet admitted
	clock := jobs[0].ArrivalTime
	admit := func() {
		for next < len(jobs) && jobs[next].ArrivalTime <= clock {
			readyQueue = append(readyQueue, next)
			next++
		}
	}
	admit()

	for completed := 0; completed < len(jobs); {
		if len(readyQueue) == 0 {
			clock = jobs[next].ArrivalTime
			admit()
			continue
		}

		i := readyQueue[0]
		readyQueue = readyQueue[1:]

		slice := min(timeQuantum, remaining[i])
		result.Run(jobs[i], clock, clock+slice)
		clock += slice
		remaining[i] -= slice

		// arrivals during the slice queue up ahead of the preempted process
		admit()
		if remaining[i] > 0 {
			readyQueue = append(readyQueue, i)
			continue
		}
		result.Complete(jobs[i], clock)
		completed++
	}
	return result, nil
}
