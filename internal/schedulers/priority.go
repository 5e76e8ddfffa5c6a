package schedulers

import (
	"log/slog"

	"scheduler-simulator/internal/core"
)

// SchedulePriority runs the arrived process with the lowest priority value
// first. It is non-preemptive: a higher priority arrival waits for the
// running process to finish.
func SchedulePriority(processes []core.Process) (core.ScheduleResult, error) {
	if err := core.Validate(processes); err != nil {
		return core.ScheduleResult{}, err
	}
	slog.Debug("running priority algorithm", "processes", len(processes))

	return scheduleNonPreemptive(Priority, processes, higherPriority), nil
}

func higherPriority(a, b core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}
