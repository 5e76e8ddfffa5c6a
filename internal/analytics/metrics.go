package analytics

import (
	"fmt"

	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/util"
)

// Metrics summarizes one schedule result. Throughput is processes completed
// per time unit of makespan.
type Metrics struct {
	AvgWaitingTime    float64
	AvgTurnaroundTime float64
	AvgResponseTime   float64
	Throughput        float64
	CpuUtilization    float64
	Makespan          int
	BusyTime          int
	IdleTime          int
	ContextSwitches   int
}

// Aggregate reduces a schedule result to summary metrics. It does not
// modify result.
func Aggregate(result core.ScheduleResult) (Metrics, error) {
	details := result.Ordered()
	if len(details) == 0 {
		return Metrics{}, fmt.Errorf("%w: algorithm %q", core.ErrEmptyResult, result.Algorithm)
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)
	cpu := result.Cpu()

	m := Metrics{
		AvgWaitingTime:    averageWaitingTime,
		AvgTurnaroundTime: averageTurnAroundTime,
		AvgResponseTime:   averageResponseTime,
		Makespan:          cpu.TotalTime,
		BusyTime:          cpu.BusyTime,
		IdleTime:          cpu.IdleTime,
		ContextSwitches:   contextSwitches(result.Timeline),
	}
	if cpu.TotalTime > 0 {
		m.Throughput = float64(len(details)) / float64(cpu.TotalTime)
		m.CpuUtilization = float64(cpu.BusyTime) / float64(cpu.TotalTime)
	}
	return m, nil
}

// contextSwitches counts adjacent slices that belong to different processes.
func contextSwitches(timeline []core.ScheduleEntry) int {
	var switches int
	for i := 1; i < len(timeline); i++ {
		if timeline[i].ProcessID != timeline[i-1].ProcessID {
			switches++
		}
	}
	return switches
}
