package schedulers

import "scheduler-simulator/internal/core"

// scheduleNonPreemptive repeatedly picks, among arrived processes that have
// not run, the one for which less reports true against every other candidate,
// and runs it to completion. Candidates are scanned in submission order and
// only a strictly better one replaces the current pick, so remaining ties go
// to the earlier submission.
func scheduleNonPreemptive(algorithm Algorithm, processes []core.Process, less func(a, b core.Process) bool) core.ScheduleResult {
	result := core.NewScheduleResult(string(algorithm), processes)
	done := make([]bool, len(processes))

	clock := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		if p.ArrivalTime < clock {
			clock = p.ArrivalTime
		}
	}

	for completed := 0; completed < len(processes); {
		pick := -1
		nextArrival := -1
		for i, p := range processes {
			if done[i] {
				continue
			}
			if p.ArrivalTime > clock {
				if nextArrival == -1 || p.ArrivalTime < nextArrival {
					nextArrival = p.ArrivalTime
				}
				continue
			}
			if pick == -1 || less(p, processes[pick]) {
				pick = i
			}
		}

		if pick == -1 {
			clock = nextArrival
			continue
		}

		job := processes[pick]
		result.Run(job, clock, clock+job.BurstTime)
		clock += job.BurstTime
		result.Complete(job, clock)
		done[pick] = true
		completed++
	}
	return result
}
