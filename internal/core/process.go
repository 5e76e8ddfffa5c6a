package core

// Process is one submitted job. Lower Priority values run first.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// ScheduleEntry is a slice of CPU time given to a single process.
type ScheduleEntry struct {
	ProcessID int `json:"process_id"`
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

func (e ScheduleEntry) Duration() int {
	return e.EndTime - e.StartTime
}

type ProcessResult struct {
	ProcessID      int
	ArrivalTime    int
	BurstTime      int
	Priority       int
	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int
}

// CpuMetric accounts for the single simulated cpu over the makespan.
type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

// ScheduleResult is the output of one simulator run. ProcessIDs keeps
// submission order so results can be listed deterministically.
type ScheduleResult struct {
	Algorithm  string
	Timeline   []ScheduleEntry
	Results    map[int]ProcessResult
	ProcessIDs []int
}

func NewScheduleResult(algorithm string, processes []Process) ScheduleResult {
	ids := make([]int, 0, len(processes))
	for _, p := range processes {
		ids = append(ids, p.ID)
	}
	return ScheduleResult{
		Algorithm:  algorithm,
		Timeline:   make([]ScheduleEntry, 0, len(processes)),
		Results:    make(map[int]ProcessResult, len(processes)),
		ProcessIDs: ids,
	}
}

// Run appends a slice to the timeline and records the first dispatch of the process.
func (r *ScheduleResult) Run(p Process, start, end int) {
	r.Timeline = append(r.Timeline, ScheduleEntry{ProcessID: p.ID, StartTime: start, EndTime: end})
	if _, started := r.Results[p.ID]; !started {
		r.Results[p.ID] = ProcessResult{
			ProcessID:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      start,
			CompletionTime: -1,
		}
	}
}

// Complete finalizes the derived times of a process that finished at completion.
func (r *ScheduleResult) Complete(p Process, completion int) {
	res := r.Results[p.ID]
	res.CompletionTime = completion
	res.TurnaroundTime = completion - p.ArrivalTime
	res.WaitingTime = res.TurnaroundTime - p.BurstTime
	res.ResponseTime = res.StartTime - p.ArrivalTime
	r.Results[p.ID] = res
}

// Ordered lists the process results in submission order.
func (r ScheduleResult) Ordered() []ProcessResult {
	out := make([]ProcessResult, 0, len(r.ProcessIDs))
	for _, id := range r.ProcessIDs {
		if res, ok := r.Results[id]; ok {
			out = append(out, res)
		}
	}
	return out
}

func (r ScheduleResult) Cpu() CpuMetric {
	if len(r.Results) == 0 {
		return CpuMetric{}
	}
	first, last := -1, 0
	for _, res := range r.Results {
		if first == -1 || res.ArrivalTime < first {
			first = res.ArrivalTime
		}
		if res.CompletionTime > last {
			last = res.CompletionTime
		}
	}
	var busy int
	for _, e := range r.Timeline {
		busy += e.Duration()
	}
	total := last - first
	return CpuMetric{TotalTime: total, BusyTime: busy, IdleTime: total - busy}
}
