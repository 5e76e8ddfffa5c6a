package responses

import (
	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/report"
)

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string               `json:"algorithm"`
	TotalTime             int                  `json:"total_time"`
	IdleTime              int                  `json:"idle_time"`
	AverageWaitingTime    float64              `json:"avg_waiting"`
	AverageResponseTime   float64              `json:"avg_response"`
	AverageTurnAroundTime float64              `json:"avg_turnaround"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	CpuThroughput         float64              `json:"throughput"`
	ContextSwitches       int                  `json:"context_switches"`
	Score                 float64              `json:"score"`
	Timeline              []core.ScheduleEntry `json:"timeline,omitempty"`
	Details               []ProcessResponse    `json:"details"`
}

type WorkloadResponse struct {
	AverageBurst float64 `json:"average_burst"`
	ShortJobs    int     `json:"short_jobs"`
	LongJobs     int     `json:"long_jobs"`
	Hint         string  `json:"hint"`
	Reason       string  `json:"reason"`
}

type ComparisonResponse struct {
	ID                  string                      `json:"id"`
	Quantum             int                         `json:"quantum"`
	Results             map[string]ScheduleResponse `json:"results"`
	Recommendation      string                      `json:"recommendation"`
	RecommendationScore float64                     `json:"recommendation_score"`
	Workload            WorkloadResponse            `json:"workload"`
}

func NewComparisonResponse(r *report.ComparisonReport, withTimeline bool) ComparisonResponse {
	response := ComparisonResponse{
		ID:                  r.ID,
		Quantum:             r.Quantum,
		Results:             make(map[string]ScheduleResponse, len(r.Algorithms)),
		Recommendation:      string(r.Recommendation.Algorithm),
		RecommendationScore: r.Recommendation.Score,
		Workload: WorkloadResponse{
			AverageBurst: r.Workload.AverageBurst,
			ShortJobs:    r.Workload.ShortJobs,
			LongJobs:     r.Workload.LongJobs,
			Hint:         string(r.Workload.Hint),
			Reason:       r.Workload.Reason,
		},
	}
	for _, ar := range r.Algorithms {
		response.Results[string(ar.Algorithm)] = newScheduleResponse(ar, withTimeline)
	}
	return response
}

func newScheduleResponse(ar report.AlgorithmReport, withTimeline bool) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(ar.Schedule.ProcessIDs))
	for _, res := range ar.Schedule.Ordered() {
		details = append(details, ProcessResponse{
			ProcessId:      res.ProcessID,
			ArrivalTime:    res.ArrivalTime,
			BurstTime:      res.BurstTime,
			Priority:       res.Priority,
			StartTime:      res.StartTime,
			CompletionTime: res.CompletionTime,
			ResponseTime:   res.ResponseTime,
			TurnAroundTime: res.TurnaroundTime,
			WaitingTime:    res.WaitingTime,
		})
	}
	response := ScheduleResponse{
		Algorithm:             string(ar.Algorithm),
		TotalTime:             ar.Metrics.Makespan,
		IdleTime:              ar.Metrics.IdleTime,
		AverageWaitingTime:    ar.Metrics.AvgWaitingTime,
		AverageResponseTime:   ar.Metrics.AvgResponseTime,
		AverageTurnAroundTime: ar.Metrics.AvgTurnaroundTime,
		CpuUtilization:        ar.Metrics.CpuUtilization,
		CpuThroughput:         ar.Metrics.Throughput,
		ContextSwitches:       ar.Metrics.ContextSwitches,
		Score:                 ar.Score,
		Details:               details,
	}
	if withTimeline {
		response.Timeline = ar.Schedule.Timeline
	}
	return response
}
