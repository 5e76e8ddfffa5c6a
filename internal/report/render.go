package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

// Render writes a human readable comparison: a gantt line and a process
// table per algorithm, a summary table and the recommendation.
func Render(w io.Writer, r *ComparisonReport) {
	outputWorkload(w, r)
	for _, ar := range r.Algorithms {
		title := ar.Algorithm.DisplayName()
		if ar.Algorithm == schedulers.RoundRobin {
			title = fmt.Sprintf("%s (quantum=%d)", title, r.Quantum)
		}
		outputTitle(w, title)
		outputGantt(w, ar.Schedule.Timeline)
		outputSchedule(w, ar)
	}
	outputSummary(w, r)

	highlight := color.New(color.FgGreen, color.Bold)
	_, _ = fmt.Fprint(w, "RECOMMENDED ALGORITHM: ")
	_, _ = highlight.Fprintln(w, r.Recommendation.Algorithm.DisplayName())
	_, _ = fmt.Fprintf(w, "score %.2f, throughput %.2f processes/unit time\n",
		r.Recommendation.Score, r.Recommendation.Throughput)
}

func outputWorkload(w io.Writer, r *ComparisonReport) {
	outputTitle(w, "Workload Analysis")
	_, _ = fmt.Fprintf(w, "Average Burst Time: %.2f\n", r.Workload.AverageBurst)
	_, _ = fmt.Fprintf(w, "Short Jobs (< 10): %d\n", r.Workload.ShortJobs)
	_, _ = fmt.Fprintf(w, "Long Jobs (>= 10): %d\n", r.Workload.LongJobs)
	_, _ = fmt.Fprintf(w, "Workload hint: %s - %s\n\n", r.Workload.Hint.DisplayName(), r.Workload.Reason)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []core.ScheduleEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	var bars, marks strings.Builder
	bars.WriteString("|")
	last := -1
	for _, e := range timeline {
		if last != -1 && e.StartTime > last {
			cell := fmt.Sprintf(" %-6s|", "idle")
			bars.WriteString(cell)
			marks.WriteString(fmt.Sprintf("%-*d", len(cell), last))
		}
		cell := fmt.Sprintf(" P%-5d|", e.ProcessID)
		bars.WriteString(cell)
		marks.WriteString(fmt.Sprintf("%-*d", len(cell), e.StartTime))
		last = e.EndTime
	}
	if last != -1 {
		marks.WriteString(fmt.Sprint(last))
	}
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", marks.String())
}

func outputSchedule(w io.Writer, ar AlgorithmReport) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(ar.Schedule.ProcessIDs))
	for _, res := range ar.Schedule.Ordered() {
		rows = append(rows, []string{
			fmt.Sprint(res.ProcessID),
			fmt.Sprint(res.Priority),
			fmt.Sprint(res.BurstTime),
			fmt.Sprint(res.ArrivalTime),
			fmt.Sprint(res.WaitingTime),
			fmt.Sprint(res.TurnaroundTime),
			fmt.Sprint(res.CompletionTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", ar.Metrics.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", ar.Metrics.AvgTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", ar.Metrics.Throughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputSummary(w io.Writer, r *ComparisonReport) {
	outputTitle(w, "Performance Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg TAT", "Avg Response", "Throughput", "CPU Util", "Ctx Switch", "Score"})
	for _, ar := range r.Algorithms {
		table.Append([]string{
			string(ar.Algorithm),
			fmt.Sprintf("%.2f", ar.Metrics.AvgWaitingTime),
			fmt.Sprintf("%.2f", ar.Metrics.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", ar.Metrics.AvgResponseTime),
			fmt.Sprintf("%.2f", ar.Metrics.Throughput),
			fmt.Sprintf("%.0f%%", ar.Metrics.CpuUtilization*100),
			fmt.Sprint(ar.Metrics.ContextSwitches),
			fmt.Sprintf("%.2f", ar.Score),
		})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}
