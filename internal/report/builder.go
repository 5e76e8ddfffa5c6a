package report

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"scheduler-simulator/internal/analytics"
	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

type Builder struct {
	Quantum int
	Policy  analytics.Policy

	simulate  func(schedulers.Algorithm, []core.Process, int) (core.ScheduleResult, error)
	aggregate func(core.ScheduleResult) (analytics.Metrics, error)
}

func NewBuilder(quantum int, policy analytics.Policy) *Builder {
	return &Builder{
		Quantum:   quantum,
		Policy:    policy,
		simulate:  schedulers.Simulate,
		aggregate: analytics.Aggregate,
	}
}

// Build runs every requested algorithm over its own copy of processes and
// joins the results into one report. With no algorithms given all four run;
// repeated algorithms run once, in the order first given.
// Input is validated before any simulator starts.
func (b *Builder) Build(processes []core.Process, algorithms ...schedulers.Algorithm) (*ComparisonReport, error) {
	algorithms = distinct(algorithms)
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	for _, a := range algorithms {
		if a == schedulers.RoundRobin {
			if err := core.ValidateQuantum(b.Quantum); err != nil {
				return nil, err
			}
		}
	}

	reports := make([]AlgorithmReport, len(algorithms))
	var g errgroup.Group
	for i, a := range algorithms {
		i, a := i, a
		jobs := make([]core.Process, len(processes))
		copy(jobs, processes)
		g.Go(func() error {
			result, err := b.simulate(a, jobs, b.Quantum)
			if err != nil {
				return err
			}
			metrics, err := b.aggregate(result)
			if err != nil {
				return err
			}
			reports[i] = AlgorithmReport{
				Algorithm: a,
				Schedule:  result,
				Metrics:   metrics,
				Score:     b.Policy.Score(metrics),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, core.ErrEmptyResult) {
			slog.Error("scheduler produced an empty result", "err", err)
		}
		return nil, err
	}

	candidates := make([]analytics.Candidate, 0, len(reports))
	for _, r := range reports {
		candidates = append(candidates, analytics.Candidate{Algorithm: r.Algorithm, Metrics: r.Metrics})
	}
	recommendation, err := b.Policy.Recommend(candidates)
	if err != nil {
		slog.Error("recommendation failed", "err", err)
		return nil, fmt.Errorf("recommend: %w", err)
	}

	input := make([]core.Process, len(processes))
	copy(input, processes)
	report := &ComparisonReport{
		ID:             uuid.NewString(),
		Quantum:        b.Quantum,
		Processes:      input,
		Algorithms:     reports,
		Recommendation: recommendation,
		Workload:       analytics.AnalyzeWorkload(processes),
	}
	slog.Debug("comparison report built",
		"id", report.ID,
		"processes", len(processes),
		"algorithms", len(reports),
		"recommended", recommendation.Algorithm)
	return report, nil
}

func distinct(algorithms []schedulers.Algorithm) []schedulers.Algorithm {
	if len(algorithms) == 0 {
		return schedulers.All
	}
	seen := make(map[schedulers.Algorithm]struct{}, len(algorithms))
	out := make([]schedulers.Algorithm, 0, len(algorithms))
	for _, a := range algorithms {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
