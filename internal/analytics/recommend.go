package analytics

import (
	"fmt"
	"math"

	"scheduler-simulator/internal/core"
	"scheduler-simulator/internal/schedulers"
)

const scoreEpsilon = 1e-9

// Policy weighs the averages that make up an algorithm's score. Lower
// scores win; ties go to the higher throughput and then to the precedence
// order of schedulers.All.
type Policy struct {
	WaitingWeight    float64
	TurnaroundWeight float64
}

// DefaultPolicy scores avg_waiting_time + avg_turnaround_time.
var DefaultPolicy = Policy{WaitingWeight: 1, TurnaroundWeight: 1}

func (p Policy) Score(m Metrics) float64 {
	return p.WaitingWeight*m.AvgWaitingTime + p.TurnaroundWeight*m.AvgTurnaroundTime
}

type Candidate struct {
	Algorithm schedulers.Algorithm
	Metrics   Metrics
}

type Recommendation struct {
	Algorithm  schedulers.Algorithm
	Score      float64
	Throughput float64
}

func (p Policy) Recommend(candidates []Candidate) (Recommendation, error) {
	if len(candidates) == 0 {
		return Recommendation{}, fmt.Errorf("%w: no algorithms to compare", core.ErrEmptyResult)
	}

	best := candidates[0]
	bestScore := p.Score(best.Metrics)
	for _, c := range candidates[1:] {
		score := p.Score(c.Metrics)
		if p.beats(c, score, best, bestScore) {
			best, bestScore = c, score
		}
	}
	return Recommendation{
		Algorithm:  best.Algorithm,
		Score:      bestScore,
		Throughput: best.Metrics.Throughput,
	}, nil
}

func (p Policy) beats(c Candidate, score float64, best Candidate, bestScore float64) bool {
	if math.Abs(score-bestScore) > scoreEpsilon {
		return score < bestScore
	}
	if math.Abs(c.Metrics.Throughput-best.Metrics.Throughput) > scoreEpsilon {
		return c.Metrics.Throughput > best.Metrics.Throughput
	}
	return c.Algorithm.Precedence() < best.Algorithm.Precedence()
}
