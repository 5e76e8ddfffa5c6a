package core

import (
	"fmt"
	"math"
)

// MaxTime bounds every simulated timestamp. The last completion can be no
// later than the latest arrival plus the sum of all bursts, so keeping that
// sum within MaxTime keeps the clock from overflowing.
const MaxTime = math.MaxInt32

func Validate(processes []Process) error {
	if len(processes) == 0 {
		return fmt.Errorf("%w: no processes provided", ErrInvalidInput)
	}
	seen := make(map[int]struct{}, len(processes))
	var latestArrival, totalBurst int64
	for i, p := range processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has non-positive burst time %d", ErrInvalidInput, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidInput, p.ID, p.ArrivalTime)
		}
		if int64(p.ArrivalTime) > MaxTime || int64(p.BurstTime) > MaxTime {
			return fmt.Errorf("%w: process %d times exceed the limit of %d", ErrInvalidInput, p.ID, MaxTime)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate process id %d at position %d", ErrInvalidInput, p.ID, i+1)
		}
		seen[p.ID] = struct{}{}

		latestArrival = max(latestArrival, int64(p.ArrivalTime))
		totalBurst += int64(p.BurstTime)
		if latestArrival+totalBurst > MaxTime {
			return fmt.Errorf("%w: schedule would run past time %d", ErrInvalidInput, MaxTime)
		}
	}
	return nil
}

func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: time quantum must be positive, got %d", ErrInvalidInput, quantum)
	}
	return nil
}
