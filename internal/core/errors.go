package core

import "errors"

var (
	// ErrInvalidInput is returned for input the caller has to correct.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyResult means a schedule result with no processes reached the
	// aggregator. Validation upstream makes this an engine bug.
	ErrEmptyResult = errors.New("empty schedule result")
)
