package requests

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"scheduler-simulator/internal/core"
)

// ParseProcessFile reads a process file. It accepts either the request body
// shape {"processes": [...], "algorithm": ..., "quantum": ...} or a bare
// array of process records. Records may spell fields as arrival/burst or
// arrival_time/burst_time.
func ParseProcessFile(data []byte) (ScheduleRequests, error) {
	var request ScheduleRequests
	if !gjson.ValidBytes(data) {
		return request, fmt.Errorf("%w: process file is not valid json", core.ErrInvalidInput)
	}

	root := gjson.ParseBytes(data)
	records := root
	if !root.IsArray() {
		if !root.IsObject() {
			return request, fmt.Errorf("%w: expected an object or an array of processes", core.ErrInvalidInput)
		}
		records = root.Get("processes")
		if !records.IsArray() {
			return request, fmt.Errorf("%w: missing processes array", core.ErrInvalidInput)
		}
		request.Algorithm = root.Get("algorithm").String()
		if q := root.Get("quantum"); q.Exists() {
			quantum, err := integer(q, "quantum")
			if err != nil {
				return request, err
			}
			request.Quantum = &quantum
		}
		if t := root.Get("include_timeline"); t.Exists() {
			include := t.Bool()
			request.IncludeTimeline = &include
		}
	}

	for i, rec := range records.Array() {
		job, err := parseJob(rec)
		if err != nil {
			return request, fmt.Errorf("record %d: %w", i+1, err)
		}
		request.Processes = append(request.Processes, job)
	}
	return request, nil
}

func parseJob(rec gjson.Result) (Job, error) {
	var job Job
	if !rec.IsObject() {
		return job, fmt.Errorf("%w: process record must be an object", core.ErrInvalidInput)
	}

	burst := field(rec, "burst", "burst_time")
	if !burst.Exists() {
		return job, fmt.Errorf("%w: burst is required", core.ErrInvalidInput)
	}
	var err error
	if job.Burst, err = integer(burst, "burst"); err != nil {
		return job, err
	}
	if arrival := field(rec, "arrival", "arrival_time"); arrival.Exists() {
		if job.Arrival, err = integer(arrival, "arrival"); err != nil {
			return job, err
		}
	}
	if priority := rec.Get("priority"); priority.Exists() {
		if job.Priority, err = integer(priority, "priority"); err != nil {
			return job, err
		}
	}
	if pid := rec.Get("process_id"); pid.Exists() {
		id, err := integer(pid, "process_id")
		if err != nil {
			return job, err
		}
		job.ProcessId = &id
	}
	return job, nil
}

func field(rec gjson.Result, names ...string) gjson.Result {
	for _, name := range names {
		if v := rec.Get(name); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func integer(v gjson.Result, name string) (int, error) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %s", core.ErrInvalidInput, name, v.Raw)
	}
	return int(v.Int()), nil
}
