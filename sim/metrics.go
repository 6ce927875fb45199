// Aggregates per-run performance metrics from the completed process set and
// timeline: average waiting/turnaround/response times, CPU utilization, and
// throughput. Pure with respect to policy choice; all divisions are guarded
// so degenerate inputs (no processes, zero elapsed time) yield zeros.

package sim

import (
	"math"
	"sort"
)

// Metrics derives summary statistics from a finished run.
// It holds read-only views of the process set and timeline.
type Metrics struct {
	procs    []*Process
	timeline *Timeline
}

// NewMetrics creates an aggregator over the final process records and the
// timeline handed off by the policy.
func NewMetrics(procs []*Process, timeline *Timeline) *Metrics {
	return &Metrics{procs: procs, timeline: timeline}
}

// Summary bundles the headline metrics, rounded to fixed decimal precision
// purely for presentation. Rounded values never feed back into computation.
type Summary struct {
	NumProcesses      int     `json:"num_processes" yaml:"num_processes"`
	AvgWaitingTime    float64 `json:"avg_waiting_time" yaml:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time" yaml:"avg_turnaround_time"`
	AvgResponseTime   float64 `json:"avg_response_time" yaml:"avg_response_time"`
	CPUUtilization    float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
	Throughput        float64 `json:"throughput" yaml:"throughput"`
	TotalTime         int64   `json:"total_time" yaml:"total_time"`
}

// ProcessDetail is the per-process projection of a finished run.
type ProcessDetail struct {
	PID        int   `json:"pid" yaml:"pid"`
	Arrival    int64 `json:"arrival" yaml:"arrival"`
	Burst      int64 `json:"burst" yaml:"burst"`
	Priority   int   `json:"priority" yaml:"priority"`
	Completion int64 `json:"completion" yaml:"completion"`
	Waiting    int64 `json:"waiting" yaml:"waiting"`
	Turnaround int64 `json:"turnaround" yaml:"turnaround"`
	Response   int64 `json:"response" yaml:"response"`
}

// AvgWaitingTime returns the mean waiting time over all processes.
func (m *Metrics) AvgWaitingTime() float64 {
	if len(m.procs) == 0 {
		return 0.0
	}
	var sum int64
	for _, p := range m.procs {
		sum += p.WaitingTime
	}
	return float64(sum) / float64(len(m.procs))
}

// AvgTurnaroundTime returns the mean turnaround time over all processes.
func (m *Metrics) AvgTurnaroundTime() float64 {
	if len(m.procs) == 0 {
		return 0.0
	}
	var sum int64
	for _, p := range m.procs {
		sum += p.TurnaroundTime
	}
	return float64(sum) / float64(len(m.procs))
}

// AvgResponseTime returns the mean response time over the processes where it
// has been set. In a completed run that is all of them.
func (m *Metrics) AvgResponseTime() float64 {
	var sum int64
	var n int
	for _, p := range m.procs {
		if p.Started {
			sum += p.ResponseTime
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return float64(sum) / float64(n)
}

// TotalTime returns the maximum completion time over all processes, i.e. the
// makespan of the run.
func (m *Metrics) TotalTime() int64 {
	var total int64
	for _, p := range m.procs {
		if p.CompletionTime > total {
			total = p.CompletionTime
		}
	}
	return total
}

// CPUUtilization returns busy time as a percentage of total elapsed time.
// The formula assumes execution never overlaps; an overlapping timeline
// would be a policy bug and could push the value past 100, which tests
// assert against rather than clamping here.
func (m *Metrics) CPUUtilization() float64 {
	if m.timeline == nil || m.timeline.Len() == 0 {
		return 0.0
	}
	total := m.TotalTime()
	if total == 0 {
		return 0.0
	}
	var busy int64
	for _, p := range m.procs {
		busy += p.BurstTime
	}
	return float64(busy) / float64(total) * 100
}

// Throughput returns completed processes per unit of elapsed time.
func (m *Metrics) Throughput() float64 {
	if len(m.procs) == 0 {
		return 0.0
	}
	total := m.TotalTime()
	if total == 0 {
		return 0.0
	}
	return float64(len(m.procs)) / float64(total)
}

// Summary computes all headline metrics and rounds them for presentation
// (2 decimals for times and utilization, 4 for throughput).
func (m *Metrics) Summary() Summary {
	return Summary{
		NumProcesses:      len(m.procs),
		AvgWaitingTime:    roundTo(m.AvgWaitingTime(), 2),
		AvgTurnaroundTime: roundTo(m.AvgTurnaroundTime(), 2),
		AvgResponseTime:   roundTo(m.AvgResponseTime(), 2),
		CPUUtilization:    roundTo(m.CPUUtilization(), 2),
		Throughput:        roundTo(m.Throughput(), 4),
		TotalTime:         m.TotalTime(),
	}
}

// ProcessDetails returns the per-process projection sorted by pid.
// Response is reported as 0 for a process that was never dispatched.
func (m *Metrics) ProcessDetails() []ProcessDetail {
	details := make([]ProcessDetail, 0, len(m.procs))
	for _, p := range m.procs {
		d := ProcessDetail{
			PID:        p.PID,
			Arrival:    p.ArrivalTime,
			Burst:      p.BurstTime,
			Priority:   p.Priority,
			Completion: p.CompletionTime,
			Waiting:    p.WaitingTime,
			Turnaround: p.TurnaroundTime,
		}
		if p.Started {
			d.Response = p.ResponseTime
		}
		details = append(details, d)
	}
	sort.Slice(details, func(i, j int) bool { return details[i].PID < details[j].PID })
	return details
}

// roundTo rounds x to the given number of decimal places.
func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
