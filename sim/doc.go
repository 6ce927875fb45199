// Package sim provides the core discrete-event CPU scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (NEW → READY → RUNNING → TERMINATED) and derived metrics
//   - timeline.go: The coalescing execution timeline (Gantt data)
//   - simulator.go: The facade that selects a policy, runs it, and aggregates metrics
//
// # Architecture
//
// Each scheduling algorithm is a Policy implementation in its own file
// (policy_fcfs.go, policy_sjf.go, policy_rr.go, policy_priority.go).
// Policies are selected by name through NewPolicy; the set of valid names
// lives in ValidAlgorithms so validation and construction cannot drift apart.
//
// A run is single-threaded and deterministic: the policy owns the integer
// simulation clock and the Timeline for the duration of Run, advances time
// either by whole bursts (non-preemptive), one unit (preemptive), or one
// idle unit when nothing is ready, and hands the finished process set to
// the metrics aggregator in metrics.go.
package sim
