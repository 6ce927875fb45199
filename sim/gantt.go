// Textual rendering of run results: a Gantt chart of the timeline, a
// per-process table, and a cross-algorithm comparison table. Presentation
// only; nothing here feeds back into the simulation.

package sim

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// RenderGantt draws a timeline as a boxed text chart:
//
//	|──────|─────|──|
//	|  P1  | P2  |P3|
//	|──────|─────|──|
//	0      4     7  8
//
// Cell width scales with interval length (3 columns per time unit).
// Returns an empty string for an empty timeline.
func RenderGantt(intervals []Interval) string {
	if len(intervals) == 0 {
		return ""
	}
	var top, mid, bottom, times strings.Builder

	for _, iv := range intervals {
		width := cellWidth(iv)
		rule := strings.Repeat("─", width)
		top.WriteString("|" + rule)
		bottom.WriteString("|" + rule)

		label := fmt.Sprintf("P%d", iv.PID)
		pad := width - len(label)
		left := pad / 2
		mid.WriteString("|" + strings.Repeat(" ", left) + label + strings.Repeat(" ", pad-left))
	}
	top.WriteString("|")
	mid.WriteString("|")
	bottom.WriteString("|")

	times.WriteString(fmt.Sprint(intervals[0].Start))
	for _, iv := range intervals {
		label := fmt.Sprint(iv.End)
		gap := cellWidth(iv) + 1 - len(label)
		if gap < 1 {
			gap = 1
		}
		times.WriteString(strings.Repeat(" ", gap) + label)
	}

	return top.String() + "\n" + mid.String() + "\n" + bottom.String() + "\n" + times.String() + "\n"
}

// cellWidth sizes an interval's cell: 3 columns per time unit, never
// narrower than its pid label.
func cellWidth(iv Interval) int {
	width := int(iv.End-iv.Start)*3 - 1
	if minWidth := len(fmt.Sprintf("P%d", iv.PID)); width < minWidth {
		width = minWidth
	}
	return width
}

// RenderReport formats a run's summary metrics and per-process table.
func RenderReport(res *Result) string {
	var sb strings.Builder
	s := res.Summary

	fmt.Fprintf(&sb, "algorithm            : %s\n", res.Algorithm)
	fmt.Fprintf(&sb, "processes            : %d\n", s.NumProcesses)
	fmt.Fprintf(&sb, "total time           : %d units\n", s.TotalTime)
	fmt.Fprintf(&sb, "avg waiting time     : %.2f\n", s.AvgWaitingTime)
	fmt.Fprintf(&sb, "avg turnaround time  : %.2f\n", s.AvgTurnaroundTime)
	fmt.Fprintf(&sb, "avg response time    : %.2f\n", s.AvgResponseTime)
	fmt.Fprintf(&sb, "cpu utilization      : %.2f%%\n", s.CPUUtilization)
	fmt.Fprintf(&sb, "throughput           : %.4f proc/unit\n", s.Throughput)
	sb.WriteString("\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tARRIVAL\tBURST\tPRIORITY\tCOMPLETION\tWAITING\tTURNAROUND\tRESPONSE")
	for _, d := range res.PerProcess {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			d.PID, d.Arrival, d.Burst, d.Priority, d.Completion, d.Waiting, d.Turnaround, d.Response)
	}
	w.Flush()
	return sb.String()
}

// RenderComparison formats one summary row per algorithm run.
func RenderComparison(results []*Result) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tAVG WAIT\tAVG TURNAROUND\tAVG RESPONSE\tUTILIZATION\tTHROUGHPUT\tTOTAL")
	for _, res := range results {
		s := res.Summary
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f%%\t%.4f\t%d\n",
			res.Algorithm, s.AvgWaitingTime, s.AvgTurnaroundTime, s.AvgResponseTime,
			s.CPUUtilization, s.Throughput, s.TotalTime)
	}
	w.Flush()
	return sb.String()
}
