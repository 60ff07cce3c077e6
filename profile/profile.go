// Package profile aggregates vlog.Event timings into per-operation call
// statistics, for a --profile flag that wants a performance summary
// instead of a raw execution trace.
//
// Grounded on the teacher's internal/profile/profile.go (a trace-callback
// consumer collecting per-word statistics), adapted from per-Word events
// to per-compile.Op events by attaching to vlog.Session.SetCallback
// instead of the teacher's trace.TraceSession.SetCallback.
package profile

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/helena-lang/helena/vlog"
)

// Profiler collects per-operation call counts and timings. All methods
// are safe for concurrent use.
type Profiler struct {
	mu        sync.Mutex
	startTime time.Time
	endTime   time.Time
	opStats   map[string]*OpStats
	eventCount int64
	totalTime  time.Duration
}

// OpStats holds timing statistics for one operation kind.
type OpStats struct {
	Op          string
	CallCount   int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
	AverageTime time.Duration
}

// Report is the aggregated result of a profiling run.
type Report struct {
	TotalExecutionTime time.Duration
	TotalEvents        int64
	Operations         []*OpStats
}

// NewProfiler creates an idle Profiler.
func NewProfiler() *Profiler {
	return &Profiler{opStats: make(map[string]*OpStats)}
}

// Attach registers the profiler as a callback on session and marks the
// start of a profiling window. Call Finish when the run is complete.
func (p *Profiler) Attach(session *vlog.Session) {
	p.mu.Lock()
	p.startTime = time.Now()
	p.eventCount = 0
	p.opStats = make(map[string]*OpStats)
	p.mu.Unlock()

	session.SetCallback(p.record)
	session.Enable()
}

// Finish stops the profiling window and returns the aggregated Report.
func (p *Profiler) Finish(session *vlog.Session) *Report {
	session.SetCallback(nil)
	p.mu.Lock()
	p.endTime = time.Now()
	p.totalTime = p.endTime.Sub(p.startTime)
	p.mu.Unlock()
	return p.Report()
}

func (p *Profiler) record(ev vlog.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.eventCount < math.MaxInt64 {
		p.eventCount++
	}
	if ev.Op == "" {
		return
	}

	duration := time.Duration(ev.Duration)
	stats, ok := p.opStats[ev.Op]
	if !ok {
		stats = &OpStats{Op: ev.Op, MinTime: duration, MaxTime: duration}
		p.opStats[ev.Op] = stats
	}
	stats.CallCount++
	stats.TotalTime += duration
	if duration < stats.MinTime {
		stats.MinTime = duration
	}
	if duration > stats.MaxTime {
		stats.MaxTime = duration
	}
	stats.AverageTime = time.Duration(int64(stats.TotalTime) / stats.CallCount)
}

// Report snapshots the current statistics, sorted by total time
// descending.
func (p *Profiler) Report() *Report {
	p.mu.Lock()
	defer p.mu.Unlock()

	ops := make([]*OpStats, 0, len(p.opStats))
	for _, s := range p.opStats {
		ops = append(ops, s)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].TotalTime > ops[j].TotalTime })

	return &Report{
		TotalExecutionTime: p.totalTime,
		TotalEvents:        p.eventCount,
		Operations:         ops,
	}
}

// FormatText writes a human-readable summary table to w.
func (r *Report) FormatText(w io.Writer) {
	fmt.Fprintf(w, "execution profile: %v total, %d events\n\n", r.TotalExecutionTime, r.TotalEvents)
	if len(r.Operations) == 0 {
		fmt.Fprintln(w, "no operations recorded")
		return
	}
	fmt.Fprintf(w, "%-20s %8s %12s %10s %10s %10s\n", "operation", "calls", "total", "avg", "min", "max")
	for _, s := range r.Operations {
		fmt.Fprintf(w, "%-20s %8d %12s %10s %10s %10s\n",
			s.Op, s.CallCount, s.TotalTime, s.AverageTime, s.MinTime, s.MaxTime)
	}
}
