package aap

// monitor.go: monitoring and statistics for the threshold search

import (
	"fmt"
	"sync"
	"time"
)

// SearchStats holds statistics about a threshold computation.
type SearchStats struct {
	OracleCalls    int           // Number of counterexample queries evaluated
	NodesExplored  int           // Number of search nodes expanded across all queries
	Backtracks     int           // Number of backtracks performed
	MemoHits       int           // Dead-prefix lookups that pruned a subtree
	MemoEntries    int           // Dead prefixes recorded
	MaxDepth       int           // Maximum search depth reached
	Colorings      int           // Full counterexample colorings constructed
	SearchTime     time.Duration // Wall time spent inside oracle calls
}

// SearchMonitor collects statistics during oracle calls. A nil monitor is
// valid and recording on it is a no-op, so instrumentation costs nothing
// unless requested.
//
// Thread safety: safe for concurrent use; every probe in a parallel search
// may share one monitor.
type SearchMonitor struct {
	mu        sync.Mutex
	stats     SearchStats
	callStart time.Time
}

// NewSearchMonitor creates an empty monitor.
func NewSearchMonitor() *SearchMonitor {
	return &SearchMonitor{}
}

// Stats returns a copy of the current statistics.
func (m *SearchMonitor) Stats() SearchStats {
	if m == nil {
		return SearchStats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// StartCall marks the beginning of an oracle call.
func (m *SearchMonitor) StartCall() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.OracleCalls++
	m.callStart = time.Now()
}

// FinishCall marks the end of an oracle call.
func (m *SearchMonitor) FinishCall() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.callStart.IsZero() {
		m.stats.SearchTime += time.Since(m.callStart)
		m.callStart = time.Time{}
	}
}

// RecordNode records expanding a search node.
func (m *SearchMonitor) RecordNode() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.NodesExplored++
}

// RecordBacktrack records a backtrack.
func (m *SearchMonitor) RecordBacktrack() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Backtracks++
}

// RecordMemoHit records a dead-prefix lookup that pruned a subtree.
func (m *SearchMonitor) RecordMemoHit() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.MemoHits++
}

// RecordMemoEntries sets the running count of dead prefixes recorded.
func (m *SearchMonitor) RecordMemoEntries(n int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > m.stats.MemoEntries {
		m.stats.MemoEntries = n
	}
}

// RecordDepth records the current search depth.
func (m *SearchMonitor) RecordDepth(depth int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if depth > m.stats.MaxDepth {
		m.stats.MaxDepth = depth
	}
}

// RecordColoring records construction of a full counterexample coloring.
func (m *SearchMonitor) RecordColoring() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats.Colorings++
}

// String formats the statistics for display.
func (s SearchStats) String() string {
	return fmt.Sprintf(
		"oracle calls: %d, nodes: %d, backtracks: %d, memo hits: %d, memo entries: %d, max depth: %d, colorings: %d, search time: %s",
		s.OracleCalls, s.NodesExplored, s.Backtracks, s.MemoHits, s.MemoEntries, s.MaxDepth, s.Colorings, s.SearchTime)
}
