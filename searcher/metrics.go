package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one Search call.
type SearchMetrics struct {
	StartTime      time.Time
	Duration       time.Duration
	Simulations    int64
	EvaluatorCalls int64
	TreeReused     bool
}

// MetricsCollector records search progress. Counters are atomic so a future
// batched evaluator can report from its own goroutine.
type MetricsCollector interface {
	Start()
	AddSimulation()
	AddEvaluatorCall()
	SetTreeReused(reused bool)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime      time.Time
	simulations    atomic.Int64
	evaluatorCalls atomic.Int64
	treeReused     atomic.Bool
}

// NewMetricsCollector returns a recording collector.
func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.simulations.Store(0)
	m.evaluatorCalls.Store(0)
}

func (m *metricsCollector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *metricsCollector) AddEvaluatorCall() {
	m.evaluatorCalls.Add(1)
}

func (m *metricsCollector) SetTreeReused(reused bool) {
	m.treeReused.Store(reused)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:      m.startTime,
		Duration:       time.Since(m.startTime),
		Simulations:    m.simulations.Load(),
		EvaluatorCalls: m.evaluatorCalls.Load(),
		TreeReused:     m.treeReused.Load(),
	}
}

type noMetricsCollector struct{}

// NewNoMetricsCollector returns a collector that records nothing.
func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddSimulation()          {}
func (noMetricsCollector) AddEvaluatorCall()       {}
func (noMetricsCollector) SetTreeReused(bool)      {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
