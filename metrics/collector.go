package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth          int
	Pruning        bool
	Duration       time.Duration
	NodesBuilt     int
	NodesEvaluated int
	TerminalLeaves int
	HorizonLeaves  int
	Cutoffs        int
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNodes(n int)
	AddEvaluated()
	AddTerminalLeaf()
	AddHorizonLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth          int
	pruning        bool
	startTime      time.Time
	nodesBuilt     atomic.Int32
	nodesEvaluated atomic.Int32
	terminalLeaves atomic.Int32
	horizonLeaves  atomic.Int32
	cutoffs        atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodesBuilt.Store(0)
	m.nodesEvaluated.Store(0)
	m.terminalLeaves.Store(0)
	m.horizonLeaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNodes(n int) {
	m.nodesBuilt.Add(int32(n))
}

func (m *collector) AddEvaluated() {
	m.nodesEvaluated.Add(1)
}

func (m *collector) AddTerminalLeaf() {
	m.terminalLeaves.Add(1)
}

func (m *collector) AddHorizonLeaf() {
	m.horizonLeaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:          m.depth,
		Pruning:        m.pruning,
		Duration:       time.Since(m.startTime),
		NodesBuilt:     int(m.nodesBuilt.Load()),
		NodesEvaluated: int(m.nodesEvaluated.Load()),
		TerminalLeaves: int(m.terminalLeaves.Load()),
		HorizonLeaves:  int(m.horizonLeaves.Load()),
		Cutoffs:        int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNodes(n int)                {}
func (m *dummyCollector) AddEvaluated()                 {}
func (m *dummyCollector) AddTerminalLeaf()              {}
func (m *dummyCollector) AddHorizonLeaf()               {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
