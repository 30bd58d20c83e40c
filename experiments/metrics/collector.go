package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines     int
	Depth          int
	Duration       time.Duration
	Nodes          int
	TerminalLeaves int
	HorizonLeaves  int
}

func (m SearchMetric) Leaves() int {
	return m.TerminalLeaves + m.HorizonLeaves
}

type MoveMetric struct {
	Turn       int
	Ply        int // Plies played once the turn is over
	Agent      int // AgentConfig.ID
	Maximizing bool
	SearchMetric
}

type GameMetric struct {
	Winner     string // "max", "min" or "" for a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
	TotalPlies int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddTerminalLeaf()
	AddHorizonLeaf()
	Complete() SearchMetric
}

type collector struct {
	goroutines     int
	depth          int
	startTime      time.Time
	nodes          atomic.Int64
	terminalLeaves atomic.Int64
	horizonLeaves  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTerminalLeaf() {
	m.terminalLeaves.Add(1)
}

func (m *collector) AddHorizonLeaf() {
	m.horizonLeaves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:     m.goroutines,
		Depth:          m.depth,
		Duration:       time.Since(m.startTime),
		Nodes:          int(m.nodes.Load()),
		TerminalLeaves: int(m.terminalLeaves.Load()),
		HorizonLeaves:  int(m.horizonLeaves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddTerminalLeaf()            {}
func (m *dummyCollector) AddHorizonLeaf()             {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
