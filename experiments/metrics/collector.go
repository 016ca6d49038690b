package metrics

import (
	"sync/atomic"
	"time"

	"mcts/game"
)

type SearchMetric struct {
	Iterations   int
	Expansions   int
	DeadEnds     int
	RolloutMoves int
	TreeSize     int
	Duration     time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Player
	SearchMetric
}

type GameMetric struct {
	Opener     game.Player
	Winner     game.Player // game.None for a draw or an unfinished game
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddIteration()
	AddExpansion()
	AddDeadEnd()
	AddRolloutMoves(n int)
	Complete(treeSize int) SearchMetric
}

type collector struct {
	startTime    time.Time
	iterations   atomic.Int64
	expansions   atomic.Int64
	deadEnds     atomic.Int64
	rolloutMoves atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.iterations.Store(0)
	m.expansions.Store(0)
	m.deadEnds.Store(0)
	m.rolloutMoves.Store(0)
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddDeadEnd() {
	m.deadEnds.Add(1)
}

func (m *collector) AddRolloutMoves(n int) {
	m.rolloutMoves.Add(int64(n))
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Iterations:   int(m.iterations.Load()),
		Expansions:   int(m.expansions.Load()),
		DeadEnds:     int(m.deadEnds.Load()),
		RolloutMoves: int(m.rolloutMoves.Load()),
		TreeSize:     treeSize,
		Duration:     time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                             {}
func (m *dummyCollector) AddIteration()                      {}
func (m *dummyCollector) AddExpansion()                      {}
func (m *dummyCollector) AddDeadEnd()                        {}
func (m *dummyCollector) AddRolloutMoves(n int)              {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{TreeSize: treeSize} }
