package searcher

import "quarto/experiments/metrics"

// mockState is a hand-built game tree. Non-terminal leaves are scored by
// mockEvaluate from their value field.
type mockState struct {
	id       int
	won      bool
	full     bool
	value    float64
	children []mockState
}

func (m mockState) IsTerminal() bool {
	return m.won || m.full
}

func (m mockState) HasWinningLine() bool {
	return m.won
}

func (m mockState) LegalSuccessors() []mockState {
	children := make([]mockState, len(m.children))
	copy(children, m.children)
	return children
}

func mockEvaluate(m mockState, _ bool) float64 {
	return m.value
}

func leaf(id int, value float64) mockState {
	return mockState{id: id, value: value}
}

func node(id int, children ...mockState) mockState {
	return mockState{id: id, children: children}
}

func noMetrics() metrics.Collector {
	return metrics.NewDummyCollector()
}
