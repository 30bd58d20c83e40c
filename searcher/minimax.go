package searcher

import (
	"math"
	"quarto/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option[S State[S]] func(m *Minimax[S])

// Minimax is a depth-limited minimax searcher. A Minimax holds only its
// configuration, so one value may serve concurrent searches.
type Minimax[S State[S]] struct {
	depth      int
	goroutines int
	evaluate   func(S, bool) float64
	collect    bool
}

// WithGoroutines evaluates the root's children on up to n goroutines.
func WithGoroutines[S State[S]](n int) Option[S] {
	return func(m *Minimax[S]) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

// WithEvaluationFn scores non-terminal positions at the search horizon from
// the maximizer's perspective. Scores should stay strictly within (Loss, Win).
func WithEvaluationFn[S State[S]](evaluate func(state S, maximizing bool) float64) Option[S] {
	return func(m *Minimax[S]) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics[S State[S]]() Option[S] {
	return func(m *Minimax[S]) {
		m.collect = true
	}
}

func NewMinimax[S State[S]](depth int, options ...Option[S]) *Minimax[S] {
	m := &Minimax[S]{ // Default values
		depth:      depth,
		goroutines: 1,
		evaluate:   neutral[S],
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax[S]) Depth() int {
	return m.depth
}

// SelectMove returns the successor of state that sequential minimax to the
// given depth judges best for the side to move. It returns false when state
// is terminal or depth <= 0.
func SelectMove[S State[S]](state S, depth int, maximizing bool) (S, bool) {
	move, ok, _ := NewMinimax[S](depth).FindMove(state, maximizing)
	return move, ok
}

// Evaluate returns the minimax value of state searched to the given depth.
func Evaluate[S State[S]](state S, depth int, maximizing bool) float64 {
	return NewMinimax[S](depth).evaluateNode(state, depth, maximizing, metrics.NewDummyCollector())
}

// FindMove selects the best successor of state for the side to move, along
// with search metrics when enabled. Ties go to the earliest successor.
func (m *Minimax[S]) FindMove(state S, maximizing bool) (S, bool, metrics.SearchMetric) {
	collector := metrics.NewDummyCollector()
	if m.collect {
		collector = metrics.NewCollector()
	}

	collector.Start(m.goroutines, m.depth)
	move, score, ok := m.selectMove(state, maximizing, collector)
	metric := collector.Complete()

	if ok {
		event := log.Debug().
			Int("depth", m.depth).
			Bool("maximizing", maximizing).
			Float64("score", score)
		if m.collect {
			event = event.Int("nodes", metric.Nodes)
		}
		event.Msg("minimax selected move")
	}
	return move, ok, metric
}

func (m *Minimax[S]) selectMove(state S, maximizing bool, collector metrics.Collector) (S, float64, bool) {
	var none S
	if m.depth <= 0 || state.IsTerminal() {
		return none, 0, false
	}

	collector.AddNode()
	children := state.LegalSuccessors()
	if len(children) == 0 {
		return none, 0, false
	}

	scores := m.scoreChildren(children, maximizing, collector)
	best := 0
	for i := 1; i < len(scores); i++ {
		if improves(scores[i], scores[best], maximizing) {
			best = i
		}
	}
	return children[best], scores[best], true
}

func (m *Minimax[S]) scoreChildren(children []S, maximizing bool, collector metrics.Collector) []float64 {
	scores := make([]float64, len(children))
	if m.goroutines <= 1 || len(children) == 1 {
		for i, child := range children {
			scores[i] = m.evaluateNode(child, m.depth-1, !maximizing, collector)
		}
		return scores
	}

	// Each goroutine writes only its own slot.
	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, child := range children {
		i, child := i, child // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			scores[i] = m.evaluateNode(child, m.depth-1, !maximizing, collector)
			return nil
		})
	}
	_ = g.Wait() // evaluation never fails
	return scores
}

func (m *Minimax[S]) evaluateNode(state S, depth int, maximizing bool, collector metrics.Collector) float64 {
	collector.AddNode()

	if state.IsTerminal() {
		collector.AddTerminalLeaf()
		return terminalScore(state, maximizing)
	}
	if depth <= 0 {
		collector.AddHorizonLeaf()
		return m.evaluate(state, maximizing)
	}

	children := state.LegalSuccessors()
	if len(children) == 0 { // No moves left, score as finished
		collector.AddTerminalLeaf()
		return terminalScore(state, maximizing)
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, child := range children {
		score := m.evaluateNode(child, depth-1, !maximizing, collector)
		if improves(score, best, maximizing) {
			best = score
		}
	}
	return best
}

// improves reports whether score beats best for the side to move.
func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}
