package experiments

import (
	"fmt"
	"quarto/engine"
	"quarto/experiments/metrics"
	"quarto/game"
	"quarto/searcher"
	"quarto/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

// RunDepthExperiment pairs minimax agents of growing depth against a random
// baseline, alternating who moves first.
func RunDepthExperiment(root string, numGames int, depths []int, goroutines int, seed uint64) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: seed}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][]metrics.AgentConfig{}
	for i, depth := range depths {
		config := metrics.AgentConfig{ID: i + 1, Kind: metrics.MinimaxAgent, Depth: depth, Goroutines: goroutines, Threats: true}
		configs = append(configs, config)
		matchUps = append(matchUps,
			[]metrics.AgentConfig{config, baseline},
			[]metrics.AgentConfig{baseline, config})
	}

	return Run(root, "depth", configs, matchUps, numGames, 0, 0)
}

// RunHeuristicExperiment pairs a minimax agent that scores the horizon with
// game.EvaluateTurn against one that scores it neutral. Both agents are
// deterministic, so each game starts with openingTurns random turns seeded
// by seed plus the game's round; without them every game of a matchup would
// replay the same moves.
func RunHeuristicExperiment(root string, numGames int, depth int, goroutines int, openingTurns int, seed uint64) (string, error) {
	neutral := metrics.AgentConfig{ID: 1, Kind: metrics.MinimaxAgent, Depth: depth, Goroutines: goroutines}
	threats := metrics.AgentConfig{ID: 2, Kind: metrics.MinimaxAgent, Depth: depth, Goroutines: goroutines, Threats: true}
	matchUps := [][]metrics.AgentConfig{{neutral, threats}, {threats, neutral}}

	return Run(root, "heuristic", []metrics.AgentConfig{neutral, threats}, matchUps, numGames, openingTurns, seed)
}

// Run plays numGames games per matchup and stores the records under
// root/name/<timestamp>. It returns that directory. Game i of every matchup
// opens with openingTurns random turns seeded by openingSeed+i. Every config
// is checked before the first game is played.
func Run(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, openingTurns int, openingSeed uint64) (string, error) {
	for _, config := range configs {
		if err := checkConfig(config); err != nil {
			return "", err
		}
	}
	for i, matchup := range matchUps {
		if len(matchup) != 2 {
			return "", fmt.Errorf("matchup %d has %d agents, need 2", i+1, len(matchup))
		}
		for _, config := range matchup {
			if err := checkConfig(config); err != nil {
				return "", fmt.Errorf("matchup %d: %w", i+1, err)
			}
		}
	}

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	start := time.Now()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			outcome, gameMetric, moveMetrics, err := runGame(config1, config2, uint64(i), openingTurns, openingSeed)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q after %d turns", mi+1, len(matchUps), i+1, outcome.Winner, outcome.Turns)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteSetup(start, time.Now(), matchUps, numGames, openingTurns, openingSeed); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game with config1 as the maximizer. Random agents
// and openings are reseeded per game so repeated games differ but replay
// identically.
func runGame(config1, config2 metrics.AgentConfig, round uint64, openingTurns int, openingSeed uint64) (engine.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := createAgent(config1, round)
	if err != nil {
		return engine.Outcome{}, metrics.GameMetric{}, nil, err
	}
	agent2, err := createAgent(config2, round)
	if err != nil {
		return engine.Outcome{}, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine([2]agent.Agent{agent1, agent2},
		engine.WithAgentIDs(config1.ID, config2.ID),
		engine.WithOpening(openingTurns, openingSeed+round))
	outcome, gameMetric, moveMetrics := e.Run()
	return outcome, gameMetric, moveMetrics, nil
}

// checkConfig reports configs createAgent cannot build.
func checkConfig(config metrics.AgentConfig) error {
	switch config.Kind {
	case metrics.RandomAgent:
		return nil
	case metrics.MinimaxAgent:
		if config.Depth < 1 {
			return fmt.Errorf("minimax agent %d needs a depth of at least 1, got %d", config.ID, config.Depth)
		}
		return nil
	default:
		return fmt.Errorf("unknown agent kind %q for agent %d", config.Kind, config.ID)
	}
}

func createAgent(config metrics.AgentConfig, round uint64) (agent.Agent, error) {
	if err := checkConfig(config); err != nil {
		return nil, err
	}
	if config.Kind == metrics.RandomAgent {
		return agent.NewRandomAgent(config.Seed + round), nil
	}
	return agent.NewMinimaxAgent(createMinimax(config)), nil
}

func createMinimax(config metrics.AgentConfig) *searcher.Minimax[game.Turn] {
	options := []searcher.Option[game.Turn]{searcher.WithMetrics[game.Turn]()}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines[game.Turn](config.Goroutines))
	}
	if config.Threats {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateTurn))
	}

	return searcher.NewMinimax(config.Depth, options...)
}
