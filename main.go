package main

import (
	"flag"
	"fmt"
	"os"
	"quarto/engine"
	"quarto/experiments"
	"quarto/game"
	"quarto/meta"
	"quarto/searcher"
	"quarto/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play | depth | heuristic")
	depth := flag.Int("depth", meta.DEPTH, "Minimax search depth in turns")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines evaluating root moves")
	games := flag.Int("games", meta.GAMES, "Number of games per matchup")
	seed := flag.Uint64("seed", meta.SEED, "Seed of the random agent and of random openings")
	opening := flag.Int("opening", meta.OPENING_TURNS, "Random opening turns per game in the heuristic experiment")
	out := flag.String("out", meta.OUTPUT_DIR, "Directory for experiment records")
	verbose := flag.Bool("v", false, "Log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *depth < 1 {
		log.Fatal().Msgf("depth must be at least 1, got %d", *depth)
	}

	switch *mode {
	case "play":
		play(*depth, *goroutines, *seed)
	case "depth":
		depths := make([]int, 0, *depth)
		for d := 1; d <= *depth; d++ {
			depths = append(depths, d)
		}
		dir, err := experiments.RunDepthExperiment(*out, *games, depths, *goroutines, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("depth experiment failed")
		}
		log.Info().Msgf("records written to %s", dir)
	case "heuristic":
		dir, err := experiments.RunHeuristicExperiment(*out, *games, *depth, *goroutines, *opening, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("heuristic experiment failed")
		}
		log.Info().Msgf("records written to %s", dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// play runs one game of minimax against the random agent and prints the final board.
func play(depth, goroutines int, seed uint64) {
	minimax := searcher.NewMinimax(depth,
		searcher.WithGoroutines[game.Turn](goroutines),
		searcher.WithEvaluationFn(game.EvaluateTurn),
		searcher.WithMetrics[game.Turn]())

	e := engine.LocalEngine([2]agent.Agent{agent.NewMinimaxAgent(minimax), agent.NewRandomAgent(seed)}, engine.WithValidation())
	outcome, gameMetric, _ := e.Run()

	fmt.Println(outcome.Final)
	if outcome.Winner == engine.NoWinner {
		fmt.Printf("Draw after %d turns (%s)\n", outcome.Turns, gameMetric.Duration)
		return
	}
	fmt.Printf("Winner: %s after %d turns (%s)\n", outcome.Winner, outcome.Turns, gameMetric.Duration)
	board := outcome.Final.Board()
	for _, line := range outcome.Final.WinningLines() {
		fmt.Printf("Line %v shares %08b\n", line, uint8(board.Shared(line)))
	}
}
