// meta/meta.go
package meta

// DEPTH defines the default minimax search depth in turns.
const DEPTH = 2

// GO_ROUTINES defines the number of goroutines evaluating the root's children.
const GO_ROUTINES = 4

// GAMES defines the number of games per matchup.
const GAMES = 10

// SEED seeds the random baseline agent.
const SEED = 1

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments"

// OPENING_TURNS defines the random turns that open each heuristic experiment game.
const OPENING_TURNS = 2
