package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	MinimaxAgent = "minimax"
	RandomAgent  = "random"
)

type AgentConfig struct {
	ID         int    `json:"id"`
	Kind       string `json:"kind"` // MinimaxAgent or RandomAgent
	Depth      int    `json:"depth"`
	Goroutines int    `json:"goroutines"`
	Threats    bool   `json:"threats"` // Score the horizon with game.EvaluateTurn
	Seed       uint64 `json:"seed"`
}

type Setup struct {
	Matchups     [][]AgentConfig `json:"matchups"`
	NumGames     int             `json:"numGames"`     // per matchup
	OpeningTurns int             `json:"openingTurns"` // random turns before the agents take over
	OpeningSeed  uint64          `json:"openingSeed"`  // plus the game's round
	StartTime    time.Time       `json:"startTime"`
	EndTime      time.Time       `json:"endTime"`
	Duration     time.Duration   `json:"duration"`
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the maximizer
	Agent2 int // AgentConfig.ID of the minimizer
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(start, end time.Time, matchups [][]AgentConfig, numGames int, openingTurns int, openingSeed uint64) (err error) {
	setup := Setup{
		Matchups:     matchups,
		NumGames:     numGames,
		OpeningTurns: openingTurns,
		OpeningSeed:  openingSeed,
		StartTime:    start,
		EndTime:      end,
		Duration:     end.Sub(start),
	}

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer closeFile(f, "setup file", &err)

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "goroutines", "threats", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.Threats),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "start_time", "end_time", "duration", "turns", "plies"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
			strconv.Itoa(record.TotalPlies),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "turn", "ply", "agent", "maximizing", "depth", "goroutines", "duration", "nodes", "terminal_leaves", "horizon_leaves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Ply),
			strconv.Itoa(record.Agent),
			strconv.FormatBool(record.Maximizing),
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.TerminalLeaves),
			strconv.Itoa(record.HorizonLeaves),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) (err error) {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer closeFile(f, name, &err)

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// closeFile closes f and reports a close failure through err unless an
// earlier error is already set.
func closeFile(f *os.File, name string, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close %s: %w", name, cerr)
	}
}
