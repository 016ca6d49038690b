package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID          int
	Kind        string // "mcts" or "random"
	Iterations  int
	Exploration float64
	Policy      string
	Criterion   string
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the opener
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory %s", baseDir)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) write(file string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "failed to close %s", file)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", file)
	}
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s rows", file)
	}
	return errors.Wrapf(f.Sync(), "failed to sync %s", file)
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Iterations),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			config.Policy,
			config.Criterion,
		})
	}
	return w.write("agent_configs.csv",
		[]string{"id", "kind", "iterations", "exploration", "policy", "criterion"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Opener.String(),
			record.Winner.String(),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv",
		[]string{"id", "agent1", "agent2", "opener", "winner", "moves", "start_time", "end_time", "duration"}, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Duration.String(),
			strconv.Itoa(record.Iterations),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.DeadEnds),
			strconv.Itoa(record.RolloutMoves),
			strconv.Itoa(record.TreeSize),
		})
	}
	return w.write("move_records.csv",
		[]string{"game", "step", "player", "duration", "iterations", "expansions", "dead_ends", "rollout_moves", "tree_size"}, rows)
}

// WriteSearchMetrics stores standalone search measurements, one per row.
func (w *Writer) WriteSearchMetrics(file string, searches []SearchMetric) error {
	rows := make([][]string, 0, len(searches))
	for _, s := range searches {
		rows = append(rows, []string{
			strconv.Itoa(s.Iterations),
			strconv.Itoa(s.Expansions),
			strconv.Itoa(s.RolloutMoves),
			strconv.Itoa(s.TreeSize),
			strconv.FormatInt(s.Duration.Microseconds(), 10),
		})
	}
	return w.write(file,
		[]string{"iterations", "expansions", "rollout_moves", "tree_size", "duration_us"}, rows)
}
