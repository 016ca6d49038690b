package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"mcts/meta"
	"mcts/searcher"
)

var (
	cfgFile = "mcts/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

const (
	GameNim       = "nim"
	GameTicTacToe = "tictactoe"

	PolicyUniform   = "uniform"
	PolicyHeuristic = "heuristic"
)

type Config struct {
	Game        string  `json:"game"`
	Piles       []int   `json:"piles"`
	Iterations  int     `json:"iterations"`
	Seed        uint64  `json:"seed"` // 0 seeds from the clock
	Exploration float64 `json:"exploration"`
	Policy      string  `json:"policy"`
	Criterion   string  `json:"criterion"`
	Games       int     `json:"games"`
	Workers     int     `json:"workers"`
	MaxTurns    int     `json:"max_turns"`
	OutputDir   string  `json:"output_dir"`
	LogLevel    string  `json:"log_level"`
}

var DefaultConfig = Config{
	Game:        GameNim,
	Piles:       []int{3, 6, 9},
	Iterations:  meta.ITERATIONS,
	Exploration: searcher.DefaultExploration,
	Policy:      PolicyHeuristic,
	Criterion:   searcher.MostWins.String(),
	Games:       meta.GAMES,
	Workers:     meta.WORKERS,
	MaxTurns:    meta.MAX_TURNS,
	OutputDir:   "results",
	LogLevel:    zerolog.LevelInfoValue,
}

// InitConfig loads the user's config file when one exists and the defaults
// otherwise.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		config.Piles = append([]int(nil), DefaultConfig.Piles...)
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the JSON file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	config.Piles = nil
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if config.Piles == nil {
		config.Piles = append([]int(nil), DefaultConfig.Piles...)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Game {
	case GameNim:
		total := 0
		for _, pile := range c.Piles {
			if pile < 0 {
				return &InvalidConfig{"piles cannot be negative"}
			}
			total += pile
		}
		if total == 0 {
			return &InvalidConfig{"at least one pile must hold an item"}
		}
	case GameTicTacToe:
	default:
		return &InvalidConfig{fmt.Sprintf("unknown game %q", c.Game)}
	}

	if c.Iterations <= 0 {
		return &InvalidConfig{"iterations must be positive"}
	}
	if c.Exploration < 0 {
		return &InvalidConfig{"exploration cannot be negative"}
	}
	if c.Policy != PolicyUniform && c.Policy != PolicyHeuristic {
		return &InvalidConfig{fmt.Sprintf("policy must be %q or %q", PolicyUniform, PolicyHeuristic)}
	}
	if _, err := searcher.ParseCriterion(c.Criterion); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Games <= 0 || c.Workers <= 0 || c.MaxTurns <= 0 {
		return &InvalidConfig{"games, workers and max_turns must be positive"}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.Wrap(err, "locating config file")
	}
	return c.SaveTo(absPath)
}

func (c *Config) SaveTo(path string) error {
	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}
	return errors.Wrapf(os.WriteFile(path, jsonData, 0o664), "writing config %s", path)
}
