package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"mcts/engine"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/meta"
	"mcts/searcher"
)

const (
	KindMCTS   = "mcts"
	KindRandom = "random"

	PolicyUniform   = "uniform"
	PolicyHeuristic = "heuristic"
)

// Experiment plays every match-up Games times. The first agent of a match-up
// always plays the opener.
type Experiment struct {
	Name      string
	NewGame   func() game.Game
	Policies  searcher.Policies // used by agents with the heuristic policy
	Configs   []metrics.AgentConfig
	MatchUps  [][2]metrics.AgentConfig
	Games     int
	Workers   int
	MaxTurns  int
	Seed      uint64
	OutputDir string // no CSV files are written when empty
}

type MatchUpSummary struct {
	Agent1, Agent2 int
	Games          int
	Wins1, Wins2   int
	Draws          int
	Unfinished     int
}

// WinRate is the share of games won by the first agent.
func (s MatchUpSummary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins1) / float64(s.Games)
}

type Summary struct {
	MatchUps []MatchUpSummary
	Dir      string // where the records were stored, if anywhere
}

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
	final  game.State
}

// NewAgent builds the agent described by config for games of g.
func NewAgent(config metrics.AgentConfig, g game.Game, policies searcher.Policies, seed uint64) (engine.Agent, error) {
	switch config.Kind {
	case KindRandom:
		return engine.NewRandomAgent(seed), nil
	case KindMCTS:
		criterion, err := searcher.ParseCriterion(config.Criterion)
		if err != nil {
			return nil, err
		}
		options := []searcher.Option{searcher.WithBestChild(criterion)}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExploration(config.Exploration))
		}
		switch config.Policy {
		case "", PolicyUniform:
		case PolicyHeuristic:
			options = append(options, searcher.WithPolicies(policies))
		default:
			return nil, fmt.Errorf("agent %d: unknown policy %q", config.ID, config.Policy)
		}
		iterations := config.Iterations
		if iterations <= 0 {
			iterations = meta.ITERATIONS
		}
		return engine.NewMCTSAgent(g.Opener(), iterations, seed, options...), nil
	}
	return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
}

// Run plays all games of the experiment, Workers at a time, and stores the
// records when an output directory is set.
func Run(ctx context.Context, exp Experiment) (Summary, error) {
	games, workers := exp.Games, exp.Workers
	if games <= 0 {
		games = meta.GAMES
	}
	if workers <= 0 {
		workers = meta.WORKERS
	}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	results := make([]gameResult, len(exp.MatchUps)*games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for mi, matchUp := range exp.MatchUps {
		mi, matchUp := mi, matchUp
		for i := 0; i < games; i++ {
			i := i
			id := mi*games + i
			g.Go(func() error {
				result, err := playGame(ctx, exp, matchUp, uint64(id))
				if err != nil {
					return fmt.Errorf("match-up %d game %d: %w", mi+1, i+1, err)
				}
				result.record.ID = id + 1
				results[id] = result
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range exp.MatchUps {
		s := MatchUpSummary{Agent1: matchUp[0].ID, Agent2: matchUp[1].ID}
		opener := exp.NewGame().Opener()
		for _, result := range results[mi*games : (mi+1)*games] {
			s.Games++
			switch winner := result.record.Winner; {
			case winner == opener:
				s.Wins1++
			case winner == opener.Opponent():
				s.Wins2++
			case result.final.IsTerminal():
				s.Draws++
			default:
				s.Unfinished++
			}
			gameRecords = append(gameRecords, result.record)
			for _, mm := range result.moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: result.record.ID, MoveMetric: mm})
			}
		}
		log.Info().Msgf("completed match-up %d of %d: agent%d won %d, agent%d won %d, %d draws (%.3f)",
			mi+1, len(exp.MatchUps), s.Agent1, s.Wins1, s.Agent2, s.Wins2, s.Draws, s.WinRate())
		summary.MatchUps = append(summary.MatchUps, s)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(exp, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func playGame(ctx context.Context, exp Experiment, matchUp [2]metrics.AgentConfig, id uint64) (gameResult, error) {
	g := exp.NewGame()
	seed := exp.Seed + 2*id
	agent1, err := NewAgent(matchUp[0], g, exp.Policies, seed)
	if err != nil {
		return gameResult{}, err
	}
	agent2, err := NewAgent(matchUp[1], g, exp.Policies, seed+1)
	if err != nil {
		return gameResult{}, err
	}

	result, err := engine.New(g, agent1, agent2).SetMaxTurns(exp.MaxTurns).Run(ctx)
	if err != nil {
		return gameResult{}, err
	}
	return gameResult{
		record: metrics.GameRecord{
			Agent1:     matchUp[0].ID,
			Agent2:     matchUp[1].ID,
			GameMetric: result.Game,
		},
		moves: result.Moves,
		final: result.Final,
	}, nil
}

func store(exp Experiment, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(games); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moves); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// MCTSAgainstRandom pits an MCTS agent against the uniform random agent, once
// with each of them opening.
func MCTSAgainstRandom(name string, newGame func() game.Game, policies searcher.Policies, search metrics.AgentConfig) Experiment {
	search.ID, search.Kind = 1, KindMCTS
	random := metrics.AgentConfig{ID: 2, Kind: KindRandom}
	return Experiment{
		Name:     name,
		NewGame:  newGame,
		Policies: policies,
		Configs:  []metrics.AgentConfig{search, random},
		MatchUps: [][2]metrics.AgentConfig{{search, random}, {random, search}},
	}
}

// RandomAgainstRandom estimates the opener's advantage under random play.
func RandomAgainstRandom(name string, newGame func() game.Game) Experiment {
	random := metrics.AgentConfig{ID: 1, Kind: KindRandom}
	return Experiment{
		Name:     name,
		NewGame:  newGame,
		Configs:  []metrics.AgentConfig{random},
		MatchUps: [][2]metrics.AgentConfig{{random, random}},
	}
}
