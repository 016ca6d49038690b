package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcts/config"
	"mcts/engine"
	"mcts/experiments"
	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/nim"
	"mcts/player"
	"mcts/searcher"
	"mcts/tictactoe"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay, experiment, throughput or dot")
	cfgPath := flag.String("config", "", "JSON config file (default: searched in the XDG config dirs)")
	gameName := flag.String("game", "", "nim or tictactoe")
	iterations := flag.Int("iterations", 0, "MCTS iterations per move")
	seed := flag.Uint64("seed", 0, "random seed, 0 for the clock")
	policy := flag.String("policy", "", "uniform or heuristic")
	criterion := flag.String("criterion", "", "most-wins or most-visits")
	games := flag.Int("games", 0, "games per experiment match-up")
	workers := flag.Int("workers", 0, "games played concurrently in experiments")
	second := flag.Bool("second", false, "let the computer open in play mode")
	save := flag.Bool("save", false, "store the effective config in the XDG config dir")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *gameName != "" {
		cfg.Game = *gameName
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *policy != "" {
		cfg.Policy = *policy
	}
	if *criterion != "" {
		cfg.Criterion = *criterion
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	if *save {
		if err := cfg.Save(); err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, cfg, *second)
	case "selfplay":
		err = selfPlay(ctx, cfg)
	case "experiment":
		err = experiment(ctx, cfg)
	case "throughput":
		err = throughput(ctx, cfg)
	case "dot":
		err = dot(cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}

func newGame(cfg *config.Config) func() game.Game {
	if cfg.Game == config.GameTicTacToe {
		return func() game.Game { return tictactoe.New() }
	}
	return func() game.Game { return nim.New(cfg.Piles...) }
}

func gamePolicies(cfg *config.Config) searcher.Policies {
	if cfg.Game == config.GameTicTacToe {
		return tictactoe.Policies()
	}
	return nim.Policies()
}

func searchConfig(cfg *config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          1,
		Kind:        experiments.KindMCTS,
		Iterations:  cfg.Iterations,
		Exploration: cfg.Exploration,
		Policy:      cfg.Policy,
		Criterion:   cfg.Criterion,
	}
}

func play(ctx context.Context, cfg *config.Config, computerOpens bool) error {
	g := newGame(cfg)()
	computer, err := experiments.NewAgent(searchConfig(cfg), g, gamePolicies(cfg), cfg.Seed)
	if err != nil {
		return err
	}

	var human *player.Human
	switch parser := g.(type) {
	case *nim.Game:
		human = player.NewHuman(parser, os.Stdin, os.Stdout, "<pile> <count>")
	case tictactoe.Game:
		human = player.NewHuman(parser, os.Stdin, os.Stdout, "<row> <column>")
	default:
		return fmt.Errorf("no console input for %T", g)
	}

	agents, humanPlays := []engine.Agent{human, computer}, g.Opener()
	if computerOpens {
		agents, humanPlays = []engine.Agent{computer, human}, g.Opener().Opponent()
	}
	e := engine.New(g, agents...).SetMaxTurns(cfg.MaxTurns).OnMove(func(u engine.Update) {
		fmt.Printf("move %d: %v\n", u.Step, u.Move)
		if u.State.IsTerminal() || u.State.Player() != humanPlays { // The prompt shows the board
			player.Print(os.Stdout, u.State)
		}
	})
	_, err = e.Run(ctx)
	return err
}

func selfPlay(ctx context.Context, cfg *config.Config) error {
	g := newGame(cfg)()
	first, err := experiments.NewAgent(searchConfig(cfg), g, gamePolicies(cfg), cfg.Seed)
	if err != nil {
		return err
	}
	second, err := experiments.NewAgent(searchConfig(cfg), g, gamePolicies(cfg), cfg.Seed+1)
	if err != nil {
		return err
	}

	result, err := engine.New(g, first, second).SetMaxTurns(cfg.MaxTurns).OnMove(func(u engine.Update) {
		fmt.Printf("move %d: %v\n", u.Step, u.Move)
		player.Print(os.Stdout, u.State)
	}).Run(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("moves", result.Game.TotalMoves).Dur("duration", result.Game.Duration).Msg("self-play finished")
	return nil
}

func experiment(ctx context.Context, cfg *config.Config) error {
	for _, exp := range []experiments.Experiment{
		experiments.MCTSAgainstRandom(cfg.Game+"_mcts_vs_random", newGame(cfg), gamePolicies(cfg), searchConfig(cfg)),
		experiments.RandomAgainstRandom(cfg.Game+"_random_vs_random", newGame(cfg)),
	} {
		exp.Games, exp.Workers, exp.MaxTurns = cfg.Games, cfg.Workers, cfg.MaxTurns
		exp.Seed, exp.OutputDir = cfg.Seed, cfg.OutputDir

		summary, err := experiments.Run(ctx, exp)
		if err != nil {
			return err
		}
		for _, s := range summary.MatchUps {
			fmt.Printf("%s: agent%d (opener) vs agent%d: %d-%d-%d, opener win rate %.3f\n",
				exp.Name, s.Agent1, s.Agent2, s.Wins1, s.Wins2, s.Draws, s.WinRate())
		}
		log.Info().Str("dir", summary.Dir).Msg("records stored")
	}
	return nil
}

func throughput(ctx context.Context, cfg *config.Config) error {
	var options []searcher.Option
	if cfg.Policy == config.PolicyHeuristic {
		options = append(options, searcher.WithPolicies(gamePolicies(cfg)))
	}
	searches, err := experiments.Throughput(ctx, newGame(cfg)(), []int{100, 1000, 10000, cfg.Iterations}, cfg.Seed, options...)
	if err != nil {
		return err
	}
	dir, err := experiments.StoreThroughput(cfg.OutputDir, searches)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("records stored")
	return nil
}

func dot(cfg *config.Config) error {
	options := []searcher.Option{searcher.WithSeed(cfg.Seed)}
	if cfg.Policy == config.PolicyHeuristic {
		options = append(options, searcher.WithPolicies(gamePolicies(cfg)))
	}
	tree := searcher.NewGameTree(newGame(cfg)())
	if _, err := searcher.NewMCTS(tree, options...).Run(cfg.Iterations); err != nil {
		return err
	}
	graph, err := tree.ToDot()
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}
