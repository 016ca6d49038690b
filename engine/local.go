package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/gamemaster"
	"mcts/meta"
)

// Update is handed to the move observer after every played move.
type Update struct {
	Step  int
	Move  game.Move
	State game.State
}

type Engine struct {
	game     game.Game
	master   gamemaster.Master
	agents   []Agent
	maxTurns int
	observer func(Update)
}

// New sets up a game between two agents, the first playing the opener.
func New(g game.Game, agents ...Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{
		game:     g,
		master:   gamemaster.NewLocal(g),
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
}

// SetMaxTurns caps the number of moves; n <= 0 keeps the default.
func (e *Engine) SetMaxTurns(n int) *Engine {
	if n > 0 {
		e.maxTurns = n
	}
	return e
}

// OnMove registers a callback invoked after every move.
func (e *Engine) OnMove(observer func(Update)) *Engine {
	e.observer = observer
	return e
}

func (e *Engine) agentFor(p game.Player) (Agent, error) {
	opener := e.game.Opener()
	switch p {
	case opener:
		return e.agents[0], nil
	case opener.Opponent():
		return e.agents[1], nil
	default:
		return nil, fmt.Errorf("no agent plays %v", p)
	}
}

// Run plays the game until it ends or the turn cap is reached.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	state, getUpdate := e.master.Init()
	result := Result{
		Game: metrics.GameMetric{Opener: e.game.Opener(), StartTime: time.Now()},
	}
	log.Info().Msgf("%v is starting", state.Player())

	finish := func() Result {
		result.Final = e.master.State()
		result.Winner, result.Decided = result.Final.Winner()
		result.Game.Winner = result.Winner
		result.Game.EndTime = time.Now()
		result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
		result.Game.TotalMoves = len(result.Moves)
		return result
	}

	for turn := 1; !e.master.IsOver() && turn <= e.maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return finish(), err
		}

		state = e.master.State()
		player := state.Player()
		agent, err := e.agentFor(player)
		if err != nil {
			return finish(), err
		}

		move, search, err := agent.FindMove(ctx, state)
		if err != nil {
			return finish(), fmt.Errorf("turn %d: %v failed to move: %w", turn, player, err)
		}
		if err := e.master.Play(move); err != nil {
			return finish(), fmt.Errorf("turn %d: %w", turn, err)
		}
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: search,
		})

		played, next := getUpdate()
		log.Debug().Int("turn", turn).Msgf("%v", played)
		if e.observer != nil {
			e.observer(Update{Step: turn, Move: played, State: next})
		}
	}

	r := finish()
	switch {
	case r.Decided:
		log.Info().Int("moves", len(r.Moves)).Msgf("%v wins", r.Winner)
	case r.Final.IsTerminal():
		log.Info().Int("moves", len(r.Moves)).Msg("draw")
	default:
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}
	return r, nil
}
