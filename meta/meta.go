// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per move.
const ITERATIONS = 1000

// GAMES defines the number of games per experiment match-up.
const GAMES = 1000

// WORKERS defines the number of games played concurrently in experiments.
const WORKERS = 8

// MAX_TURNS caps the length of a single game.
const MAX_TURNS = 300
