package experiments

import (
	"context"

	"github.com/rs/zerolog/log"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/searcher"
)

// Throughput times one search from the starting position for every budget
// and returns the collected search metrics in budget order.
func Throughput(ctx context.Context, g game.Game, budgets []int, seed uint64, options ...searcher.Option) ([]metrics.SearchMetric, error) {
	results := make([]metrics.SearchMetric, 0, len(budgets))

	log.Info().Msg("starting throughput experiment...")
	for _, budget := range budgets {
		tree := searcher.NewGameTree(g)
		m := searcher.NewMCTS(tree, append([]searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}, options...)...)
		if _, err := m.RunContext(ctx, budget); err != nil {
			return results, err
		}

		search := m.Metrics()
		results = append(results, search)
		rate := float64(search.Iterations) / search.Duration.Seconds()
		log.Info().Int("iterations", search.Iterations).Int("nodes", search.TreeSize).
			Msgf("%.0f iterations/s", rate)
	}
	log.Info().Msg("completed throughput experiment")
	return results, nil
}

// StoreThroughput writes the metrics of Throughput under root.
func StoreThroughput(root string, searches []metrics.SearchMetric) (string, error) {
	writer, err := metrics.NewWriter(root, "throughput")
	if err != nil {
		return "", err
	}
	return writer.Dir(), writer.WriteSearchMetrics("searches.csv", searches)
}
