package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics of the arena games
type Metrics struct {
	games *prometheus.CounterVec
	nodes *prometheus.HistogramVec
}

// Register the arena metrics on 'reg', panics if they are already registered there
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		games: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "alphabeta",
			Subsystem: "arena",
			Name:      "games_total",
			Help:      "Finished arena games by result",
		}, []string{"result"}),
		nodes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "alphabeta",
			Subsystem: "arena",
			Name:      "search_nodes",
			Help:      "Nodes visited by a single search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"player"}),
	}
}

func (m *Metrics) observeSearch(player string, nodes uint64) {
	if m == nil {
		return
	}
	m.nodes.WithLabelValues(player).Observe(float64(nodes))
}

func (m *Metrics) observeGame(result VersusMatchResult) {
	if m == nil {
		return
	}
	m.games.WithLabelValues(result.String()).Inc()
}
