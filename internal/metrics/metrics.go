package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tictactoe"

// Metrics holds the game counters on a private registry so several instances can coexist.
type Metrics struct {
	Registry *prometheus.Registry

	movesTotal    *prometheus.CounterVec
	gamesFinished *prometheus.CounterVec
	movesInGame   prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		movesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Taps on the board by result",
		}, []string{"result"}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Finished games by outcome",
		}, []string{"outcome"}),
		movesInGame: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "moves_in_game",
			Help:      "Marks on the current board",
		}),
	}

	m.Registry.MustRegister(m.movesTotal, m.gamesFinished, m.movesInGame)

	return m
}

func (that *Metrics) ObserveMove(result string, movesOnBoard int) {
	that.movesTotal.WithLabelValues(result).Inc()
	that.movesInGame.Set(float64(movesOnBoard))
}

func (that *Metrics) ObserveGameFinished(outcome string) {
	that.gamesFinished.WithLabelValues(outcome).Inc()
}

func (that *Metrics) ObserveReset() {
	that.movesInGame.Set(0)
}
