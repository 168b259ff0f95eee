package metrics

import (
	"time"

	"capy_automator/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "capy_automator"

// Recorder collects run metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	stages     *prometheus.CounterVec
	wallets    *prometheus.CounterVec
	rpcLatency *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_stages_total",
			Help:      "Lifecycle stages finished, by stage and status.",
		}, []string{"stage", "status"}),
		wallets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallets_total",
			Help:      "Wallets processed, by outcome.",
		}, []string{"outcome"}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_call_duration_seconds",
			Help:      "Latency of JSON-RPC calls to the fullnode.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
	reg.MustRegister(r.stages, r.wallets, r.rpcLatency)
	return r
}

// StageDone counts a finished stage.
func (r *Recorder) StageDone(stage entity.Stage, err error) {
	if r == nil {
		return
	}
	r.stages.WithLabelValues(stage.String(), status(err)).Inc()
}

// WalletDone counts a finished wallet.
func (r *Recorder) WalletDone(outcome entity.Outcome) {
	if r == nil {
		return
	}
	r.wallets.WithLabelValues(string(outcome)).Inc()
}

// ObserveRPC records the latency of one RPC call.
func (r *Recorder) ObserveRPC(method string, started time.Time, err error) {
	if r == nil {
		return
	}
	r.rpcLatency.WithLabelValues(method, status(err)).Observe(time.Since(started).Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
