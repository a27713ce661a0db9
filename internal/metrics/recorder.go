package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/sysmon"
)

const namespace = "fractalcmp"

// Outcome labels attached to fractalcmp_renders_total.
const (
	OutcomeOK        = "ok"
	OutcomeTimeout   = "timeout"
	OutcomeCanceled  = "canceled"
	OutcomeExecution = "execution_failure"
	OutcomeDecode    = "decode_error"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Recorder owns a private Prometheus registry for a single run. A nil
// *Recorder is valid and records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	renders     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	outputBytes *prometheus.GaugeVec
	mismatches  prometheus.Counter
	hostCPU     *prometheus.GaugeVec
	hostMemory  *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renders_total",
				Help:      "Renders completed, by renderer and outcome.",
			},
			[]string{"renderer", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "render_duration_seconds",
				Help:      "Wall-clock duration of a render in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"renderer"},
		),
		outputBytes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "render_output_bytes",
				Help:      "Size of the last successful render output in bytes.",
			},
			[]string{"renderer"},
		),
		mismatches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mismatches_total",
				Help:      "Comparisons in which valid renders disagreed.",
			},
		),
		hostCPU: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "host_cpu_percent",
				Help:      "System-wide CPU usage sampled before and after the run.",
			},
			[]string{"phase"},
		),
		hostMemory: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "host_memory_percent",
				Help:      "System-wide memory usage sampled before and after the run.",
			},
			[]string{"phase"},
		),
	}
	r.registry.MustRegister(r.renders, r.duration, r.outputBytes, r.mismatches, r.hostCPU, r.hostMemory)
	return r
}

// ObserveRender records one finished render.
func (r *Recorder) ObserveRender(renderer string, d time.Duration, outputLen int, err error) {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(renderer, OutcomeFor(err)).Inc()
	r.duration.WithLabelValues(renderer).Observe(d.Seconds())
	if err == nil {
		r.outputBytes.WithLabelValues(renderer).Set(float64(outputLen))
	}
}

// ObserveMismatch counts a comparison whose valid results differed.
func (r *Recorder) ObserveMismatch() {
	if r == nil {
		return
	}
	r.mismatches.Inc()
}

// ObserveHost records the host load around the run.
func (r *Recorder) ObserveHost(load sysmon.Load) {
	if r == nil {
		return
	}
	r.hostCPU.WithLabelValues("before").Set(load.Before.CPUPercent)
	r.hostCPU.WithLabelValues("after").Set(load.After.CPUPercent)
	r.hostMemory.WithLabelValues("before").Set(load.Before.MemPercent)
	r.hostMemory.WithLabelValues("after").Set(load.After.MemPercent)
}

// Gatherer exposes the registry, e.g. for promhttp or tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry in the text exposition format, suitable
// for the node_exporter textfile collector. The write is atomic.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.Gatherer())
}

// OutcomeFor classifies err into an outcome label.
func OutcomeFor(err error) string {
	if err == nil {
		return OutcomeOK
	}
	switch apperrors.ExitCodeFor(err) {
	case apperrors.ExitErrorTimeout:
		return OutcomeTimeout
	case apperrors.ExitErrorCanceled:
		return OutcomeCanceled
	case apperrors.ExitErrorExecution:
		return OutcomeExecution
	case apperrors.ExitErrorDecode:
		return OutcomeDecode
	case apperrors.ExitErrorConfig:
		return OutcomeInvalid
	}
	return OutcomeError
}
