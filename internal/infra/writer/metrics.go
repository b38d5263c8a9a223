package writer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"blogsmith/internal/domain/entity"
	"blogsmith/internal/utils/text"
)

// PostMetricsRecorder defines the interface for recording post synthesis
// metrics. It abstracts the metrics backend so unit tests can inject a mock
// and the noop writer can skip recording entirely.
type PostMetricsRecorder interface {
	// RecordBodyLength records the length of a generated post body in
	// characters (Unicode runes).
	RecordBodyLength(length int)

	// RecordTargetMiss increments the counter of posts whose body came in
	// under the configured length target.
	RecordTargetMiss()

	// RecordCompliance records whether the latest post met the body length
	// target.
	RecordCompliance(withinTarget bool)

	// RecordDuration records the time taken by one synthesis call.
	RecordDuration(duration time.Duration)

	// RecordFailure counts a failed synthesis attempt for the provider.
	RecordFailure(provider string)
}

// NoopPostMetrics discards all recordings.
type NoopPostMetrics struct{}

func (NoopPostMetrics) RecordBodyLength(int) {}

func (NoopPostMetrics) RecordTargetMiss() {}

func (NoopPostMetrics) RecordCompliance(bool) {}

func (NoopPostMetrics) RecordDuration(time.Duration) {}

func (NoopPostMetrics) RecordFailure(string) {}

// PrometheusPostMetrics implements PostMetricsRecorder using Prometheus
// metrics. This is the production implementation.
type PrometheusPostMetrics struct {
	lengthHistogram   prometheus.Histogram
	missCounter       prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram prometheus.Histogram
	failureCounter    *prometheus.CounterVec
}

var (
	prometheusMetricsInstance *PrometheusPostMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreateHistogram gets an existing histogram or creates a new one if it
// doesn't exist.
func getOrCreateHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		return promauto.NewHistogram(opts)
	}
	return h
}

// getOrCreateCounter gets an existing counter or creates a new one if it
// doesn't exist.
func getOrCreateCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		return promauto.NewCounter(opts)
	}
	return c
}

// getOrCreateGauge gets an existing gauge or creates a new one if it doesn't
// exist.
func getOrCreateGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	if err := prometheus.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge)
		}
		return promauto.NewGauge(opts)
	}
	return g
}

// getOrCreateCounterVec gets an existing counter vector or creates a new one
// if it doesn't exist.
func getOrCreateCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		return promauto.NewCounterVec(opts, labels)
	}
	return c
}

// NewPrometheusPostMetrics creates the Prometheus-backed metrics recorder.
// Uses a singleton to avoid duplicate metric registration in tests.
func NewPrometheusPostMetrics() *PrometheusPostMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusPostMetrics{
			lengthHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "post_body_length_characters",
				Help:    "Distribution of generated post body lengths in characters (Unicode runes)",
				Buckets: []float64{250, 500, 750, 1000, 1250, 1500, 2000, 2500, 3000, 4000},
			}),
			missCounter: getOrCreateCounter(prometheus.CounterOpts{
				Name: "post_body_target_miss_total",
				Help: "Total number of posts whose body fell short of the length target",
			}),
			complianceGauge: getOrCreateGauge(prometheus.GaugeOpts{
				Name: "post_body_target_compliance_ratio",
				Help: "1 when the most recent post met the body length target, 0 otherwise",
			}),
			durationHistogram: getOrCreateHistogram(prometheus.HistogramOpts{
				Name:    "post_generation_duration_seconds",
				Help:    "Time taken to synthesize a post via an AI API",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
			}),
			failureCounter: getOrCreateCounterVec(prometheus.CounterOpts{
				Name: "post_generation_failures_total",
				Help: "Total number of failed synthesis attempts by provider",
			}, []string{"provider"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordBodyLength implements PostMetricsRecorder.RecordBodyLength
func (p *PrometheusPostMetrics) RecordBodyLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordTargetMiss implements PostMetricsRecorder.RecordTargetMiss
func (p *PrometheusPostMetrics) RecordTargetMiss() {
	p.missCounter.Inc()
}

// RecordCompliance implements PostMetricsRecorder.RecordCompliance
func (p *PrometheusPostMetrics) RecordCompliance(withinTarget bool) {
	if withinTarget {
		p.complianceGauge.Set(1.0)
	} else {
		p.complianceGauge.Set(0.0)
	}
}

// RecordDuration implements PostMetricsRecorder.RecordDuration
func (p *PrometheusPostMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}

// RecordFailure implements PostMetricsRecorder.RecordFailure
func (p *PrometheusPostMetrics) RecordFailure(provider string) {
	p.failureCounter.WithLabelValues(provider).Inc()
}

// recordResult logs and records metrics for a successfully parsed post. The
// body length target is soft: a shortfall is logged and counted, never
// rejected.
func recordResult(ctx context.Context, recorder PostMetricsRecorder, provider string, post *entity.Post, minBodyChars int, duration time.Duration) {
	bodyLength := text.CountRunes(post.PostContent)
	withinTarget := bodyLength >= minBodyChars

	slog.InfoContext(ctx, "post synthesis completed",
		slog.String("provider", provider),
		slog.Int("body_length", bodyLength),
		slog.Int("body_target", minBodyChars),
		slog.Bool("within_target", withinTarget),
		slog.Duration("duration", duration))

	if !withinTarget {
		slog.WarnContext(ctx, "post body below length target",
			slog.String("provider", provider),
			slog.Int("body_length", bodyLength),
			slog.Int("target", minBodyChars),
			slog.Int("shortfall", minBodyChars-bodyLength))
	}

	recorder.RecordBodyLength(bodyLength)
	recorder.RecordDuration(duration)
	recorder.RecordCompliance(withinTarget)
	if !withinTarget {
		recorder.RecordTargetMiss()
	}
}
