package metrics

import (
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "signer_pool"

// Service owns the prometheus registry and the collectors of the signer pool.
type Service struct {
	Registry *prometheus.Registry

	creates         *prometheus.CounterVec
	createDuration  *prometheus.HistogramVec
	recycles        prometheus.Counter
	signatures      prometheus.Counter
	signatureErrors prometheus.Counter
}

// New creates a Service with go runtime and process collectors registered.
func New() (*Service, error) {
	s := &Service{
		Registry: prometheus.NewRegistry(),
		creates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_creates_total",
			Help:      "Signing client creation attempts by outcome.",
		}, []string{"outcome"}),
		createDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "client_create_duration_seconds",
			Help:      "Time spent deriving keys and constructing signing clients.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		recycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_recycles_total",
			Help:      "Signing clients returned to the pool.",
		}),
		signatures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signatures_total",
			Help:      "Payloads signed through the pool.",
		}),
		signatureErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signature_errors_total",
			Help:      "Failed signing requests.",
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.creates,
		s.createDuration,
		s.recycles,
		s.signatures,
		s.signatureErrors,
	} {
		if err := s.Registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return s, nil
}

// ObserveCreate records the outcome of one client creation attempt.
func (s *Service) ObserveCreate(outcome string, took time.Duration) {
	s.creates.WithLabelValues(outcome).Inc()
	s.createDuration.WithLabelValues(outcome).Observe(took.Seconds())
}

// ObserveRecycle records a client being returned to the pool.
func (s *Service) ObserveRecycle() {
	s.recycles.Inc()
}

// ObserveSignature records a signing request through the pool.
func (s *Service) ObserveSignature(err error) {
	if err != nil {
		s.signatureErrors.Inc()
		return
	}
	s.signatures.Inc()
}

// PoolStatter is implemented by pools exposing puddle statistics.
type PoolStatter interface {
	Stat() *puddle.Stat
}

// RegisterPool exports the statistics of p, read on every scrape.
func (s *Service) RegisterPool(p PoolStatter) error {
	if err := s.Registry.Register(newPoolCollector(p)); err != nil {
		return errors.Wrap(err, "failed to register pool collector")
	}

	return nil
}

// Allocator is implemented by client factories handing out derivation indices.
type Allocator interface {
	Allocated() uint32
}

// RegisterAllocator exports the derivation indices consumed by a, read on every scrape.
func (s *Service) RegisterAllocator(a Allocator) error {
	allocated := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "derivation_indices_allocated",
		Help:      "Derivation indices consumed by the client factory.",
	}, func() float64 {
		return float64(a.Allocated())
	})

	if err := s.Registry.Register(allocated); err != nil {
		return errors.Wrap(err, "failed to register allocator gauge")
	}

	return nil
}
