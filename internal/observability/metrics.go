package observability

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for flame calculations.
type Metrics struct {
	Calculations      *prometheus.CounterVec // labels: operation, model
	CalculationErrors *prometheus.CounterVec // labels: operation, kind={invalid_value,missing_argument,shape_mismatch,other}
	MaskedElements    *prometheus.CounterVec // labels: operation

	BatchSize           *prometheus.HistogramVec // labels: operation
	CalculationDuration *prometheus.HistogramVec // labels: operation
}

// NewMetrics creates all calculation metrics and registers them with the
// default Prometheus registry. Collectors already registered under the same
// names are reused, so repeated calls share one set of series.
func NewMetrics(namespace string) *Metrics {
	m, err := NewMetricsWith(namespace, prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMetricsWith creates all calculation metrics and registers them with
// reg, reusing any identical collectors reg already holds.
func NewMetricsWith(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := NewUnregisteredMetrics(namespace)

	var err error
	if m.Calculations, err = register(reg, m.Calculations); err != nil {
		return nil, err
	}
	if m.CalculationErrors, err = register(reg, m.CalculationErrors); err != nil {
		return nil, err
	}
	if m.MaskedElements, err = register(reg, m.MaskedElements); err != nil {
		return nil, err
	}
	if m.BatchSize, err = register(reg, m.BatchSize); err != nil {
		return nil, err
	}
	if m.CalculationDuration, err = register(reg, m.CalculationDuration); err != nil {
		return nil, err
	}
	return m, nil
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting(namespace string) *Metrics {
	return NewUnregisteredMetrics(namespace)
}

// NewUnregisteredMetrics creates Metrics that no registry exports.
func NewUnregisteredMetrics(namespace string) *Metrics {
	return &Metrics{
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Successful calculations by operation and model.",
		}, []string{"operation", "model"}),
		CalculationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculation_errors_total",
			Help:      "Rejected calculations by operation and error kind.",
		}, []string{"operation", "kind"}),
		MaskedElements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "masked_elements_total",
			Help:      "Output elements left missing because of missing inputs or out-of-domain results.",
		}, []string{"operation"}),
		BatchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of elements per calculation.",
			Buckets:   []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}, []string{"operation"}),
		CalculationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Duration of a calculation call.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"operation"}),
	}
}

// register adds c to reg, or returns the collector reg already holds for
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("register metric: %w", err)
}
