package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/lazystream/errors"
	"github.com/kbukum/lazystream/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported in the service.name resource attribute.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the program.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (development, staging, production).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	// When empty, measurements are aggregated but not exported.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP to the endpoint.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns a config that aggregates locally without exporting.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter creates a meter provider and installs it as the global provider.
// Extra options, such as an additional reader, are applied last. The caller
// must shut the provider down on exit to flush pending exports.
func InitMeter(ctx context.Context, config *MeterConfig, opts ...sdkmetric.Option) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("component", "meter")
	}

	providerOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if config.Endpoint != "" {
		exporterOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(config.Endpoint)}
		if config.Insecure {
			exporterOpts = append(exporterOpts, otlpmetrichttp.WithInsecure())
		}
		exporter, err := otlpmetrichttp.New(ctx, exporterOpts...)
		if err != nil {
			return nil, errors.Internal(err).WithDetail("component", "metric exporter")
		}

		readerOpts := []sdkmetric.PeriodicReaderOption{}
		if config.Interval > 0 {
			readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
		}
		providerOpts = append(providerOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)))
	}

	mp := sdkmetric.NewMeterProvider(append(providerOpts, opts...)...)
	otel.SetMeterProvider(mp)

	logger.Get(logger.ComponentObservability).Debug("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Operation statuses recorded on stream.operation.total.
const (
	StatusOK      = "ok"
	StatusEmpty   = "empty"
	StatusTimeout = "timeout"
	StatusError   = "error"
)

// StreamMetrics holds the instruments recorded around stream consumption.
type StreamMetrics struct {
	elementsRealized  metric.Int64Counter
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
}

// NewStreamMetrics creates the stream instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	elementsRealized, err := meter.Int64Counter("stream.elements.realized",
		metric.WithDescription("Stream elements forced into memory"),
		metric.WithUnit("{element}"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", "stream.elements.realized")
	}

	operationTotal, err := meter.Int64Counter("stream.operation.total",
		metric.WithDescription("Stream operations by status"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", "stream.operation.total")
	}

	operationDuration, err := meter.Float64Histogram("stream.operation.duration",
		metric.WithDescription("Duration of stream operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, errors.Internal(err).WithDetail("instrument", "stream.operation.duration")
	}

	return &StreamMetrics{
		elementsRealized:  elementsRealized,
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
	}, nil
}

// RecordRealized adds n realized elements for a sequence.
func (m *StreamMetrics) RecordRealized(ctx context.Context, sequence string, n int64) {
	m.elementsRealized.Add(ctx, n, metric.WithAttributes(attribute.String(AttrSequence, sequence)))
}

// RecordOperation records a finished stream operation.
func (m *StreamMetrics) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	m.operationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrOperation, operation),
		attribute.String(AttrStatus, status),
	))
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrOperation, operation),
	))
}
