package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter           metric.Meter
	customerGauge   metric.Int64ObservableGauge
	outboundGauge   metric.Int64ObservableGauge
	inboundGauge    metric.Int64ObservableGauge
	configuredGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"fake-third-party",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Customer count gauge (total and archived)
	oe.customerGauge, err = oe.meter.Int64ObservableGauge(
		"thirdparty.customers",
		metric.WithDescription("Number of customer records in the store"),
		metric.WithUnit("{customers}"),
		metric.WithInt64Callback(oe.observeCustomers),
	)
	if err != nil {
		return fmt.Errorf("creating customer gauge: %w", err)
	}

	// Outbound attempt gauge (per result)
	oe.outboundGauge, err = oe.meter.Int64ObservableGauge(
		"thirdparty.webhook.attempts",
		metric.WithDescription("Number of outbound webhook delivery attempts by result"),
		metric.WithUnit("{attempts}"),
		metric.WithInt64Callback(oe.observeOutbound),
	)
	if err != nil {
		return fmt.Errorf("creating outbound attempt gauge: %w", err)
	}

	// Inbound attempt gauge (per result)
	oe.inboundGauge, err = oe.meter.Int64ObservableGauge(
		"thirdparty.inbound.attempts",
		metric.WithDescription("Number of externally-originated call attempts by result"),
		metric.WithUnit("{attempts}"),
		metric.WithInt64Callback(oe.observeInbound),
	)
	if err != nil {
		return fmt.Errorf("creating inbound attempt gauge: %w", err)
	}

	// Webhook configured gauge (0 or 1)
	oe.configuredGauge, err = oe.meter.Int64ObservableGauge(
		"thirdparty.webhook.configured",
		metric.WithDescription("Whether an outbound webhook URL is configured"),
		metric.WithInt64Callback(oe.observeConfigured),
	)
	if err != nil {
		return fmt.Errorf("creating webhook configured gauge: %w", err)
	}

	return nil
}

// observeCustomers is a callback that reports customer counts
func (oe *OTelExporter) observeCustomers(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetCustomerCounts(ctx)
	if err != nil {
		return err
	}

	observer.Observe(counts.Total, metric.WithAttributes(
		attribute.String("customer.state", "total"),
	))
	observer.Observe(counts.Archived, metric.WithAttributes(
		attribute.String("customer.state", "archived"),
	))

	return nil
}

// observeOutbound is a callback that reports outbound attempt counts by result
func (oe *OTelExporter) observeOutbound(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetOutboundCounts(ctx)
	if err != nil {
		return err
	}

	observer.Observe(counts.Succeeded, metric.WithAttributes(
		attribute.String("attempt.result", "success"),
	))
	observer.Observe(counts.Failed, metric.WithAttributes(
		attribute.String("attempt.result", "failure"),
	))

	return nil
}

// observeInbound is a callback that reports inbound attempt counts by result
func (oe *OTelExporter) observeInbound(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetInboundCounts(ctx)
	if err != nil {
		return err
	}

	observer.Observe(counts.Succeeded, metric.WithAttributes(
		attribute.String("attempt.result", "success"),
	))
	observer.Observe(counts.Failed, metric.WithAttributes(
		attribute.String("attempt.result", "failure"),
	))

	return nil
}

// observeConfigured is a callback that reports the webhook configuration state
func (oe *OTelExporter) observeConfigured(ctx context.Context, observer metric.Int64Observer) error {
	configured, err := oe.collector.WebhookConfigured(ctx)
	if err != nil {
		return err
	}

	var v int64
	if configured {
		v = 1
	}
	observer.Observe(v)

	return nil
}

// ServeHTTP serves Prometheus-formatted metrics on the given HTTP handler
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
