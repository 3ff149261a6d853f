// Package observability provides OpenTelemetry tracing and metrics for
// stream consumption.
//
// Tracing:
//
//	cfg := observability.DefaultTracerConfig("lazystream")
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mcfg := observability.DefaultMeterConfig("lazystream")
//	mp, err := observability.InitMeter(ctx, &mcfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewStreamMetrics(observability.Meter("lazystream"))
//	s = observability.Instrument(ctx, metrics, "primes", s)
//
// Operations tie the two together for a single command:
//
//	op := observability.NewOperation("take", "primes", runID, metrics)
//	ctx, span := op.Start(ctx)
//	...
//	op.End(ctx, span, n, err)
//
// Without an endpoint both providers run locally and export nothing.
package observability
