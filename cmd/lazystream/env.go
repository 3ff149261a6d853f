package main

import (
	"context"
	stderrors "errors"
	"io"
	"maps"
	"time"

	"github.com/google/uuid"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	apperrors "github.com/kbukum/lazystream/errors"
	"github.com/kbukum/lazystream/logger"
	"github.com/kbukum/lazystream/observability"
	"github.com/kbukum/lazystream/validation"
)

// Extra provider options; tests use them to attach in-memory readers.
var (
	tracerOptions []sdktrace.TracerProviderOption
	meterOptions  []sdkmetric.Option
)

const shutdownTimeout = 2 * time.Second

// environment is what a command needs to run: configuration, a logger, the
// run id and the metric instruments.
type environment struct {
	cfg      *Config
	log      *logger.Logger
	runID    string
	metrics  *observability.StreamMetrics
	shutdown []func(context.Context) error
}

func setup(ctx context.Context) (*environment, error) {
	if err := validation.New().OptionalUUID("run-id", optionsData.RunID).Validate(); err != nil {
		return nil, err
	}
	runID := optionsData.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var out io.Writer = Stderr
	if cfg.Logging.Output == "stdout" {
		out = Stdout
	}
	logger.Install(logger.NewWriter(out, &cfg.Logging, serviceName))

	env := &environment{cfg: cfg, log: logger.Get(logger.ComponentCLI), runID: runID}

	tp, err := observability.InitTracer(ctx, &cfg.Observability.Tracing, tracerOptions...)
	if err != nil {
		return nil, err
	}
	env.shutdown = append(env.shutdown, tp.Shutdown)

	mp, err := observability.InitMeter(ctx, &cfg.Observability.Metrics, meterOptions...)
	if err != nil {
		env.close()
		return nil, err
	}
	env.shutdown = append(env.shutdown, mp.Shutdown)

	env.metrics, err = observability.NewStreamMetrics(observability.Meter(serviceName))
	if err != nil {
		env.close()
		return nil, err
	}
	return env, nil
}

// close flushes and stops the telemetry providers in reverse order.
func (e *environment) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(e.shutdown) - 1; i >= 0; i-- {
		if err := e.shutdown[i](ctx); err != nil {
			e.log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}
}

// commandFunc runs a command body and reports how many elements it produced.
type commandFunc func(ctx context.Context, env *environment) (int, error)

// runCommand sets up the environment and runs body inside a traced,
// measured and logged operation bounded by the configured timeout.
func runCommand(name, sequence string, body commandFunc) error {
	start := time.Now()
	env, err := setup(context.Background())
	if err != nil {
		return err
	}
	defer env.close()

	ctx := logger.ContextWithRunID(context.Background(), env.runID)
	ctx, cancel := context.WithTimeout(ctx, env.cfg.Stream.Timeout)
	defer cancel()

	op := observability.NewOperation(name, sequence, env.runID, env.metrics)
	ctx, span := op.Start(ctx)
	log := env.log.WithContext(ctx)
	log.Timed("environment ready", "setup", start)
	log.Debug("command started", logger.Fields(logger.FieldCommand, name, logger.FieldSequence, sequence))

	count, err := body(ctx, env)
	if stderrors.Is(err, context.DeadlineExceeded) {
		err = apperrors.Timeout(name).WithCause(err).WithDetail("timeout", env.cfg.Stream.Timeout.String())
	}
	status := op.End(ctx, span, count, err)

	fields := logger.DurationFields(name, op.Duration())
	maps.Copy(fields, logger.StreamFields(sequence, count))
	fields[logger.FieldCommand] = name
	fields[logger.FieldStatus] = status
	if err != nil {
		log.WithError(err).Warn("command failed", fields)
		return err
	}
	log.Info("command finished", fields)
	return nil
}

// countArg resolves a -n style option: negative means the configured
// default. The result is checked against the configured maximum.
func (e *environment) countArg(field string, n int) (int, error) {
	if n < 0 {
		n = e.cfg.Stream.DefaultCount
	}
	if err := validation.New().Max(field, n, e.cfg.Stream.MaxCount).Validate(); err != nil {
		return 0, err
	}
	return n, nil
}
