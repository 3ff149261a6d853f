package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/kbukum/lazystream/errors"
	"github.com/kbukum/lazystream/observability"
)

const baseConfig = `
name: lazystream
environment: development
logging:
  format: json
stream:
  default_count: 5
  max_count: 100
  timeout: 5s
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// runCLI runs the command line with captured output. The base config is used
// unless args already name one.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	savedOut, savedErr := Stdout, Stderr
	Stdout, Stderr = &stdout, &stderr
	t.Cleanup(func() { Stdout, Stderr = savedOut, savedErr })

	hasConfig := false
	for _, a := range args {
		if a == "--config" || a == "-c" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append([]string{"--config", writeConfig(t, baseConfig)}, args...)
	}
	err := run(args)
	return stdout.String(), stderr.String(), err
}

func checkExit(t *testing.T, err error, want int) {
	t.Helper()
	if got := apperrors.ExitCode(err); got != want {
		t.Errorf("exit code = %d, want %d (err: %v)", got, want, err)
	}
}

func TestList(t *testing.T) {
	out, _, err := runCLI(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	want := "fibonacci\nnaturals\npowers2\nprimes\nsquares\ntriangular\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestExtraArgs(t *testing.T) {
	_, _, err := runCLI(t, "list", "extra")
	checkExit(t, err, 64)
}

func TestHelp(t *testing.T) {
	out, _, err := runCLI(t, "--help")
	if err != nil {
		t.Fatal(err)
	}
	for _, cmd := range []string{"take", "item", "reduce", "zip", "version"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help output missing %q", cmd)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := runCLI(t, "frobnicate")
	checkExit(t, err, 64)
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"primes", []string{"take", "primes", "-n", "5"}, "2\n3\n5\n7\n11\n"},
		{"config default count", []string{"take", "squares"}, "1\n4\n9\n16\n25\n"},
		{"skip", []string{"take", "naturals", "-n", "3", "--skip", "2"}, "3\n4\n5\n"},
		{"zero", []string{"take", "primes", "-n", "0"}, ""},
		{"inline", []string{"take", "fibonacci", "-n", "6", "--inline"}, "<1 1 2 3 5 8>\n"},
		{"powers", []string{"take", "powers2", "-n", "4"}, "1\n2\n4\n8\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tc.want {
				t.Errorf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestTake_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		exit int
	}{
		{"over max count", []string{"take", "primes", "-n", "101"}, 64},
		{"skip over max", []string{"take", "primes", "--skip", "101"}, 64},
		{"unknown sequence", []string{"take", "evens"}, 64},
		{"missing sequence", []string{"take"}, 64},
		{"bad count", []string{"take", "primes", "-n", "many"}, 64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			if err == nil {
				t.Fatalf("expected error, got output %q", out)
			}
			checkExit(t, err, tc.exit)
		})
	}
}

func TestTake_EnvOverride(t *testing.T) {
	t.Setenv("LAZYSTREAM_STREAM_DEFAULT_COUNT", "2")
	out, _, err := runCLI(t, "take", "naturals")
	if err != nil {
		t.Fatal(err)
	}
	if out != "1\n2\n" {
		t.Errorf("got %q, want two elements", out)
	}
}

func TestTake_Timeout(t *testing.T) {
	cfg := writeConfig(t, strings.Replace(baseConfig, "timeout: 5s", "timeout: 1ns", 1))
	_, _, err := runCLI(t, "--config", cfg, "take", "primes", "-n", "100")
	if !apperrors.HasCode(err, apperrors.ErrCodeTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
	checkExit(t, err, 75)
}

func TestItem(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"item", "primes", "0"}, "2\n"},
		{[]string{"item", "primes", "99"}, "541\n"},
		{[]string{"item", "fibonacci", "10"}, "89\n"},
		{[]string{"item", "triangular", "3"}, "10\n"},
	}
	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tc.want {
				t.Errorf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestItem_Errors(t *testing.T) {
	_, _, err := runCLI(t, "item", "naturals", "100")
	checkExit(t, err, 64)

	_, _, err = runCLI(t, "item", "naturals")
	checkExit(t, err, 64)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sum default", []string{"reduce", "naturals", "-n", "10"}, "55\n"},
		{"product", []string{"reduce", "naturals", "-n", "5", "--op", "product"}, "120\n"},
		{"count", []string{"reduce", "primes", "-n", "7", "--op", "count"}, "7\n"},
		{"empty sum", []string{"reduce", "primes", "-n", "0"}, "0\n"},
		{"empty product", []string{"reduce", "primes", "-n", "0", "--op", "product"}, "1\n"},
		{"config default count", []string{"reduce", "squares"}, "55\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tc.want {
				t.Errorf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestReduce_UnknownOp(t *testing.T) {
	_, _, err := runCLI(t, "reduce", "naturals", "--op", "mean")
	checkExit(t, err, 64)
	if err == nil || !strings.Contains(err.Error(), "op: must be one of: sum, product, count") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestZip(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sums", []string{"zip", "naturals", "squares", "-n", "3"}, "2\n6\n12\n"},
		{"truncated", []string{"zip", "naturals", "naturals", "-n", "2", "-m", "4"}, "2\n4\n"},
		{"long", []string{"zip", "naturals", "naturals", "-n", "2", "-m", "4", "--long"}, "2\n4\n3\n4\n"},
		{"long left", []string{"zip", "naturals", "primes", "-n", "3", "-m", "1", "--long"}, "3\n2\n3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCLI(t, tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if out != tc.want {
				t.Errorf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestZip_Errors(t *testing.T) {
	_, _, err := runCLI(t, "zip", "naturals", "evens")
	checkExit(t, err, 64)

	_, _, err = runCLI(t, "zip", "naturals", "naturals", "-m", "500")
	checkExit(t, err, 64)
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "version ") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative max", "stream:\n  max_count: -5\n"},
		{"default above max", "stream:\n  default_count: 50\n  max_count: 20\n"},
		{"bad environment", "environment: moon\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"bad sample rate", "observability:\n  tracing:\n    sample_rate: 2\n"},
		{"malformed", "stream: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, "--config", writeConfig(t, tc.content), "take", "naturals")
			checkExit(t, err, 78)
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"config", []string{"--config", "/nonexistent/config.yml"}},
		{"short config", []string{"-c", "/nonexistent/config.yml"}},
		{"env file", []string{"--config", writeConfig(t, baseConfig), "--env-file", "/nonexistent/.env"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append(tc.args, "take", "naturals", "-n", "2")
			out, _, err := runCLI(t, args...)
			checkExit(t, err, 78)
			if !strings.Contains(fmt.Sprint(err), "not found: /nonexistent/") {
				t.Errorf("expected the missing path in the error, got %v", err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

func TestRunID(t *testing.T) {
	id := uuid.NewString()
	_, stderr, err := runCLI(t, "--verbose", "--run-id", id, "take", "naturals", "-n", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, `"run_id":"`+id+`"`) {
		t.Errorf("expected run id in logs, got %q", stderr)
	}
	for _, want := range []string{
		`"message":"environment ready"`,
		`"operation":"setup"`,
		`"message":"command finished"`,
		`"operation":"take"`,
		`"count":1`,
		`"status":"ok"`,
		`"duration_ms":`,
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("expected %s in logs, got %q", want, stderr)
		}
	}
}

func TestRunID_Invalid(t *testing.T) {
	_, _, err := runCLI(t, "--run-id", "not-a-uuid", "list")
	if err != nil {
		t.Fatalf("list does not use the run id, got %v", err)
	}
	_, _, err = runCLI(t, "--run-id", "not-a-uuid", "take", "naturals")
	checkExit(t, err, 64)
}

func TestQuietByDefault(t *testing.T) {
	_, stderr, err := runCLI(t, "take", "naturals", "-n", "1")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("expected no logs at the default level, got %q", stderr)
	}
}

// realizedExporter keeps the last cumulative stream.elements.realized value
// per sequence.
type realizedExporter struct {
	mu       sync.Mutex
	realized map[string]int64
}

func (e *realizedExporter) Temporality(k sdkmetric.InstrumentKind) metricdata.Temporality {
	return sdkmetric.DefaultTemporalitySelector(k)
}

func (e *realizedExporter) Aggregation(k sdkmetric.InstrumentKind) sdkmetric.Aggregation {
	return sdkmetric.DefaultAggregationSelector(k)
}

func (e *realizedExporter) Export(_ context.Context, rm *metricdata.ResourceMetrics) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || m.Name != "stream.elements.realized" {
				continue
			}
			for _, dp := range sum.DataPoints {
				seq, _ := dp.Attributes.Value(attribute.Key(observability.AttrSequence))
				e.realized[seq.AsString()] = dp.Value
			}
		}
	}
	return nil
}

func (e *realizedExporter) ForceFlush(context.Context) error { return nil }
func (e *realizedExporter) Shutdown(context.Context) error   { return nil }

func withTelemetry(t *testing.T) (*realizedExporter, *tracetest.SpanRecorder) {
	t.Helper()
	exp := &realizedExporter{realized: make(map[string]int64)}
	sr := tracetest.NewSpanRecorder()
	meterOptions = []sdkmetric.Option{sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp))}
	tracerOptions = []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(sr)}
	t.Cleanup(func() {
		meterOptions, tracerOptions = nil, nil
	})
	return exp, sr
}

func TestTelemetry_Take(t *testing.T) {
	exp, sr := withTelemetry(t)

	if _, _, err := runCLI(t, "take", "naturals", "-n", "3", "--skip", "2"); err != nil {
		t.Fatal(err)
	}

	if got := exp.realized["naturals"]; got != 5 {
		t.Errorf("expected 5 realized elements, got %d", got)
	}
	spans := sr.Ended()
	if len(spans) != 1 || spans[0].Name() != observability.SpanCommand {
		t.Fatalf("expected one command span, got %d", len(spans))
	}
	attrs := attribute.NewSet(spans[0].Attributes()...)
	if v, _ := attrs.Value(observability.AttrCount); v.AsInt64() != 3 {
		t.Errorf("expected count 3 on span, got %v", v.Emit())
	}
	if v, _ := attrs.Value(observability.AttrStatus); v.AsString() != observability.StatusOK {
		t.Errorf("expected ok status, got %v", v.Emit())
	}
}

func TestTelemetry_Zip(t *testing.T) {
	exp, _ := withTelemetry(t)

	if _, _, err := runCLI(t, "zip", "naturals", "squares", "-n", "3"); err != nil {
		t.Fatal(err)
	}
	if exp.realized["naturals"] != 3 || exp.realized["squares"] != 3 {
		t.Errorf("expected three elements of each, got %v", exp.realized)
	}
}

func TestTelemetry_ErrorStatus(t *testing.T) {
	_, sr := withTelemetry(t)

	_, _, err := runCLI(t, "item", "primes", "3")
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = runCLI(t, "item", "primes", "100")
	if err == nil {
		t.Fatal("expected index error")
	}

	spans := sr.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %d", len(spans))
	}
	attrs := attribute.NewSet(spans[1].Attributes()...)
	if v, _ := attrs.Value(observability.AttrStatus); v.AsString() != observability.StatusError {
		t.Errorf("expected error status, got %v", v.Emit())
	}
}
