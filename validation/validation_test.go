package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/lazystream/errors"
)

func fieldsOf(t *testing.T, err error) []FieldError {
	t.Helper()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected field details, got %v", appErr.Details)
	}
	return fields
}

func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"primes", false},
		{"", true},
		{"   ", true},
	}
	for _, tc := range tests {
		if got := New().Required("sequence", tc.value).HasErrors(); got != tc.wantErr {
			t.Errorf("Required(%q): HasErrors = %v, want %v", tc.value, got, tc.wantErr)
		}
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", uuid.New().String(), false},
		{"empty", "", true},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New().RequiredUUID("run_id", tc.value).HasErrors(); got != tc.wantErr {
				t.Errorf("HasErrors = %v, want %v", got, tc.wantErr)
			}
		})
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	if New().OptionalUUID("run_id", "").HasErrors() {
		t.Error("expected no error for empty optional UUID")
	}
	if New().OptionalUUID("run_id", uuid.New().String()).HasErrors() {
		t.Error("expected no error for valid optional UUID")
	}
	if !New().OptionalUUID("run_id", "bad-uuid").HasErrors() {
		t.Error("expected error for invalid optional UUID")
	}
}

func TestValidatorRange(t *testing.T) {
	if New().Range("index", 25, 0, 100).HasErrors() {
		t.Error("expected no error for value in range")
	}
	if !New().Range("index", -1, 0, 100).HasErrors() {
		t.Error("expected error for value below range")
	}
	if !New().Range("index", 101, 0, 100).HasErrors() {
		t.Error("expected error for value above range")
	}
}

func TestValidatorMinMax(t *testing.T) {
	v := New().Min("count", 5, 0).Max("count", 5, 10)
	if v.HasErrors() {
		t.Error("expected no errors")
	}

	v2 := New().Min("count", -1, 0)
	if !v2.HasErrors() || v2.Errors()[0].Message != "must be at least 0" {
		t.Errorf("unexpected errors %v", v2.Errors())
	}

	v3 := New().Max("count", 11, 10)
	if !v3.HasErrors() || v3.Errors()[0].Message != "must be 10 or less" {
		t.Errorf("unexpected errors %v", v3.Errors())
	}
}

func TestValidatorOneOf(t *testing.T) {
	ops := []string{"sum", "product", "count"}
	if New().OneOf("op", "sum", ops).HasErrors() {
		t.Error("expected no error for valid value")
	}
	v := New().OneOf("op", "mean", ops)
	if !v.HasErrors() {
		t.Fatal("expected error for invalid value")
	}
	if v.Errors()[0].Message != "must be one of: sum, product, count" {
		t.Errorf("unexpected message %q", v.Errors()[0].Message)
	}
	if New().OneOf("op", "", ops).HasErrors() {
		t.Error("expected no error for empty value")
	}
}

func TestValidatorCustom(t *testing.T) {
	if New().Custom(true, "field", "should pass").HasErrors() {
		t.Error("expected no error for true condition")
	}
	v := New().Custom(false, "field", "custom error")
	if !v.HasErrors() || v.Errors()[0].Message != "custom error" {
		t.Errorf("unexpected errors %v", v.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Required("sequence", "primes").Validate(); err != nil {
		t.Errorf("expected nil for valid input, got %v", err)
	}

	err := New().Required("sequence", "").Min("count", -3, 0).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "sequence: is required") || !strings.Contains(err.Error(), "count: must be at least 0") {
		t.Errorf("expected both fields in message, got %q", err.Error())
	}
	if len(fieldsOf(t, err)) != 2 {
		t.Errorf("expected 2 field errors")
	}
	if errors.ExitCode(err) != 64 {
		t.Errorf("expected usage exit code, got %d", errors.ExitCode(err))
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	if v.Required("sequence", "primes").Min("count", 3, 0) != v {
		t.Error("expected chaining to return same validator")
	}
}

func TestRequiredFunc(t *testing.T) {
	if err := Required("sequence", "primes"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Required("sequence", ""); err == nil {
		t.Error("expected error for empty required field")
	}
}

type streamSettings struct {
	DefaultCount int    `mapstructure:"default_count" validate:"gte=0,ltefield=MaxCount"`
	MaxCount     int    `mapstructure:"max_count" validate:"gt=0"`
	Format       string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

type Base struct {
	Name string `mapstructure:"name" validate:"required"`
}

type settings struct {
	Base   `mapstructure:",squash"`
	Stream streamSettings `mapstructure:"stream"`
}

func TestStructValidateValid(t *testing.T) {
	cfg := settings{Base: Base{Name: "lazystream"}, Stream: streamSettings{DefaultCount: 10, MaxCount: 100, Format: "json"}}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	tests := []struct {
		name      string
		stream    streamSettings
		wantField string
		wantMsg   string
	}{
		{"max not positive", streamSettings{MaxCount: 0}, "stream.max_count", "must be greater than 0"},
		{"negative default", streamSettings{DefaultCount: -1, MaxCount: 10}, "stream.default_count", "must be at least 0"},
		{"default above max", streamSettings{DefaultCount: 20, MaxCount: 10}, "stream.default_count", "must not exceed max_count"},
		{"unknown format", streamSettings{MaxCount: 10, Format: "xml"}, "stream.format", "must be one of: text, json"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(settings{Base: Base{Name: "x"}, Stream: tc.stream})
			if err == nil {
				t.Fatal("expected validation error")
			}
			fields := fieldsOf(t, err)
			if len(fields) != 1 {
				t.Fatalf("expected one field error, got %v", fields)
			}
			if fields[0].Field != tc.wantField || fields[0].Message != tc.wantMsg {
				t.Errorf("got %+v, want %s %q", fields[0], tc.wantField, tc.wantMsg)
			}
		})
	}
}

func TestStructValidateEmbeddedField(t *testing.T) {
	err := Validate(settings{Stream: streamSettings{MaxCount: 10}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := fieldsOf(t, err)
	if len(fields) != 1 || fields[0].Field != "name" {
		t.Errorf("expected squashed field path 'name', got %v", fields)
	}
}

func TestStructValidateNonStruct(t *testing.T) {
	if err := Validate(42); err == nil {
		t.Error("expected error for non-struct input")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"MaxCount":      "max_count",
		"Name":          "name",
		"ServiceConfig": "service_config",
		"already":       "already",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
