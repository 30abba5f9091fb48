package telemetry

import (
	"context"
	"testing"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	if Enabled() {
		t.Fatal("Enabled() = true with empty endpoint")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestTracerWithoutSetupRecordsNothing(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	_, span := Tracer("test").Start(context.Background(), "test.span")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("tracer without an installed provider should not produce a valid span context")
	}
	if span.IsRecording() {
		t.Error("tracer without an installed provider should not record")
	}
}
