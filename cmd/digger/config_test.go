package main

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-digger/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDefaultConfig(&buf); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}

	// Decoded into a zero value, so every key must be present in the output.
	var cfg config.DiggerConfig
	if err := yaml.Unmarshal(buf.Bytes(), &cfg); err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("printed config is invalid: %v", err)
	}
	if def := config.DefaultDiggerConfig(); cfg != def {
		t.Errorf("printed config = %+v, expected %+v", cfg, def)
	}
}
