package engine_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/reviewpulse/pulse/internal/engine"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubEngine struct {
	aspects   []engine.Aspect
	available bool
}

func (s *stubEngine) Analyze(ctx context.Context, text string) ([]engine.Aspect, error) {
	return s.aspects, nil
}

func (s *stubEngine) Available() bool {
	return s.available
}

func TestRegistryLookup(t *testing.T) {
	registry := engine.NewRegistry(discard())

	hotel := &stubEngine{available: true}
	registry.Register("hotel", hotel)

	got, ok := registry.Lookup("hotel")
	if !ok {
		t.Fatal("registered engine not found")
	}
	if got != hotel {
		t.Error("lookup returned a different engine")
	}

	if _, ok := registry.Lookup("unknown"); ok {
		t.Error("lookup of unregistered type should fail")
	}
}

func TestRegistryModelTypes(t *testing.T) {
	registry := engine.NewRegistry(discard())
	registry.Register("hotel", &stubEngine{})
	registry.Register("amazon", &stubEngine{})

	types := registry.ModelTypes()
	sort.Strings(types)

	if len(types) != 2 || types[0] != "amazon" || types[1] != "hotel" {
		t.Errorf("got %v, want [amazon hotel]", types)
	}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := engine.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Provider != "openai" {
		t.Errorf("provider: got %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model: got %q", cfg.Model)
	}

	for _, mt := range []string{"amazon", "hotel", "coursera"} {
		if cfg.Models[mt] != cfg.Model {
			t.Errorf("model type %q not mapped to default model", mt)
		}
	}
}

func TestConfigRejectsUnknownProvider(t *testing.T) {
	cfg := engine.Config{Provider: "sentimentron"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewRegistryFromConfigWithoutKey(t *testing.T) {
	cfg := engine.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	registry := engine.NewRegistryFromConfig(&cfg, discard())

	for _, mt := range []string{"amazon", "hotel", "coursera"} {
		e, ok := registry.Lookup(mt)
		if !ok {
			t.Fatalf("model type %q not registered", mt)
		}
		if e.Available() {
			t.Errorf("engine %q should be unavailable without an API key", mt)
		}
	}
}
