// Package engine defines the sentiment analysis contract, the model registry,
// and the backends that implement aspect-based sentiment extraction.
package engine

import (
	"context"
	"log/slog"
)

// Aspect is one extracted (category, sentiment) pair from a review.
// Term is the surface form that triggered the category and may be empty.
type Aspect struct {
	Term      string    `json:"term,omitempty"`
	Category  string    `json:"category"`
	Sentiment Sentiment `json:"sentiment"`
}

// Engine analyzes free review text into aspect sentiments.
// An unavailable engine reports Available() == false and is treated as
// "no aspects found", never as a processing error.
type Engine interface {
	Analyze(ctx context.Context, text string) ([]Aspect, error)
	Available() bool
}

// Registry maps a submission's model type to its Engine. It is built once at
// startup and passed by reference into the dispatcher; the set of engines
// never mutates after construction.
type Registry struct {
	engines map[string]Engine
	logger  *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		engines: make(map[string]Engine),
		logger:  logger.With("system", "engine"),
	}
}

// Register binds an engine to a model type, replacing any previous binding.
func (r *Registry) Register(modelType string, e Engine) {
	r.engines[modelType] = e
}

// Lookup returns the engine for a model type.
func (r *Registry) Lookup(modelType string) (Engine, bool) {
	e, ok := r.engines[modelType]
	return e, ok
}

// ModelTypes returns the registered model type keys.
func (r *Registry) ModelTypes() []string {
	types := make([]string, 0, len(r.engines))
	for t := range r.engines {
		types = append(types, t)
	}
	return types
}
