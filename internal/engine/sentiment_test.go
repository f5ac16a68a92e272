package engine_test

import (
	"testing"

	"github.com/reviewpulse/pulse/internal/engine"
)

func TestParseSentiment(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected engine.Sentiment
		ok       bool
	}{
		{"exact positive", "positive", engine.Positive, true},
		{"exact negative", "negative", engine.Negative, true},
		{"exact neutral", "neutral", engine.Neutral, true},
		{"short positive", "pos", engine.Positive, true},
		{"short negative", "neg", engine.Negative, true},
		{"mixed case", "Positive", engine.Positive, true},
		{"padded", "  negative  ", engine.Negative, true},
		{"qualified positive", "very positive", engine.Positive, true},
		{"qualified negative", "slightly negative", engine.Negative, true},
		{"embedded neutral", "mostly neutral tone", engine.Neutral, true},
		{"unknown", "mixed", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := engine.ParseSentiment(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDeriveOverall(t *testing.T) {
	tests := []struct {
		name     string
		aspects  []engine.Aspect
		expected engine.Sentiment
	}{
		{
			"no aspects",
			nil,
			engine.Neutral,
		},
		{
			"single positive",
			[]engine.Aspect{
				{Category: "food", Sentiment: engine.Positive},
			},
			engine.Positive,
		},
		{
			"negative majority",
			[]engine.Aspect{
				{Category: "food", Sentiment: engine.Positive},
				{Category: "service", Sentiment: engine.Negative},
				{Category: "price", Sentiment: engine.Negative},
			},
			engine.Negative,
		},
		{
			"positive wins tie with negative",
			[]engine.Aspect{
				{Category: "food", Sentiment: engine.Positive},
				{Category: "service", Sentiment: engine.Negative},
			},
			engine.Positive,
		},
		{
			"negative wins tie with neutral",
			[]engine.Aspect{
				{Category: "service", Sentiment: engine.Negative},
				{Category: "price", Sentiment: engine.Neutral},
			},
			engine.Negative,
		},
		{
			"three way tie resolves positive",
			[]engine.Aspect{
				{Category: "food", Sentiment: engine.Neutral},
				{Category: "service", Sentiment: engine.Negative},
				{Category: "price", Sentiment: engine.Positive},
			},
			engine.Positive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.DeriveOverall(tt.aspects); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	aspects := []engine.Aspect{
		{Term: "pizza", Category: "food", Sentiment: engine.Positive},
		{Term: "pasta", Category: "food", Sentiment: engine.Positive},
		{Term: "waiter", Category: "service", Sentiment: engine.Negative},
		{Term: "burnt", Category: "food", Sentiment: engine.Negative},
	}

	got := engine.Dedupe(aspects)
	if len(got) != 3 {
		t.Fatalf("got %d aspects, want 3", len(got))
	}

	if got[0].Term != "pizza" {
		t.Errorf("first term: got %q, want first occurrence kept", got[0].Term)
	}
	if got[1].Category != "service" || got[2].Category != "food" {
		t.Errorf("order not preserved: %+v", got)
	}
	if got[2].Sentiment != engine.Negative {
		t.Errorf("distinct sentiment in same category should survive: %+v", got[2])
	}
}
