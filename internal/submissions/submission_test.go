package submissions_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/reviewpulse/pulse/internal/submissions"
)

func TestEnqueueCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     submissions.EnqueueCommand
		wantErr bool
	}{
		{
			"valid",
			submissions.EnqueueCommand{TenantID: "hotel_business", Text: "great stay", ModelType: "hotel"},
			false,
		},
		{
			"missing tenant",
			submissions.EnqueueCommand{Text: "great stay"},
			true,
		},
		{
			"missing text",
			submissions.EnqueueCommand{TenantID: "hotel_business"},
			true,
		},
		{
			"whitespace text",
			submissions.EnqueueCommand{TenantID: "hotel_business", Text: "   "},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr {
				if !errors.Is(err, submissions.ErrValidation) {
					t.Errorf("got %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEnqueueCommandNormalize(t *testing.T) {
	cmd := submissions.EnqueueCommand{
		TenantID: "hotel_business",
		Text:     "fine",
	}
	cmd.Normalize()

	if cmd.CustomerName != submissions.DefaultCustomerName {
		t.Errorf("customer name: got %q, want %q", cmd.CustomerName, submissions.DefaultCustomerName)
	}
	if cmd.Rating == nil || *cmd.Rating != submissions.DefaultRating {
		t.Errorf("rating: got %v, want default", cmd.Rating)
	}
}

func TestNormalizeKeepsProvidedValues(t *testing.T) {
	rating := 4.5
	cmd := submissions.EnqueueCommand{
		TenantID:     "hotel_business",
		Text:         "fine",
		CustomerName: "Ada",
		Rating:       &rating,
	}
	cmd.Normalize()

	if cmd.CustomerName != "Ada" {
		t.Errorf("customer name overwritten: %q", cmd.CustomerName)
	}
	if *cmd.Rating != 4.5 {
		t.Errorf("rating overwritten: %v", *cmd.Rating)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", submissions.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", errors.Join(submissions.ErrValidation), http.StatusBadRequest},
		{"unknown tenant", fmt.Errorf("%w: unknown tenant_id %q", submissions.ErrValidation, "ghost"), http.StatusBadRequest},
		{"not found", submissions.ErrNotFound, http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := submissions.MapHTTPStatus(tt.err); got != tt.expected {
				t.Errorf("got %d, want %d", got, tt.expected)
			}
		})
	}
}
