package accounts_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/reviewpulse/pulse/internal/accounts"
)

func newSystem(t *testing.T) *accounts.System {
	t.Helper()

	cfg := accounts.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return accounts.New(&cfg, logger)
}

func TestAuthenticate(t *testing.T) {
	sys := newSystem(t)

	account, err := sys.Authenticate("hotel@business.com", "hotel123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	if account.TenantID != "hotel_business" {
		t.Errorf("tenant: got %q", account.TenantID)
	}
	if account.Kind != "hotel" {
		t.Errorf("kind: got %q", account.Kind)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	sys := newSystem(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "hotel@business.com", "wrong"},
		{"unknown email", "nobody@business.com", "hotel123"},
		{"empty credentials", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Authenticate(tt.email, tt.password)
			if !errors.Is(err, accounts.ErrInvalidCredentials) {
				t.Errorf("got %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestDemoListing(t *testing.T) {
	sys := newSystem(t)

	demos := sys.Demo()
	if len(demos) != 3 {
		t.Fatalf("got %d accounts, want 3", len(demos))
	}

	// Sorted by email for a stable login screen.
	if demos[0].Email != "coursera@business.com" {
		t.Errorf("first email: got %q", demos[0].Email)
	}
	if demos[0].TenantName == "" || demos[0].TenantKind == "" {
		t.Errorf("listing incomplete: %+v", demos[0])
	}
}

func TestConfigMerge(t *testing.T) {
	cfg := accounts.Config{}
	overlay := accounts.Config{
		Accounts: []accounts.Account{
			{Email: "solo@business.com", Password: "pw", Name: "Solo", TenantID: "t1", Kind: "hotel"},
		},
	}

	cfg.Merge(&overlay)
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if len(cfg.Accounts) != 1 || cfg.Accounts[0].Email != "solo@business.com" {
		t.Errorf("overlay should replace the account set: %+v", cfg.Accounts)
	}
}
