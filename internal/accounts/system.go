package accounts

import (
	"crypto/subtle"
	"log/slog"
	"sort"
)

// System authenticates against the configured account set. Lookups are
// read-only over a map built at construction.
type System struct {
	byEmail map[string]Account
	logger  *slog.Logger
}

// New builds a System from config.
func New(cfg *Config, logger *slog.Logger) *System {
	byEmail := make(map[string]Account, len(cfg.Accounts))
	for _, a := range cfg.Accounts {
		byEmail[a.Email] = a
	}

	return &System{
		byEmail: byEmail,
		logger:  logger.With("system", "accounts"),
	}
}

// Handler creates the HTTP handler for account endpoints.
func (s *System) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Authenticate verifies an email and password pair. Unknown emails and
// wrong passwords return the same error.
func (s *System) Authenticate(email, password string) (*Account, error) {
	account, ok := s.byEmail[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return &account, nil
}

// Demo returns the login-screen listing of all accounts, ordered by email.
func (s *System) Demo() []DemoAccount {
	demos := make([]DemoAccount, 0, len(s.byEmail))
	for _, a := range s.byEmail {
		demos = append(demos, DemoAccount{
			Email:      a.Email,
			Password:   a.Password,
			TenantName: a.Name,
			TenantKind: a.Kind,
		})
	}

	sort.Slice(demos, func(i, j int) bool {
		return demos[i].Email < demos[j].Email
	})
	return demos
}
