// Package accounts authenticates tenant owners against a configured set
// of static demo accounts. There is no registration or session state.
package accounts

// Account is one configured login mapped to its tenant.
type Account struct {
	Email    string `toml:"email" json:"email"`
	Password string `toml:"password" json:"-"`
	Name     string `toml:"name" json:"name"`
	TenantID string `toml:"tenant_id" json:"tenant_id"`
	Kind     string `toml:"kind" json:"kind"`
}

// DemoAccount is the login-screen listing of a configured account.
// Passwords are exposed deliberately; these are demo credentials.
type DemoAccount struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	TenantName string `json:"tenantName"`
	TenantKind string `json:"tenantKind"`
}

// Config holds the configured account set.
type Config struct {
	Accounts []Account `toml:"accounts"`
}

// Finalize applies the default demo accounts when none are configured.
func (c *Config) Finalize() error {
	if len(c.Accounts) == 0 {
		c.Accounts = defaultAccounts()
	}
	return nil
}

// Merge replaces the account set when the overlay configures one.
func (c *Config) Merge(overlay *Config) {
	if len(overlay.Accounts) > 0 {
		c.Accounts = overlay.Accounts
	}
}

func defaultAccounts() []Account {
	return []Account{
		{
			Email:    "food@business.com",
			Password: "food123",
			Name:     "Food Restaurant",
			TenantID: "amazon_business",
			Kind:     "amazon",
		},
		{
			Email:    "hotel@business.com",
			Password: "hotel123",
			Name:     "Luxury Hotel",
			TenantID: "hotel_business",
			Kind:     "hotel",
		},
		{
			Email:    "coursera@business.com",
			Password: "course123",
			Name:     "Online Course Platform",
			TenantID: "coursera_business",
			Kind:     "coursera",
		},
	}
}
