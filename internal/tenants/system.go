package tenants

import "context"

// System defines the public contract for tenant lookups.
type System interface {
	Handler() *Handler

	// List returns all tenants ordered by name.
	List(ctx context.Context) ([]Tenant, error)

	// Find returns a single tenant by ID.
	Find(ctx context.Context, id string) (*Tenant, error)
}
