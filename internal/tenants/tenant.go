// Package tenants exposes the businesses that own reviews. The tenant set
// is seeded by migration and effectively static at runtime.
package tenants

import "time"

// Tenant is a business whose reviews flow through the pipeline.
// Kind selects which analysis model its submissions default to.
type Tenant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
