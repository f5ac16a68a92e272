package analytics

import "context"

// System defines the public contract of the analytics aggregator.
type System interface {
	Handler() *Handler

	// Report computes the tenant dashboard for the given period on demand.
	// Nothing is cached or persisted.
	Report(ctx context.Context, tenantID string, period Period) (*Report, error)
}
