// Package submissions implements the review ingestion queue: raw review
// intake, the status state machine, and atomic batch claiming for the
// dispatcher.
package submissions

import (
	"fmt"
	"strings"
	"time"
)

// Status is the processing state of a raw submission. Every submission
// reaches a terminal status (completed or failed) exactly once; processing
// marks an exclusive claim by a dispatcher cycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Defaults for optional submit fields.
const (
	DefaultCustomerName = "Anonymous"
	DefaultRating       = 0.0
)

// Submission is a raw review waiting for (or finished with) analysis.
// Write-owned by the pipeline; read-only to the API layer.
type Submission struct {
	ID           int64     `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Text         string    `json:"text"`
	CustomerName string    `json:"customer_name"`
	Rating       float64   `json:"rating"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Status       Status    `json:"status"`
	ModelType    string    `json:"model_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// EnqueueCommand carries a submit request. CustomerName and Rating are
// optional and fall back to the default constants.
type EnqueueCommand struct {
	TenantID     string   `json:"tenant_id"`
	Text         string   `json:"text"`
	CustomerName string   `json:"customer_name"`
	Rating       *float64 `json:"rating"`
	ModelType    string   `json:"model_type"`
}

// Validate rejects commands missing a tenant or review text.
func (c *EnqueueCommand) Validate() error {
	if strings.TrimSpace(c.TenantID) == "" {
		return fmt.Errorf("%w: tenant_id required", ErrValidation)
	}
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("%w: text required", ErrValidation)
	}
	return nil
}

// Normalize applies the default constants for absent optional fields.
func (c *EnqueueCommand) Normalize() {
	if strings.TrimSpace(c.CustomerName) == "" {
		c.CustomerName = DefaultCustomerName
	}
	if c.Rating == nil {
		rating := DefaultRating
		c.Rating = &rating
	}
}
