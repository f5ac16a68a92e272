// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, live hub) that domain
// systems and the dispatcher require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/reviewpulse/pulse/internal/config"
	"github.com/reviewpulse/pulse/internal/live"
	"github.com/reviewpulse/pulse/pkg/database"
	"github.com/reviewpulse/pulse/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// The Hub is shared between the HTTP layer and the dispatcher so both
// broadcast to the same subscriber set.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Hub       *live.Hub
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Hub:       live.NewHub(logger),
	}, nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
