package main

import (
	"time"

	"github.com/reviewpulse/pulse/internal/api"
	"github.com/reviewpulse/pulse/internal/config"
	"github.com/reviewpulse/pulse/internal/dispatch"
	"github.com/reviewpulse/pulse/internal/engine"
	"github.com/reviewpulse/pulse/internal/infrastructure"
)

type Server struct {
	infra      *infrastructure.Infrastructure
	modules    *Modules
	dispatcher *dispatch.Dispatcher
	http       *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	// The dispatcher consumes the same domain systems the API serves,
	// so the domain is assembled here and handed to both.
	runtime := api.NewRuntime(cfg, infra)
	domain := api.NewDomain(runtime, cfg)

	registry := engine.NewRegistryFromConfig(&cfg.Engine, infra.Logger)

	dispatcher := dispatch.New(&cfg.Dispatcher, &dispatch.Runtime{
		Queue:   domain.Submissions,
		Reviews: domain.Reviews,
		Engines: registry,
		Hub:     infra.Hub,
		Logger:  infra.Logger,
	})

	modules, err := NewModules(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		infra:      infra,
		modules:    modules,
		dispatcher: dispatcher,
		http:       newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	s.dispatcher.Start(s.infra.Lifecycle)

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
