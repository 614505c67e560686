package weather

import (
	"context"
	"log/slog"
)

// State is a step of a single submission.
type State int

const (
	StateIdle State = iota
	StateResolving
	StateFetching
	StateRendered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateFetching:
		return "fetching"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes how a submission ended.
type Outcome struct {
	State    State
	Location ResolvedLocation
	Weather  CurrentWeather
	Err      error
}

// Service runs the resolve, fetch, render pipeline. It holds no state
// between submissions.
type Service struct {
	resolver Resolver
	fetcher  Fetcher
	logger   *slog.Logger
}

// NewService creates a new Service.
func NewService(resolver Resolver, fetcher Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Submit handles one form submission and writes exactly one view to r.
func (s *Service) Submit(ctx context.Context, input string, r Renderer) Outcome {
	query, err := NewPlaceQuery(input)
	if err != nil {
		return s.fail(r, StateIdle, input, err)
	}

	log := s.logger.With("query", query.String())
	log.Debug("lookup: transition", "from", StateIdle.String(), "to", StateResolving.String())

	loc, err := s.resolver.Resolve(ctx, query.String())
	if err != nil {
		return s.fail(r, StateResolving, query.String(), err)
	}

	log.Debug("lookup: transition", "from", StateResolving.String(), "to", StateFetching.String(),
		"lat", loc.Latitude, "lon", loc.Longitude)

	cw, err := s.fetcher.Fetch(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return s.fail(r, StateFetching, query.String(), err)
	}

	r.RenderSuccess(loc, cw)
	log.Debug("lookup: transition", "from", StateFetching.String(), "to", StateRendered.String())

	return Outcome{
		State:    StateRendered,
		Location: loc,
		Weather:  cw,
	}
}

func (s *Service) fail(r Renderer, from State, query string, err error) Outcome {
	s.logger.Warn("lookup failed", "query", query, "state", from.String(), "error", err)
	r.RenderError(UserMessage(err))
	return Outcome{State: StateFailed, Err: err}
}
