package service

import (
	"context"

	"webhook-reconciler/internal/core/domain"
	"webhook-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

type decisionSink struct {
	repo ports.DecisionRepository
	log  zerolog.Logger
}

// NewDecisionSink creates a new decision sink.
// If repo is nil, decisions are only written to the logger.
func NewDecisionSink(repo ports.DecisionRepository, log zerolog.Logger) ports.DecisionSink {
	return &decisionSink{repo: repo, log: log}
}

// Record logs the decision and persists it asynchronously (fire-and-forget).
func (s *decisionSink) Record(ctx context.Context, event domain.DecisionEvent) {
	s.log.Info().
		Str("kind", string(event.Kind)).
		Str("name", event.Name).
		Str("increment_id", event.IncrementID).
		Str("psp_reference", event.PSPReference).
		Str("event_code", string(event.EventCode)).
		Str("detail", event.Detail).
		Msg("decision")

	if s.repo == nil {
		return
	}
	bg := context.WithoutCancel(ctx)
	go func() {
		if err := s.repo.Create(bg, &event); err != nil {
			s.log.Warn().Err(err).Str("kind", string(event.Kind)).Msg("failed to persist decision")
		}
	}()
}
