package service

import (
	"context"
	"time"

	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/prioritize"
)

type roadmapService struct {
	engine   *prioritize.Engine
	observer UseCaseObserver
}

// NewRoadmapService wraps the prioritization engine with use-case telemetry.
func NewRoadmapService(engine *prioritize.Engine, observers ...UseCaseObserver) RoadmapService {
	return &roadmapService{
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *roadmapService) Prioritize(ctx context.Context, roadmap domain.Roadmap, constraints *domain.UserConstraints) prioritize.Result {
	started := time.Now()
	result := s.engine.Prioritize(roadmap, constraints)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "roadmap.prioritize",
		Duration:  time.Since(started),
		Success:   result.Changed,
		StartedAt: started,
		Fields: map[string]any{
			"phases":       len(roadmap.Phases),
			"changed":      result.Changed,
			"diagnostics":  len(result.Diagnostics),
			"dep_warnings": len(result.Warnings),
			"project_type": string(result.Detection.ProjectType),
			"domain":       string(result.Detection.Domain),
		},
	})
	return result
}
