package service

import (
	"context"

	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/prioritize"
	"github.com/jplancaster/roadmapper/internal/summarize"
)

type ProjectService interface {
	Save(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type RoadmapService interface {
	// Prioritize runs the engine. It never returns an error: failures fall
	// back to the input roadmap with diagnostics on the result.
	Prioritize(ctx context.Context, roadmap domain.Roadmap, constraints *domain.UserConstraints) prioritize.Result
}

type SummaryService interface {
	Summarize(ctx context.Context, text string) string
	CacheStats() summarize.CacheStats
	ClearCache()
}
