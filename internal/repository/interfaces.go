package repository

import (
	"context"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// ProjectRepo is the opaque project store: the core never touches it, the
// service layer saves and loads whole projects through it.
type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
