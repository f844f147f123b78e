package testutil

import "github.com/jplancaster/roadmapper/internal/domain"

// WebAppRoadmap returns a small but realistic roadmap with out-of-order
// phases, suitable for exercising the prioritization pipeline.
func WebAppRoadmap() domain.Roadmap {
	return domain.Roadmap{
		Metadata: domain.Metadata{
			Title:       "Recipe Sharing Platform",
			Description: "A web app for sharing and rating recipes",
		},
		Phases: []domain.Phase{
			{
				ID: "phase-deploy", Title: "Deployment and Launch", Timeline: "Week 6", Order: 1,
				Milestones: []domain.Milestone{
					{
						ID: "m-deploy", Title: "Production launch", Order: 1,
						Tasks: []domain.Task{
							{ID: "t-deploy-1", Title: "Deploy to production", Status: domain.TaskPending},
							{ID: "t-deploy-2", Title: "Write launch announcement", Status: domain.TaskPending},
						},
					},
				},
			},
			{
				ID: "phase-setup", Title: "Project Setup and Foundation", Timeline: "Week 1", Order: 2,
				Milestones: []domain.Milestone{
					{
						ID: "m-setup", Title: "Environment", Order: 1,
						Tasks: []domain.Task{
							{ID: "t-setup-1", Title: "Install dependencies", Status: domain.TaskPending},
							{ID: "t-setup-2", Title: "Configure database", Status: domain.TaskPending},
						},
					},
				},
			},
			{
				ID: "phase-core", Title: "Core Development", Timeline: "Week 2", Order: 3,
				Milestones: []domain.Milestone{
					{
						ID: "m-core", Title: "Recipe CRUD", Order: 1,
						Tasks: []domain.Task{
							{ID: "t-core-1", Title: "Document the API", Status: domain.TaskPending},
							{ID: "t-core-2", Title: "Implement recipe endpoints", Status: domain.TaskPending},
							{ID: "t-core-3", Title: "Test recipe validation", Status: domain.TaskPending},
						},
					},
				},
			},
			{
				ID: "phase-testing", Title: "Testing and QA", Timeline: "Week 5", Order: 4,
				Milestones: []domain.Milestone{
					{
						ID: "m-test", Title: "Quality pass", Order: 1,
						Tasks: []domain.Task{
							{ID: "t-test-1", Title: "Verify signup flow", Status: domain.TaskPending},
						},
					},
				},
			},
		},
	}
}

// DefaultConstraints returns a typical beginner/mvp constraint set.
func DefaultConstraints() *domain.UserConstraints {
	return &domain.UserConstraints{
		Timeline:   "6 weeks",
		Experience: domain.ExperienceBeginner,
		Scope:      domain.ScopeMVP,
	}
}
