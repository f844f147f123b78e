package formatter

import (
	"testing"
	"time"

	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/prioritize"
	"github.com/jplancaster/roadmapper/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult_Changed(t *testing.T) {
	result := prioritize.Result{
		Roadmap: domain.Roadmap{Phases: []domain.Phase{
			{ID: "p1", Title: "Setup"},
			{ID: "p2", Title: "Core"},
		}},
		Changed: true,
		Detection: config.DetectionMetadata{
			ProjectType: domain.TypeMVP,
			Domain:      domain.DomainWebApp,
		},
		Warnings: []scoring.DependencyWarning{
			{Message: "Testing and QA appears before Core Development"},
		},
	}

	out := stripANSI(FormatResult(result))
	assert.Contains(t, out, "PRIORITIZATION")
	assert.Contains(t, out, "Detected: mvp / web-app")
	assert.Contains(t, out, "Phases reordered: 2")
	assert.Contains(t, out, "DEPENDENCY WARNINGS (ADVISORY)")
	assert.Contains(t, out, "Testing and QA appears before Core Development")
}

func TestFormatResult_UnchangedWithDiagnostics(t *testing.T) {
	result := prioritize.Result{
		Changed: false,
		Diagnostics: []prioritize.Diagnostic{
			{Stage: prioritize.StageValidate, Code: prioritize.CodeEmptyPhases, Message: "roadmap has no phases"},
		},
	}

	out := stripANSI(FormatResult(result))
	assert.Contains(t, out, "Roadmap returned unchanged.")
	assert.Contains(t, out, "roadmap has no phases")
	assert.NotContains(t, out, "DEPENDENCY WARNINGS")
}

func TestFormatProjectList_Golden(t *testing.T) {
	projects := []*domain.Project{
		{
			ID:   "ab12cd34-0000-0000-0000-000000000000",
			Name: "Recipe Platform",
			Roadmap: domain.Roadmap{Phases: []domain.Phase{
				{ID: "p1", Title: "Setup"}, {ID: "p2", Title: "Core"},
			}},
			UpdatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:   "ef56ab78-0000-0000-0000-000000000000",
			Name: "Study Planner",
			Roadmap: domain.Roadmap{Phases: []domain.Phase{
				{ID: "p1", Title: "Basics"},
			}},
			UpdatedAt: time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
		},
	}

	goldenTest(t, "project_list", FormatProjectList(projects))
}

func TestFormatProjectList_Empty(t *testing.T) {
	out := stripANSI(FormatProjectList(nil))
	assert.Contains(t, out, "No projects stored.")
}

func TestFormatWeights_Golden(t *testing.T) {
	provider := config.NewProvider("", nil)
	goldenTest(t, "weights_default", FormatWeights(provider.Weights(domain.TypeDefault)))
}
