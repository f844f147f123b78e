package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roadmapWithText(text string) domain.Roadmap {
	return domain.Roadmap{
		Metadata: domain.Metadata{Title: "Test", Description: text},
		Phases:   []domain.Phase{{ID: "p1", Title: "Phase One"}},
	}
}

func TestDetectProjectType_PriorityOrder(t *testing.T) {
	p := NewProvider("", nil)

	tests := []struct {
		name string
		text string
		want domain.ProjectType
	}{
		{"enterprise beats mvp", "an enterprise platform starting from a minimum viable product", domain.TypeEnterprise},
		{"mvp", "a minimum viable product for recipe sharing", domain.TypeMVP},
		{"full-featured", "a comprehensive suite with advanced features", domain.TypeFullFeatured},
		{"nothing matches", "a plain little website", domain.TypeDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.DetectProjectType(roadmapWithText(tt.text)))
		})
	}
}

func TestDetectDomain_DefaultsToWeb(t *testing.T) {
	p := NewProvider("", nil)

	assert.Equal(t, domain.DomainMobileApp, p.DetectDomain(roadmapWithText("an ios and android app")))
	assert.Equal(t, domain.DomainAIProject, p.DetectDomain(roadmapWithText("train a machine learning model on the dataset")))
	assert.Equal(t, domain.DomainWebApp, p.DetectDomain(roadmapWithText("a recipe sharing site")))
}

func TestDetectDomain_MobileBeatsAI(t *testing.T) {
	p := NewProvider("", nil)
	got := p.DetectDomain(roadmapWithText("a flutter app with machine learning features"))
	assert.Equal(t, domain.DomainMobileApp, got)
}

func TestLookups_FallBackForUnknownKeys(t *testing.T) {
	p := NewProvider("", nil)

	assert.Equal(t, p.Weights(domain.TypeDefault), p.Weights(domain.ProjectType("bogus")))
	assert.Equal(t, p.RiskMatrix(domain.DomainWebApp), p.RiskMatrix(domain.ProjectDomain("bogus")))
	assert.Equal(t, p.LearningPatterns(domain.ExperienceBeginner), p.LearningPatterns(domain.ExperienceLevel("bogus")))
}

func TestProjectConfig_RecordsDetection(t *testing.T) {
	p := NewProvider("", nil)
	r := roadmapWithText("an enterprise compliance platform for ios")

	cfg := p.ProjectConfig(r, domain.UserConstraints{Experience: domain.ExperienceAdvanced})

	assert.Equal(t, domain.TypeEnterprise, cfg.Metadata.ProjectType)
	assert.Equal(t, domain.DomainMobileApp, cfg.Metadata.Domain)
	assert.Equal(t, p.Weights(domain.TypeEnterprise), cfg.Weights)
	assert.Equal(t, p.LearningPatterns(domain.ExperienceAdvanced), cfg.LearningPattern)
	assert.NotEmpty(t, cfg.TimelineParsers)
	assert.NotEmpty(t, cfg.PhasePatterns)
	assert.NotEmpty(t, cfg.TaskPatterns)
	assert.NotEmpty(t, cfg.DependencyRules)
}

func TestNewProvider_MissingFileFallsBackToDefaults(t *testing.T) {
	p := NewProvider("/nonexistent/config.json", nil)

	w := p.Weights(domain.TypeDefault)
	require.NotEmpty(t, w)
	assert.InDelta(t, 0.30, w["LOGICAL_ORDER"], 1e-9)
}

func TestNewProvider_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	p := NewProvider(path, nil)
	assert.NotEmpty(t, p.Weights(domain.TypeDefault))
}

func TestExternalConfig_OverridesWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"weights": {
			"mvp": {"LOGICAL_ORDER": 0.9, "TIMELINE": 0.1}
		}
	}`), 0644))

	p := NewProvider(path, nil)

	assert.InDelta(t, 0.9, p.Weights(domain.TypeMVP)["LOGICAL_ORDER"], 1e-9)
	// The default table is preserved even when the file omits it.
	assert.NotEmpty(t, p.Weights(domain.TypeDefault))
}

func TestExternalConfig_InvalidTimelinePatternSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"timelineParsers": [
			{"unit": "broken", "pattern": "(", "multiplier": 1},
			{"unit": "sprint", "pattern": "sprint\\s*(\\d+)", "multiplier": 14}
		]
	}`), 0644))

	p := NewProvider(path, nil)

	parsers := p.TimelineParsers()
	require.Len(t, parsers, 1)
	assert.Equal(t, "sprint", parsers[0].Unit)
	assert.Equal(t, 14, parsers[0].Multiplier)
	assert.True(t, parsers[0].Pattern.MatchString("Sprint 3"), "patterns compile case-insensitively")
}

func TestReload_PicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	p := NewProvider(path, nil)
	assert.InDelta(t, 0.30, p.Weights(domain.TypeDefault)["LOGICAL_ORDER"], 1e-9)

	require.NoError(t, os.WriteFile(path, []byte(`{
		"weights": {"default": {"LOGICAL_ORDER": 0.7}}
	}`), 0644))
	p.Reload()

	assert.InDelta(t, 0.7, p.Weights(domain.TypeDefault)["LOGICAL_ORDER"], 1e-9)
}

func TestReload_FailureKeepsCurrentTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"weights": {"default": {"LOGICAL_ORDER": 0.7}}
	}`), 0644))

	p := NewProvider(path, nil)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	p.Reload()

	assert.InDelta(t, 0.7, p.Weights(domain.TypeDefault)["LOGICAL_ORDER"], 1e-9)
}
