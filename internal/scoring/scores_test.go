package scoring

import (
	"testing"

	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/stretchr/testify/assert"
)

func phasePatterns() []config.PhasePattern {
	return []config.PhasePattern{
		{Category: "planning", Keywords: []string{"planning", "research"}, Score: 100},
		{Category: "setup", Keywords: []string{"setup", "foundation"}, Score: 95},
		{Category: "testing", Keywords: []string{"testing"}, Score: 55},
	}
}

func TestLogicalOrderScore_FirstMatchWins(t *testing.T) {
	// "Planning the setup" matches both tables; the earlier entry wins.
	score := LogicalOrderScore(domain.Phase{Title: "Planning the Setup"}, phasePatterns())
	assert.Equal(t, 100.0, score)
}

func TestLogicalOrderScore_NoMatchIsNeutral(t *testing.T) {
	score := LogicalOrderScore(domain.Phase{Title: "Something Unrelated"}, phasePatterns())
	assert.Equal(t, NeutralScore, score)
}

func TestScopeScore(t *testing.T) {
	tests := []struct {
		name  string
		title string
		scope domain.Scope
		want  float64
	}{
		{"mvp core phase", "Core Foundation Setup", domain.ScopeMVP, 100},
		{"mvp advanced phase", "Advanced Optimization", domain.ScopeMVP, 30},
		{"mvp unmatched phase", "Anything", domain.ScopeMVP, 50},
		{"full-featured flat", "Anything", domain.ScopeFullFeatured, 70},
		{"enterprise flat", "Anything", domain.ScopeEnterprise, 80},
		{"unknown scope neutral", "Anything", domain.Scope("bogus"), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScopeScore(domain.Phase{Title: tt.title}, tt.scope)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExperienceScore_EarlierPatternEntriesScoreHigher(t *testing.T) {
	pattern := []string{"setup", "basics", "practice", "project"}

	setupScore := ExperienceScore(domain.Phase{Title: "Environment Setup"}, pattern)
	projectScore := ExperienceScore(domain.Phase{Title: "Final Project"}, pattern)

	assert.Equal(t, 40.0, setupScore)  // (4-0)*10
	assert.Equal(t, 10.0, projectScore) // (4-3)*10
	assert.Greater(t, setupScore, projectScore)
}

func TestExperienceScore_NoMatchIsNeutral(t *testing.T) {
	score := ExperienceScore(domain.Phase{Title: "Mystery Phase"}, []string{"setup"})
	assert.Equal(t, NeutralScore, score)
}

func TestRiskScore(t *testing.T) {
	matrix := []config.RiskKeyword{
		{Keyword: "payment", Risk: 8, Impact: 9, Complexity: 9},
		{Keyword: "testing", Risk: 2, Impact: 6, Complexity: 4},
	}

	assert.Equal(t, 10.0, RiskScore(domain.Phase{Title: "Payment Integration"}, matrix))
	assert.Equal(t, 40.0, RiskScore(domain.Phase{Title: "Testing Round"}, matrix))
	assert.Equal(t, NeutralScore, RiskScore(domain.Phase{Title: "Docs"}, matrix))
}

func TestTimelineScore(t *testing.T) {
	parsers := defaultParsersForTest()

	t.Run("no extractable day is neutral", func(t *testing.T) {
		score := TimelineScore(domain.Phase{Title: "x", Timeline: "soon"}, 42, parsers)
		assert.Equal(t, NeutralScore, score)
	})

	t.Run("earlier phases score higher", func(t *testing.T) {
		early := TimelineScore(domain.Phase{Timeline: "Week 1"}, 42, parsers)
		late := TimelineScore(domain.Phase{Timeline: "Week 5"}, 42, parsers)
		assert.Greater(t, early, late)
	})

	t.Run("front-load bonus within first 30 percent", func(t *testing.T) {
		// Day 7 of 42 is within the first 30% (12.6 days): bonus applies.
		got := TimelineScore(domain.Phase{Timeline: "Week 1"}, 42, parsers)
		assert.InDelta(t, (42-7+1)*10*1.2, got, 1e-9)

		// Day 35 is well past the cutoff: no bonus.
		got = TimelineScore(domain.Phase{Timeline: "Week 5"}, 42, parsers)
		assert.InDelta(t, (42-35+1)*10, got, 1e-9)
	})

	t.Run("phase beyond the timeline floors at zero", func(t *testing.T) {
		score := TimelineScore(domain.Phase{Timeline: "Week 9"}, 42, parsers)
		assert.Equal(t, 0.0, score)
	})
}

func TestTaskScore_PositionalTieBreak(t *testing.T) {
	patterns := []config.TaskPattern{
		{Category: "core", Keywords: []string{"implement"}, Score: 85},
	}
	first := TaskScore(domain.Task{Title: "Implement search"}, patterns, 0)
	later := TaskScore(domain.Task{Title: "Implement filters"}, patterns, 5)

	assert.Greater(t, first, later, "earlier original index should rank higher on equal pattern match")
	assert.InDelta(t, 0.5, first-later, 1e-9)
}

func TestTaskScore_FirstMatchOnly(t *testing.T) {
	patterns := []config.TaskPattern{
		{Category: "setup", Keywords: []string{"install"}, Score: 90},
		{Category: "core", Keywords: []string{"implement"}, Score: 85},
	}
	// Matches both categories; only the first contributes.
	score := TaskScore(domain.Task{Title: "Install and implement"}, patterns, 0)
	assert.InDelta(t, 90+10.0, score, 1e-9)
}

func TestWeightedScore_KeyLookup(t *testing.T) {
	scores := map[string]float64{"logical_order": 100, "risk": 40}

	t.Run("upper-cased key preferred", func(t *testing.T) {
		weights := map[string]float64{"LOGICAL_ORDER": 0.5, "RISK": 0.1}
		assert.InDelta(t, 54.0, WeightedScore(scores, weights), 1e-9)
	})

	t.Run("raw key fallback", func(t *testing.T) {
		weights := map[string]float64{"logical_order": 0.5}
		assert.InDelta(t, 50.0, WeightedScore(scores, weights), 1e-9)
	})

	t.Run("unconfigured factor contributes nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, WeightedScore(scores, map[string]float64{}))
	})
}

func TestWeightedScore_DeterministicAccumulation(t *testing.T) {
	// Values whose float sum differs depending on accumulation order, so a
	// map-order walk would flicker across runs.
	scores := map[string]float64{
		"logical_order": 0.1,
		"timeline":      0.2,
		"experience":    0.3,
		"scope":         0.7,
		"risk":          1e-9,
	}
	weights := map[string]float64{
		"LOGICAL_ORDER": 1, "TIMELINE": 1, "EXPERIENCE": 1, "SCOPE": 1, "RISK": 1,
	}

	first := WeightedScore(scores, weights)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, WeightedScore(scores, weights))
	}
}
