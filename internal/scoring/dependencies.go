package scoring

import (
	"fmt"
	"strings"

	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
)

// DependencyWarning reports a phase that appears before one of its coarse
// prerequisites. Advisory only: nothing acts on these, they are surfaced so
// callers and tests can observe them.
type DependencyWarning struct {
	Phase             string `json:"phase"`
	Prerequisite      string `json:"prerequisite"`
	PhaseIndex        int    `json:"phaseIndex"`
	PrerequisiteIndex int    `json:"prerequisiteIndex"`
	Message           string `json:"message"`
}

// ValidateDependencies checks the ordered phase list against the rule table.
// Phases are located by case-insensitive substring match on title; rules
// whose phases are absent are skipped. The result never affects ordering.
func ValidateDependencies(phases []domain.Phase, rules []config.DependencyRule) []DependencyWarning {
	var warnings []DependencyWarning
	for _, rule := range rules {
		phaseIdx := findPhaseIndex(phases, rule.Phase)
		if phaseIdx < 0 {
			continue
		}
		for _, prereq := range rule.Prerequisites {
			prereqIdx := findPhaseIndex(phases, prereq)
			if prereqIdx < 0 {
				continue
			}
			if prereqIdx > phaseIdx {
				warnings = append(warnings, DependencyWarning{
					Phase:             phases[phaseIdx].Title,
					Prerequisite:      phases[prereqIdx].Title,
					PhaseIndex:        phaseIdx,
					PrerequisiteIndex: prereqIdx,
					Message: fmt.Sprintf("%q is scheduled after %q which depends on it",
						phases[prereqIdx].Title, phases[phaseIdx].Title),
				})
			}
		}
	}
	return warnings
}

func findPhaseIndex(phases []domain.Phase, keyword string) int {
	kw := strings.ToLower(keyword)
	for i, p := range phases {
		if strings.Contains(strings.ToLower(p.Title), kw) {
			return i
		}
	}
	return -1
}
