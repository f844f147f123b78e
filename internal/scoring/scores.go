// Package scoring contains the pure scoring functions behind roadmap
// prioritization. Everything here is deterministic and side-effect free:
// given the same phase, tables, and constraints the same score comes back.
package scoring

import (
	"sort"
	"strings"

	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
)

// NeutralScore is returned when no table entry matches an input.
const NeutralScore = 50.0

// frontLoadCutoff is the fraction of the total timeline considered "early";
// phases landing there get the front-load bonus.
const (
	frontLoadCutoff = 0.3
	frontLoadBonus  = 1.2
)

// LogicalOrderScore categorizes a phase by title against the ordered phase
// pattern table and returns the first matching category's score.
func LogicalOrderScore(phase domain.Phase, patterns []config.PhasePattern) float64 {
	title := strings.ToLower(phase.Title)
	for _, p := range patterns {
		for _, kw := range p.Keywords {
			if strings.Contains(title, kw) {
				return p.Score
			}
		}
	}
	return NeutralScore
}

// TimelineScore rewards phases whose own timeline lands early within the
// user's total timeline. Phases without an extractable day are neutral.
func TimelineScore(phase domain.Phase, timelineDays int, parsers []config.TimelineParser) float64 {
	day := ExtractDayFromTimeline(phase.Timeline, parsers)
	if day == nil {
		return NeutralScore
	}
	remaining := float64(timelineDays - *day + 1)
	if remaining < 0 {
		remaining = 0
	}
	score := remaining * 10
	if timelineDays > 0 && float64(*day) <= float64(timelineDays)*frontLoadCutoff {
		score *= frontLoadBonus
	}
	return score
}

// ExperienceScore matches the phase title against the ordered learning
// pattern for the user's level; earlier entries in the sequence score higher.
func ExperienceScore(phase domain.Phase, learningPattern []string) float64 {
	title := strings.ToLower(phase.Title)
	for i, kw := range learningPattern {
		if strings.Contains(title, kw) {
			return float64(len(learningPattern)-i) * 10
		}
	}
	return NeutralScore
}

// ScopeScore applies the scope-specific rule table to a phase title.
func ScopeScore(phase domain.Phase, scope domain.Scope) float64 {
	switch scope {
	case domain.ScopeMVP:
		title := strings.ToLower(phase.Title)
		if containsAnyKeyword(title, "core", "basic", "foundation") {
			return 100
		}
		if containsAnyKeyword(title, "advanced", "optimization") {
			return 30
		}
		return NeutralScore
	case domain.ScopeFullFeatured:
		return 70
	case domain.ScopeEnterprise:
		return 80
	default:
		return NeutralScore
	}
}

// RiskScore looks the phase title up in the domain risk matrix and converts
// the first matching entry to a score: higher impact relative to risk sorts
// a phase earlier.
func RiskScore(phase domain.Phase, matrix []config.RiskKeyword) float64 {
	title := strings.ToLower(phase.Title)
	for _, entry := range matrix {
		if strings.Contains(title, entry.Keyword) {
			return float64(entry.Impact-entry.Risk) * 10
		}
	}
	return NeutralScore
}

// TaskScore scores a task by its first matching pattern category plus a
// small positional bias so tasks earlier in the original order win ties.
func TaskScore(task domain.Task, patterns []config.TaskPattern, originalIndex int) float64 {
	text := strings.ToLower(task.Title + " " + task.Description)
	score := NeutralScore
	for _, p := range patterns {
		if matched := matchesAnyKeyword(text, p.Keywords); matched {
			score = p.Score
			break
		}
	}
	return score + float64(100-originalIndex)*0.1
}

// WeightedScore combines factor scores using the weight table. The lookup
// tries the upper-cased factor key first, then the raw key; an unconfigured
// factor contributes nothing. Factors are summed in sorted key order so the
// float accumulation is identical across runs.
func WeightedScore(scores map[string]float64, weights map[string]float64) float64 {
	factors := make([]string, 0, len(scores))
	for factor := range scores {
		factors = append(factors, factor)
	}
	sort.Strings(factors)

	var total float64
	for _, factor := range factors {
		w, ok := weights[strings.ToUpper(factor)]
		if !ok {
			w = weights[factor]
		}
		total += scores[factor] * w
	}
	return total
}

func containsAnyKeyword(text string, keywords ...string) bool {
	return matchesAnyKeyword(text, keywords)
}

func matchesAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
