package config

import (
	"regexp"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// PhasePattern maps a phase category onto a fixed logical-order score.
// Patterns are scanned in slice order and the first keyword hit wins, so the
// precedence contract lives in the slice, not in map iteration order.
type PhasePattern struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	Score    float64  `json:"score"`
}

// TaskPattern maps a task category onto a base score, same first-match-wins
// semantics as PhasePattern.
type TaskPattern struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	Score    float64  `json:"score"`
}

// RiskKeyword is one row of a domain risk matrix.
type RiskKeyword struct {
	Keyword    string `json:"keyword"`
	Risk       int    `json:"risk"`
	Impact     int    `json:"impact"`
	Complexity int    `json:"complexity"`
}

// TimelineParser extracts a day count from free-text timelines. Pattern is
// compiled once at configuration load; it may carry multiple capture groups
// ("week 2" and "6 weeks" forms) and the first non-empty group is used.
type TimelineParser struct {
	Unit       string
	Pattern    *regexp.Regexp
	Multiplier int
}

// DependencyRule states that a phase matching Phase should come after all
// phases matching its prerequisites. Matching is case-insensitive substring
// on titles; violations are advisory only.
type DependencyRule struct {
	Phase         string
	Prerequisites []string
}

// DetectionMetadata records which configuration variant was selected.
type DetectionMetadata struct {
	ProjectType domain.ProjectType   `json:"projectType"`
	Domain      domain.ProjectDomain `json:"domain"`
}

// ProjectConfig is the per-call configuration bundle handed to the
// prioritization engine. It is ephemeral: recomputed for every call, never
// persisted.
type ProjectConfig struct {
	Weights         map[string]float64
	RiskMatrix      []RiskKeyword
	LearningPattern []string
	TimelineParsers []TimelineParser
	TaskPatterns    []TaskPattern
	PhasePatterns   []PhasePattern
	DependencyRules []DependencyRule
	Metadata        DetectionMetadata
}
