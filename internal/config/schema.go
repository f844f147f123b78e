package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// fileSchema is the external JSON configuration format. Every section is
// optional; present sections replace the corresponding default table
// wholesale.
type fileSchema struct {
	Weights          map[string]map[string]float64 `json:"weights,omitempty"`
	RiskMatrices     map[string][]RiskKeyword      `json:"riskMatrices,omitempty"`
	LearningPatterns map[string][]string           `json:"learningPatterns,omitempty"`
	TimelineParsers  []timelineParserSchema        `json:"timelineParsers,omitempty"`
	PhasePatterns    []PhasePattern                `json:"phasePatterns,omitempty"`
	TaskPatterns     []TaskPattern                 `json:"taskPatterns,omitempty"`
	DependencyRules  []dependencyRuleSchema        `json:"dependencyRules,omitempty"`
}

// timelineParserSchema carries the pattern as a plain regexp source string;
// it is compiled case-insensitively at load time, not re-parsed per call.
type timelineParserSchema struct {
	Unit       string `json:"unit"`
	Pattern    string `json:"pattern"`
	Multiplier int    `json:"multiplier"`
}

type dependencyRuleSchema struct {
	Phase         string   `json:"phase"`
	Prerequisites []string `json:"prerequisites"`
}

// loadExternal reads the configuration file and overlays it onto the
// defaults. Invalid individual entries (bad regexp, empty keyword list) are
// skipped with a warning; only an unreadable or unparsable file is an error.
func loadExternal(path string, logger *slog.Logger) (tables, error) {
	t := defaultTables()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading config file: %w", err)
	}
	var fs fileSchema
	if err := json.Unmarshal(data, &fs); err != nil {
		return t, fmt.Errorf("parsing config file: %w", err)
	}

	if len(fs.Weights) > 0 {
		weights := make(map[domain.ProjectType]map[string]float64, len(fs.Weights))
		for k, v := range fs.Weights {
			weights[domain.ProjectType(k)] = v
		}
		if _, ok := weights[domain.TypeDefault]; !ok {
			weights[domain.TypeDefault] = t.weights[domain.TypeDefault]
		}
		t.weights = weights
	}
	if len(fs.RiskMatrices) > 0 {
		matrices := make(map[domain.ProjectDomain][]RiskKeyword, len(fs.RiskMatrices))
		for k, v := range fs.RiskMatrices {
			matrices[domain.ProjectDomain(k)] = v
		}
		if _, ok := matrices[domain.DomainWebApp]; !ok {
			matrices[domain.DomainWebApp] = t.riskMatrices[domain.DomainWebApp]
		}
		t.riskMatrices = matrices
	}
	if len(fs.LearningPatterns) > 0 {
		patterns := make(map[domain.ExperienceLevel][]string, len(fs.LearningPatterns))
		for k, v := range fs.LearningPatterns {
			patterns[domain.ExperienceLevel(k)] = v
		}
		if _, ok := patterns[domain.ExperienceBeginner]; !ok {
			patterns[domain.ExperienceBeginner] = t.learningPatterns[domain.ExperienceBeginner]
		}
		t.learningPatterns = patterns
	}
	if len(fs.TimelineParsers) > 0 {
		if parsers := compileTimelineParsers(fs.TimelineParsers, logger); len(parsers) > 0 {
			t.timelineParsers = parsers
		}
	}
	if len(fs.PhasePatterns) > 0 {
		t.phasePatterns = filterPatterns(fs.PhasePatterns, logger)
	}
	if len(fs.TaskPatterns) > 0 {
		t.taskPatterns = filterTaskPatterns(fs.TaskPatterns, logger)
	}
	if len(fs.DependencyRules) > 0 {
		rules := make([]DependencyRule, 0, len(fs.DependencyRules))
		for _, r := range fs.DependencyRules {
			if r.Phase == "" || len(r.Prerequisites) == 0 {
				continue
			}
			rules = append(rules, DependencyRule{Phase: r.Phase, Prerequisites: r.Prerequisites})
		}
		t.dependencyRules = rules
	}

	return t, nil
}

func compileTimelineParsers(in []timelineParserSchema, logger *slog.Logger) []TimelineParser {
	out := make([]TimelineParser, 0, len(in))
	for _, s := range in {
		src := s.Pattern
		if !strings.HasPrefix(src, "(?i)") {
			src = "(?i)" + src
		}
		re, err := regexp.Compile(src)
		if err != nil {
			logger.Warn("skipping timeline parser with invalid pattern",
				"unit", s.Unit, "pattern", s.Pattern, "error", err)
			continue
		}
		mult := s.Multiplier
		if mult <= 0 {
			mult = 1
		}
		out = append(out, TimelineParser{Unit: s.Unit, Pattern: re, Multiplier: mult})
	}
	return out
}

func filterPatterns(in []PhasePattern, logger *slog.Logger) []PhasePattern {
	out := make([]PhasePattern, 0, len(in))
	for _, p := range in {
		if len(p.Keywords) == 0 {
			logger.Warn("skipping phase pattern without keywords", "category", p.Category)
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterTaskPatterns(in []TaskPattern, logger *slog.Logger) []TaskPattern {
	out := make([]TaskPattern, 0, len(in))
	for _, p := range in {
		if len(p.Keywords) == 0 {
			logger.Warn("skipping task pattern without keywords", "category", p.Category)
			continue
		}
		out = append(out, p)
	}
	return out
}
