package config

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// Provider supplies scoring configuration. Built-in defaults are always
// available; an optional external JSON file loaded at construction (and on
// Reload) overlays them. A missing or malformed file is never fatal — the
// provider warns and keeps serving defaults.
type Provider struct {
	path   string
	logger *slog.Logger

	mu     sync.RWMutex
	tables tables
}

type tables struct {
	weights          map[domain.ProjectType]map[string]float64
	riskMatrices     map[domain.ProjectDomain][]RiskKeyword
	learningPatterns map[domain.ExperienceLevel][]string
	timelineParsers  []TimelineParser
	phasePatterns    []PhasePattern
	taskPatterns     []TaskPattern
	dependencyRules  []DependencyRule
}

func defaultTables() tables {
	return tables{
		weights:          defaultWeights(),
		riskMatrices:     defaultRiskMatrices(),
		learningPatterns: defaultLearningPatterns(),
		timelineParsers:  defaultTimelineParsers(),
		phasePatterns:    defaultPhasePatterns(),
		taskPatterns:     defaultTaskPatterns(),
		dependencyRules:  defaultDependencyRules(),
	}
}

// NewProvider creates a Provider. path may be empty, in which case only the
// built-in defaults are used. logger may be nil.
func NewProvider(path string, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Provider{path: path, logger: logger, tables: defaultTables()}
	if path != "" {
		p.Reload()
	}
	return p
}

// Reload re-reads the external configuration file. Failures leave the
// current tables in place and emit a warning.
func (p *Provider) Reload() {
	if p.path == "" {
		return
	}
	t, err := loadExternal(p.path, p.logger)
	if err != nil {
		p.logger.Warn("config reload failed, keeping current tables",
			"path", p.path, "error", err)
		return
	}
	p.mu.Lock()
	p.tables = t
	p.mu.Unlock()
	p.logger.Info("configuration loaded", "path", p.path)
}

// DetectProjectType scans the roadmap text for type indicators in fixed
// priority order: enterprise, then mvp, then full-featured. First match wins.
func (p *Provider) DetectProjectType(r domain.Roadmap) domain.ProjectType {
	blob := roadmapBlob(r)
	switch {
	case containsAny(blob, enterpriseIndicators):
		return domain.TypeEnterprise
	case containsAny(blob, mvpIndicators):
		return domain.TypeMVP
	case containsAny(blob, fullFeaturedIndicators):
		return domain.TypeFullFeatured
	default:
		return domain.TypeDefault
	}
}

// DetectDomain scans the roadmap text for domain indicators, priority order
// mobile then ai; anything else is assumed web-oriented.
func (p *Provider) DetectDomain(r domain.Roadmap) domain.ProjectDomain {
	blob := roadmapBlob(r)
	switch {
	case containsAny(blob, mobileIndicators):
		return domain.DomainMobileApp
	case containsAny(blob, aiIndicators):
		return domain.DomainAIProject
	default:
		return domain.DomainWebApp
	}
}

// Weights returns the weight table for a project type, falling back to the
// default table for unknown types.
func (p *Provider) Weights(t domain.ProjectType) map[string]float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if w, ok := p.tables.weights[t]; ok {
		return w
	}
	return p.tables.weights[domain.TypeDefault]
}

// RiskMatrix returns the ordered risk keyword list for a domain, falling
// back to the web-app matrix.
func (p *Provider) RiskMatrix(d domain.ProjectDomain) []RiskKeyword {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if m, ok := p.tables.riskMatrices[d]; ok {
		return m
	}
	return p.tables.riskMatrices[domain.DomainWebApp]
}

// LearningPatterns returns the ordered keyword sequence for an experience
// level, falling back to the beginner sequence.
func (p *Provider) LearningPatterns(e domain.ExperienceLevel) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if lp, ok := p.tables.learningPatterns[e]; ok {
		return lp
	}
	return p.tables.learningPatterns[domain.ExperienceBeginner]
}

// TimelineParsers returns the ordered timeline extraction table.
func (p *Provider) TimelineParsers() []TimelineParser {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tables.timelineParsers
}

// PhasePatterns returns the ordered phase categorization table.
func (p *Provider) PhasePatterns() []PhasePattern {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tables.phasePatterns
}

// TaskPatterns returns the ordered task categorization table.
func (p *Provider) TaskPatterns() []TaskPattern {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tables.taskPatterns
}

// DependencyRules returns the advisory phase ordering rules.
func (p *Provider) DependencyRules() []DependencyRule {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tables.dependencyRules
}

// ProjectConfig composes the full per-call configuration bundle for a
// roadmap and its constraints, recording the detected type and domain.
func (p *Provider) ProjectConfig(r domain.Roadmap, c domain.UserConstraints) ProjectConfig {
	projectType := p.DetectProjectType(r)
	projectDomain := p.DetectDomain(r)
	experience := domain.ParseExperienceLevel(string(c.Experience))

	return ProjectConfig{
		Weights:         p.Weights(projectType),
		RiskMatrix:      p.RiskMatrix(projectDomain),
		LearningPattern: p.LearningPatterns(experience),
		TimelineParsers: p.TimelineParsers(),
		TaskPatterns:    p.TaskPatterns(),
		PhasePatterns:   p.PhasePatterns(),
		DependencyRules: p.DependencyRules(),
		Metadata: DetectionMetadata{
			ProjectType: projectType,
			Domain:      projectDomain,
		},
	}
}

// roadmapBlob serializes a roadmap to a lowercase text blob for keyword
// detection. Marshal cannot fail on these types; an empty blob just means
// nothing will match and defaults apply.
func roadmapBlob(r domain.Roadmap) string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return strings.ToLower(string(b))
}

func containsAny(blob string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(blob, kw) {
			return true
		}
	}
	return false
}
