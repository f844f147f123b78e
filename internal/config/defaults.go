package config

import (
	"regexp"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// Weight keys. Factor score maps use the lower-case form; weight tables use
// the upper-case form (weighted combination tries upper first, then raw).
const (
	FactorLogicalOrder = "logical_order"
	FactorTimeline     = "timeline"
	FactorExperience   = "experience"
	FactorScope        = "scope"
	FactorRisk         = "risk"
)

func defaultWeights() map[domain.ProjectType]map[string]float64 {
	return map[domain.ProjectType]map[string]float64{
		domain.TypeDefault: {
			"LOGICAL_ORDER": 0.30, "TIMELINE": 0.25, "EXPERIENCE": 0.20,
			"SCOPE": 0.15, "RISK": 0.10,
		},
		domain.TypeMVP: {
			"LOGICAL_ORDER": 0.25, "TIMELINE": 0.30, "EXPERIENCE": 0.15,
			"SCOPE": 0.20, "RISK": 0.10,
		},
		domain.TypeFullFeatured: {
			"LOGICAL_ORDER": 0.30, "TIMELINE": 0.20, "EXPERIENCE": 0.20,
			"SCOPE": 0.15, "RISK": 0.15,
		},
		domain.TypeEnterprise: {
			"LOGICAL_ORDER": 0.25, "TIMELINE": 0.15, "EXPERIENCE": 0.15,
			"SCOPE": 0.15, "RISK": 0.30,
		},
	}
}

func defaultRiskMatrices() map[domain.ProjectDomain][]RiskKeyword {
	return map[domain.ProjectDomain][]RiskKeyword{
		domain.DomainWebApp: {
			{Keyword: "payment", Risk: 8, Impact: 9, Complexity: 9},
			{Keyword: "authentication", Risk: 3, Impact: 8, Complexity: 6},
			{Keyword: "database", Risk: 4, Impact: 8, Complexity: 6},
			{Keyword: "deployment", Risk: 5, Impact: 7, Complexity: 5},
			{Keyword: "api", Risk: 3, Impact: 7, Complexity: 5},
			{Keyword: "testing", Risk: 2, Impact: 6, Complexity: 4},
		},
		domain.DomainMobileApp: {
			{Keyword: "app store", Risk: 6, Impact: 9, Complexity: 5},
			{Keyword: "offline", Risk: 6, Impact: 7, Complexity: 7},
			{Keyword: "push notification", Risk: 4, Impact: 6, Complexity: 5},
			{Keyword: "performance", Risk: 5, Impact: 8, Complexity: 7},
		},
		domain.DomainAIProject: {
			{Keyword: "training", Risk: 7, Impact: 9, Complexity: 8},
			{Keyword: "model", Risk: 7, Impact: 9, Complexity: 8},
			{Keyword: "data collection", Risk: 6, Impact: 8, Complexity: 6},
			{Keyword: "deployment", Risk: 6, Impact: 7, Complexity: 7},
			{Keyword: "evaluation", Risk: 4, Impact: 7, Complexity: 5},
		},
	}
}

func defaultLearningPatterns() map[domain.ExperienceLevel][]string {
	return map[domain.ExperienceLevel][]string{
		domain.ExperienceBeginner: {
			"setup", "basics", "fundamentals", "introduction", "simple",
			"core", "practice", "project",
		},
		domain.ExperienceIntermediate: {
			"setup", "core", "development", "integration", "testing", "deployment",
		},
		domain.ExperienceAdvanced: {
			"architecture", "design", "development", "optimization", "scaling",
			"deployment",
		},
		domain.ExperienceExpert: {
			"architecture", "infrastructure", "optimization", "scaling",
			"automation", "innovation",
		},
	}
}

// Timeline patterns accept both "week 2" and "6 weeks" word orders; the
// scoring layer reads whichever capture group matched.
func defaultTimelineParsers() []TimelineParser {
	return []TimelineParser{
		{
			Unit:       "day",
			Pattern:    regexp.MustCompile(`(?i)(?:days?\s*(\d+)|(\d+)\s*days?)`),
			Multiplier: 1,
		},
		{
			Unit:       "week",
			Pattern:    regexp.MustCompile(`(?i)(?:weeks?\s*(\d+)|(\d+)\s*weeks?)`),
			Multiplier: 7,
		},
		{
			Unit:       "month",
			Pattern:    regexp.MustCompile(`(?i)(?:months?\s*(\d+)|(\d+)\s*months?)`),
			Multiplier: 30,
		},
	}
}

func defaultPhasePatterns() []PhasePattern {
	return []PhasePattern{
		{Category: "planning", Keywords: []string{"planning", "research", "discovery", "requirements"}, Score: 100},
		{Category: "setup", Keywords: []string{"setup", "foundation", "environment", "scaffolding"}, Score: 95},
		{Category: "design", Keywords: []string{"design", "architecture", "wireframe"}, Score: 85},
		{Category: "core", Keywords: []string{"core", "development", "implementation", "build"}, Score: 80},
		{Category: "feature", Keywords: []string{"feature", "functionality", "enhancement"}, Score: 70},
		{Category: "integration", Keywords: []string{"integration", "api", "connect"}, Score: 65},
		{Category: "testing", Keywords: []string{"testing", "qa", "quality"}, Score: 55},
		{Category: "deployment", Keywords: []string{"deployment", "launch", "release", "production"}, Score: 45},
		{Category: "optimization", Keywords: []string{"optimization", "polish", "scaling", "performance"}, Score: 35},
	}
}

func defaultTaskPatterns() []TaskPattern {
	return []TaskPattern{
		{Category: "setup", Keywords: []string{"setup", "install", "configure", "initialize"}, Score: 90},
		{Category: "core", Keywords: []string{"implement", "build", "create", "develop"}, Score: 85},
		{Category: "design", Keywords: []string{"design", "wireframe", "mockup", "architecture"}, Score: 80},
		{Category: "feature", Keywords: []string{"feature", "add", "enhance", "extend"}, Score: 70},
		{Category: "testing", Keywords: []string{"test", "verify", "validate", "debug"}, Score: 60},
		{Category: "deployment", Keywords: []string{"deploy", "release", "publish", "launch"}, Score: 50},
		{Category: "documentation", Keywords: []string{"document", "readme", "docs", "write"}, Score: 40},
		{Category: "optimization", Keywords: []string{"optimize", "refactor", "improve", "polish"}, Score: 30},
	}
}

// Advisory ordering rules: development-like phases should follow setup and
// planning, testing should follow development, and so on. Violations are
// reported, never corrected.
func defaultDependencyRules() []DependencyRule {
	return []DependencyRule{
		{Phase: "development", Prerequisites: []string{"setup", "planning"}},
		{Phase: "testing", Prerequisites: []string{"development"}},
		{Phase: "deployment", Prerequisites: []string{"testing"}},
		{Phase: "optimization", Prerequisites: []string{"development"}},
	}
}

// Detection keyword sets. Scanned in priority order: enterprise indicators
// can co-occur with mvp language ("minimum viable" inside an enterprise
// migration plan), so enterprise wins ties.
var (
	enterpriseIndicators = []string{
		"enterprise", "scalability", "microservice", "compliance",
		"high availability", "load balancing", "audit",
	}
	mvpIndicators = []string{
		"mvp", "minimum viable", "prototype", "proof of concept", "basic version",
	}
	fullFeaturedIndicators = []string{
		"full-featured", "advanced features", "comprehensive", "complete solution",
	}

	mobileIndicators = []string{
		"mobile", "ios", "android", "app store", "react native", "flutter",
	}
	aiIndicators = []string{
		"machine learning", "artificial intelligence", "neural", "dataset",
		"model training", "llm", "data science",
	}
)
