// Package prioritize reorders roadmap phases and tasks according to the
// weighted heuristics selected by the configuration provider.
//
// The engine is fail-open: prioritization is a best-effort optimization
// layered on an already-valid roadmap, so no failure here may ever block the
// caller. Anything that goes wrong falls back to the input roadmap, with the
// reason recorded on the Result's diagnostic list.
package prioritize

import (
	"fmt"
	"sort"
	"time"

	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/scoring"
)

// Engine runs the prioritization pipeline. Safe for concurrent use; all
// per-call state lives on the stack.
type Engine struct {
	provider *config.Provider
	now      func() time.Time
}

// NewEngine creates an Engine backed by the given configuration provider.
func NewEngine(provider *config.Provider) *Engine {
	return &Engine{provider: provider, now: time.Now}
}

// WithClock overrides the timestamp source. Tests use this to pin
// metadata.optimizedAt.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Prioritize runs the full pipeline and returns the reordered roadmap plus
// diagnostics and advisory dependency warnings. When the pipeline cannot
// run, Changed is false and Roadmap is the caller's input, untouched.
func (e *Engine) Prioritize(roadmap domain.Roadmap, constraints *domain.UserConstraints) (result Result) {
	result.Roadmap = roadmap

	// A panic anywhere below degrades to the fail-open fallback rather than
	// escaping to the caller.
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Roadmap: roadmap,
				Diagnostics: []Diagnostic{{
					Stage:   StageScore,
					Code:    CodeInternalError,
					Message: fmt.Sprintf("prioritization aborted: %v", r),
				}},
			}
		}
	}()

	if len(roadmap.Phases) == 0 {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Stage: StageValidate, Code: CodeEmptyPhases,
			Message: "roadmap has no phases to prioritize",
		})
		return result
	}
	if constraints == nil {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Stage: StageValidate, Code: CodeMissingConstraints,
			Message: "user constraints are required",
		})
		return result
	}

	cfg := e.provider.ProjectConfig(roadmap, *constraints)
	normalized := constraints.Normalize(
		scoring.ParseTimeline(constraints.Timeline, cfg.TimelineParsers))

	out := roadmap.Clone()
	sortPhases(out.Phases, normalized, cfg)
	for pi := range out.Phases {
		for mi := range out.Phases[pi].Milestones {
			sortTasks(out.Phases[pi].Milestones[mi].Tasks, cfg.TaskPatterns)
		}
	}

	result.Warnings = scoring.ValidateDependencies(out.Phases, cfg.DependencyRules)

	optimizedAt := e.now().UTC()
	out.Metadata.OptimizedAt = &optimizedAt
	out.Metadata.OptimizationFactors = &domain.OptimizationFactors{
		ProjectType:  cfg.Metadata.ProjectType,
		Domain:       cfg.Metadata.Domain,
		TimelineDays: normalized.TimelineDays,
		Experience:   normalized.Experience,
		Scope:        normalized.Scope,
	}

	result.Roadmap = out
	result.Changed = true
	result.Detection = cfg.Metadata
	return result
}

// PrioritizeRoadmap is the fail-open convenience wrapper: roadmap in,
// roadmap out, never an error. Diagnostics are dropped; callers who need
// them use Prioritize.
func (e *Engine) PrioritizeRoadmap(roadmap domain.Roadmap, constraints *domain.UserConstraints) domain.Roadmap {
	return e.Prioritize(roadmap, constraints).Roadmap
}

type scoredPhase struct {
	phase         domain.Phase
	score         float64
	originalIndex int
}

// sortPhases scores each phase, sorts descending, and rewrites Order to be
// contiguous and 1-based. The per-index bonus is small enough to only break
// near-exact ties, never to outweigh a genuine score difference.
func sortPhases(phases []domain.Phase, c domain.NormalizedConstraints, cfg config.ProjectConfig) {
	scored := make([]scoredPhase, len(phases))
	for i, p := range phases {
		factors := map[string]float64{
			config.FactorLogicalOrder: scoring.LogicalOrderScore(p, cfg.PhasePatterns),
			config.FactorTimeline:     scoring.TimelineScore(p, c.TimelineDays, cfg.TimelineParsers),
			config.FactorExperience:   scoring.ExperienceScore(p, cfg.LearningPattern),
			config.FactorScope:        scoring.ScopeScore(p, c.Scope),
			config.FactorRisk:         scoring.RiskScore(p, cfg.RiskMatrix),
		}
		score := scoring.WeightedScore(factors, cfg.Weights) + float64(100-i)*0.01
		scored[i] = scoredPhase{phase: p, score: score, originalIndex: i}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	for i, sp := range scored {
		sp.phase.Order = i + 1
		phases[i] = sp.phase
	}
}

// sortTasks reorders a milestone's task slice by score. Tasks carry no order
// field; only the array position changes.
func sortTasks(tasks []domain.Task, patterns []config.TaskPattern) {
	type scoredTask struct {
		task  domain.Task
		score float64
	}
	scored := make([]scoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = scoredTask{task: t, score: scoring.TaskScore(t, patterns, i)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	for i, st := range scored {
		tasks[i] = st.task
	}
}
