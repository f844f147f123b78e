package prioritize

import (
	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/scoring"
)

// Pipeline stages, for diagnostics.
const (
	StageValidate = "validate"
	StageScore    = "score"
)

// Diagnostic codes.
const (
	CodeEmptyPhases        = "EMPTY_PHASES"
	CodeMissingConstraints = "MISSING_CONSTRAINTS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Diagnostic explains why the pipeline changed nothing. The public contract
// stays fail-open; diagnostics exist so callers and tests can assert on the
// reason without the engine ever surfacing an error.
type Diagnostic struct {
	Stage   string `json:"stage"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result carries the prioritized roadmap together with everything observable
// about the run.
type Result struct {
	Roadmap     domain.Roadmap
	Changed     bool
	Diagnostics []Diagnostic
	Warnings    []scoring.DependencyWarning
	Detection   config.DetectionMetadata
}
