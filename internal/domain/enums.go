package domain

// ProjectType classifies a roadmap by ambition, detected from its text.
type ProjectType string

const (
	TypeMVP          ProjectType = "mvp"
	TypeFullFeatured ProjectType = "full-featured"
	TypeEnterprise   ProjectType = "enterprise-level"
	TypeDefault      ProjectType = "default"
)

// ProjectDomain classifies a roadmap by technical domain.
type ProjectDomain string

const (
	DomainWebApp    ProjectDomain = "web-app"
	DomainMobileApp ProjectDomain = "mobile-app"
	DomainAIProject ProjectDomain = "ai-project"
)

// ExperienceLevel is the user's self-reported skill level.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// Scope is the user's target project scope.
type Scope string

const (
	ScopeMVP          Scope = "mvp"
	ScopeFullFeatured Scope = "full-featured"
	ScopeEnterprise   Scope = "enterprise-level"
)

// TaskStatus is owned by the UI layer; the core only reads it.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "in-progress": true, "completed": true,
}

// ParseExperienceLevel maps a string onto an ExperienceLevel, defaulting to
// beginner for empty or unknown values.
func ParseExperienceLevel(s string) ExperienceLevel {
	switch ExperienceLevel(s) {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return ExperienceLevel(s)
	default:
		return ExperienceBeginner
	}
}

// ParseScope maps a string onto a Scope, defaulting to mvp.
func ParseScope(s string) Scope {
	switch Scope(s) {
	case ScopeMVP, ScopeFullFeatured, ScopeEnterprise:
		return Scope(s)
	default:
		return ScopeMVP
	}
}
