package domain

import "time"

// Roadmap is the top-level plan structure produced by the generation layer.
// The prioritization engine treats it as a value: callers always get a new
// roadmap back, never an in-place mutation of their own.
type Roadmap struct {
	Metadata Metadata `json:"metadata"`
	Summary  string   `json:"summary,omitempty"`
	Phases   []Phase  `json:"phases"`
}

// Metadata carries display fields plus the optimization audit trail the
// engine stamps after a successful run.
type Metadata struct {
	Title               string               `json:"title,omitempty"`
	Description         string               `json:"description,omitempty"`
	GeneratedAt         *time.Time           `json:"generatedAt,omitempty"`
	OptimizedAt         *time.Time           `json:"optimizedAt,omitempty"`
	OptimizationFactors *OptimizationFactors `json:"optimizationFactors,omitempty"`
}

// OptimizationFactors records which configuration variant the engine
// selected, for audit purposes.
type OptimizationFactors struct {
	ProjectType  ProjectType     `json:"projectType"`
	Domain       ProjectDomain   `json:"domain"`
	TimelineDays int             `json:"timelineDays"`
	Experience   ExperienceLevel `json:"experienceLevel"`
	Scope        Scope           `json:"scope"`
}

// Phase is a top-level stage of the roadmap. Order is 1-based and rewritten
// by the engine after sorting; it is contiguous and unique within a roadmap.
type Phase struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Timeline   string      `json:"timeline,omitempty"`
	Order      int         `json:"order"`
	Milestones []Milestone `json:"milestones"`
}

// Milestone groups tasks within a phase. Order follows the same contiguity
// invariant as Phase, scoped to its parent.
type Milestone struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Timeline string `json:"timeline,omitempty"`
	Order    int    `json:"order"`
	Tasks    []Task `json:"tasks"`
}

// Task is the atomic unit of work. Status is owned by the UI layer; the
// engine reads it but never writes it.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Resources      []Resource `json:"resources,omitempty"`
	Status         TaskStatus `json:"status,omitempty"`
	EstimatedHours float64    `json:"estimatedHours,omitempty"`
}

// Resource is a reference attached to a task.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Clone returns a deep copy of the roadmap. The engine clones before
// reordering so the caller's value is never touched.
func (r Roadmap) Clone() Roadmap {
	out := r
	out.Phases = make([]Phase, len(r.Phases))
	for i, p := range r.Phases {
		out.Phases[i] = p.Clone()
	}
	if r.Metadata.GeneratedAt != nil {
		t := *r.Metadata.GeneratedAt
		out.Metadata.GeneratedAt = &t
	}
	if r.Metadata.OptimizedAt != nil {
		t := *r.Metadata.OptimizedAt
		out.Metadata.OptimizedAt = &t
	}
	if r.Metadata.OptimizationFactors != nil {
		f := *r.Metadata.OptimizationFactors
		out.Metadata.OptimizationFactors = &f
	}
	return out
}

// Clone returns a deep copy of the phase.
func (p Phase) Clone() Phase {
	out := p
	out.Milestones = make([]Milestone, len(p.Milestones))
	for i, m := range p.Milestones {
		out.Milestones[i] = m.Clone()
	}
	return out
}

// Clone returns a deep copy of the milestone.
func (m Milestone) Clone() Milestone {
	out := m
	out.Tasks = make([]Task, len(m.Tasks))
	for i, t := range m.Tasks {
		out.Tasks[i] = t
		if len(t.Resources) > 0 {
			out.Tasks[i].Resources = append([]Resource(nil), t.Resources...)
		}
	}
	return out
}

// PhaseIDs returns the phase ID set in current order.
func (r Roadmap) PhaseIDs() []string {
	ids := make([]string, len(r.Phases))
	for i, p := range r.Phases {
		ids[i] = p.ID
	}
	return ids
}
