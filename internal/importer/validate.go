package importer

import (
	"fmt"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// ValidateRoadmap checks a roadmap's shape before use. Returns a slice of
// all validation errors found, empty when the roadmap is well-formed.
func ValidateRoadmap(r *domain.Roadmap) []error {
	var errs []error

	if len(r.Phases) == 0 {
		errs = append(errs, fmt.Errorf("roadmap has no phases"))
	}

	phaseIDs := make(map[string]bool)
	for i, p := range r.Phases {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("phases[%d].id is required", i))
		} else if phaseIDs[p.ID] {
			errs = append(errs, fmt.Errorf("phases[%d].id %q is duplicated", i, p.ID))
		}
		phaseIDs[p.ID] = true
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("phases[%d].title is required", i))
		}
		errs = append(errs, validateMilestones(i, p.Milestones)...)
	}

	return errs
}

func validateMilestones(phaseIdx int, milestones []domain.Milestone) []error {
	var errs []error
	seen := make(map[string]bool)
	for j, m := range milestones {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("phases[%d].milestones[%d].id is required", phaseIdx, j))
		} else if seen[m.ID] {
			errs = append(errs, fmt.Errorf("phases[%d].milestones[%d].id %q is duplicated", phaseIdx, j, m.ID))
		}
		seen[m.ID] = true
		if m.Title == "" {
			errs = append(errs, fmt.Errorf("phases[%d].milestones[%d].title is required", phaseIdx, j))
		}
		for k, t := range m.Tasks {
			if t.Title == "" {
				errs = append(errs, fmt.Errorf("phases[%d].milestones[%d].tasks[%d].title is required", phaseIdx, j, k))
			}
			if t.Status != "" && !domain.ValidTaskStatuses[string(t.Status)] {
				errs = append(errs, fmt.Errorf("phases[%d].milestones[%d].tasks[%d].status: invalid value %q", phaseIdx, j, k, t.Status))
			}
		}
	}
	return errs
}
