package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jplancaster/roadmapper/internal/config"
	"github.com/jplancaster/roadmapper/internal/domain"
	"github.com/jplancaster/roadmapper/internal/prioritize"
)

// FormatResult renders diagnostics, detection metadata, and advisory
// dependency warnings for the --explain flag.
func FormatResult(result prioritize.Result) string {
	var b strings.Builder

	b.WriteString(Header("Prioritization"))
	b.WriteString("\n")
	if result.Changed {
		fmt.Fprintf(&b, "Detected: %s / %s\n",
			Bold(string(result.Detection.ProjectType)),
			Bold(string(result.Detection.Domain)))
		fmt.Fprintf(&b, "Phases reordered: %d\n", len(result.Roadmap.Phases))
	} else {
		b.WriteString(Dim("Roadmap returned unchanged.\n"))
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(&b, "%s %s\n", Warn(fmt.Sprintf("[%s/%s]", d.Stage, d.Code)), d.Message)
	}

	if len(result.Warnings) > 0 {
		b.WriteString(Header("Dependency warnings (advisory)"))
		b.WriteString("\n")
		for _, w := range result.Warnings {
			b.WriteString(Dim("  " + w.Message + "\n"))
		}
	}

	b.WriteString("\n")
	return b.String()
}

// FormatProjectList renders a short one-line-per-project listing.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects stored.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Projects"))
	b.WriteString("\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Dim(p.DisplayID()),
			Bold(p.Name),
			Dim(fmt.Sprintf("%d phases, updated %s", len(p.Roadmap.Phases), p.UpdatedAt.Format("2006-01-02"))))
	}
	return b.String()
}

// FormatWeights renders a single weight table sorted by factor name.
func FormatWeights(weights map[string]float64) string {
	factors := make([]string, 0, len(weights))
	for f := range weights {
		factors = append(factors, f)
	}
	sort.Strings(factors)

	var b strings.Builder
	for _, f := range factors {
		fmt.Fprintf(&b, "  %-16s %.2f\n", f, weights[f])
	}
	return b.String()
}

// FormatWeightTables renders the weight tables for every project type.
func FormatWeightTables(provider *config.Provider) string {
	var b strings.Builder
	for _, t := range []domain.ProjectType{
		domain.TypeDefault, domain.TypeMVP, domain.TypeFullFeatured, domain.TypeEnterprise,
	} {
		b.WriteString(Header(string(t)))
		b.WriteString("\n")
		b.WriteString(FormatWeights(provider.Weights(t)))
	}
	return b.String()
}
