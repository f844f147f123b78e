package domain

// UserConstraints carries the raw form inputs that shape prioritization.
// Timeline is free text ("6 weeks", "Day 5", "45"); the engine normalizes it
// to days via the configured timeline parsers.
type UserConstraints struct {
	Timeline   string          `json:"timeline"`
	Experience ExperienceLevel `json:"experienceLevel"`
	Scope      Scope           `json:"scope"`
}

// NormalizedConstraints is the internal form the scoring functions consume.
type NormalizedConstraints struct {
	TimelineDays int
	Experience   ExperienceLevel
	Scope        Scope
}

// Normalize applies the defaulting rules: unknown experience falls back to
// beginner and unknown scope to mvp. Timeline parsing happens upstream since
// it needs the configured parser table; days is passed in already resolved.
func (c UserConstraints) Normalize(timelineDays int) NormalizedConstraints {
	return NormalizedConstraints{
		TimelineDays: timelineDays,
		Experience:   ParseExperienceLevel(string(c.Experience)),
		Scope:        ParseScope(string(c.Scope)),
	}
}
