package domain

import "time"

// Project is a stored roadmap plus the constraints it was generated under.
// The roadmap itself is opaque to the store; it round-trips as JSON.
type Project struct {
	ID          string
	Name        string
	Description string
	Roadmap     Roadmap
	Constraints UserConstraints
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayID returns a short identifier for list output, truncating the UUID
// to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
