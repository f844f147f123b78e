// Package importer loads roadmap JSON produced by the generation layer and
// validates its shape before it reaches the engine.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jplancaster/roadmapper/internal/domain"
)

// LoadRoadmap reads and parses a roadmap JSON file. Markdown code fences
// around the JSON (as emitted by generative services) are stripped first.
func LoadRoadmap(path string) (*domain.Roadmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRoadmap(data)
}

// ParseRoadmap parses roadmap JSON bytes, tolerating a code-fence wrapper.
func ParseRoadmap(data []byte) (*domain.Roadmap, error) {
	var r domain.Roadmap
	if err := json.Unmarshal(StripCodeFences(data), &r); err != nil {
		return nil, fmt.Errorf("parsing roadmap: %w", err)
	}
	return &r, nil
}

// StripCodeFences removes a surrounding ```json ... ``` (or bare ```) block
// if present, returning the input unchanged otherwise.
func StripCodeFences(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, "```") {
		return data
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return []byte(strings.TrimSpace(s))
}
