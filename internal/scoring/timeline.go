package scoring

import (
	"regexp"
	"strconv"

	"github.com/jplancaster/roadmapper/internal/config"
)

// DefaultTimelineDays is assumed when a timeline string yields no number.
const DefaultTimelineDays = 30

var bareNumberPattern = regexp.MustCompile(`\d+`)

// ExtractDayFromTimeline tries each configured unit parser in table order and
// returns the first match converted to days. If no unit pattern matches, the
// first bare integer in the string is used as-is. Returns nil when nothing
// numeric is found.
func ExtractDayFromTimeline(timeline string, parsers []config.TimelineParser) *int {
	if timeline == "" {
		return nil
	}
	for _, p := range parsers {
		m := p.Pattern.FindStringSubmatch(timeline)
		if m == nil {
			continue
		}
		// Parsers may carry alternate capture groups for both word orders;
		// the first non-empty group is the number.
		for _, g := range m[1:] {
			if g == "" {
				continue
			}
			n, err := strconv.Atoi(g)
			if err != nil {
				continue
			}
			days := n * p.Multiplier
			return &days
		}
	}
	if m := bareNumberPattern.FindString(timeline); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return &n
		}
	}
	return nil
}

// ParseTimeline resolves a timeline string to a day count, defaulting to
// DefaultTimelineDays when extraction finds nothing.
func ParseTimeline(timeline string, parsers []config.TimelineParser) int {
	if d := ExtractDayFromTimeline(timeline, parsers); d != nil {
		return *d
	}
	return DefaultTimelineDays
}
