package summarize

// DefaultImportanceKeywords mark sentences likely to carry the document's
// main statements. Matched case-insensitively as substrings.
var DefaultImportanceKeywords = []string{
	"important", "key", "critical", "essential", "main", "primary",
	"significant", "must", "should", "goal", "objective", "purpose",
	"summary", "conclusion", "result", "require", "feature", "overview",
}

// Summarizer tuning thresholds.
const (
	// DefaultTargetLength bounds the summary in characters.
	DefaultTargetLength = 1500
	// MinTargetLength is the smallest usable target. Below it the ellipsis
	// marker and the quick-mode word budget stop fitting, so smaller
	// configured values are clamped up.
	MinTargetLength = 10
	// DefaultQuickModeChars is the input size above which sentence scoring
	// is skipped entirely in favor of word truncation.
	DefaultQuickModeChars = 10000
	// DefaultMaxSentences caps how many sentences full scoring will handle
	// before falling back to quick mode.
	DefaultMaxSentences = 200
	// DefaultMinSentenceLength filters out fragments and headers.
	DefaultMinSentenceLength = 20
	// DefaultBatchSize chunks sentence scoring; batches have no semantic
	// effect, scores are identical to unbatched scoring.
	DefaultBatchSize = 50
	// DefaultCacheSize is the LRU capacity in entries.
	DefaultCacheSize = 128

	// avgWordLen drives the quick-mode word budget (target/avgWordLen words).
	avgWordLen = 5
	// avgSentenceLen drives the candidate over-fetch (target/avgSentenceLen).
	avgSentenceLen = 50

	keywordMultiplier = 2.0
	keywordCap        = 6.0
	maxKeywordMatches = 5

	ellipsis = "..."
)
