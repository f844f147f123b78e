// Package summarize compresses long documents into bounded-length extractive
// summaries by scoring sentences and keeping the best under a character
// budget. Results are memoized in a bounded LRU keyed by a content hash, so
// re-submitting the same document never rescans it.
package summarize

import (
	"math"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zeebo/blake3"
)

// Options tunes a Summarizer. The zero value takes every default.
type Options struct {
	TargetLength      int
	QuickModeChars    int
	MaxSentences      int
	MinSentenceLength int
	BatchSize         int
	CacheSize         int
	Keywords          []string
}

func (o Options) withDefaults() Options {
	if o.TargetLength <= 0 {
		o.TargetLength = DefaultTargetLength
	} else if o.TargetLength < MinTargetLength {
		o.TargetLength = MinTargetLength
	}
	if o.QuickModeChars <= 0 {
		o.QuickModeChars = DefaultQuickModeChars
	}
	if o.MaxSentences <= 0 {
		o.MaxSentences = DefaultMaxSentences
	}
	if o.MinSentenceLength <= 0 {
		o.MinSentenceLength = DefaultMinSentenceLength
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
	if o.CacheSize <= 0 {
		o.CacheSize = DefaultCacheSize
	}
	if o.Keywords == nil {
		o.Keywords = DefaultImportanceKeywords
	}
	return o
}

// CacheStats reports summary cache occupancy. MemoryUsage is the historical
// rough estimate (entries * 100), kept for operational continuity.
type CacheStats struct {
	Size        int `json:"size"`
	MemoryUsage int `json:"memoryUsage"`
}

// Summarizer is safe for concurrent use: the algorithm is pure and the LRU
// handles its own locking. A race on identical inputs at worst recomputes
// the same summary, since cache writes are idempotent.
type Summarizer struct {
	opts  Options
	cache *lru.Cache[[32]byte, string]
}

// New creates a Summarizer with the given options.
func New(opts Options) *Summarizer {
	opts = opts.withDefaults()
	// lru.New only fails for a non-positive size, which withDefaults rules out.
	cache, _ := lru.New[[32]byte, string](opts.CacheSize)
	return &Summarizer{opts: opts, cache: cache}
}

// Summarize reduces text to at most the configured target length. Inputs
// already within the budget are returned unchanged. Never fails: any input
// degrades to the input itself or a truncation of it.
func (s *Summarizer) Summarize(text string) string {
	if text == "" || len(text) <= s.opts.TargetLength {
		return text
	}

	key := blake3.Sum256([]byte(text))
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	var summary string
	if len(text) > s.opts.QuickModeChars {
		summary = s.quickSummarize(text)
	} else {
		summary = s.fullSummarize(text)
	}

	s.cache.Add(key, summary)
	return summary
}

// CacheStats returns current cache occupancy.
func (s *Summarizer) CacheStats() CacheStats {
	n := s.cache.Len()
	return CacheStats{Size: n, MemoryUsage: n * 100}
}

// ClearCache drops all memoized summaries.
func (s *Summarizer) ClearCache() {
	s.cache.Purge()
}

// quickSummarize is the latency-bounding fallback for pathologically large
// inputs: keep the first targetLength/5 words (average word length
// heuristic) and mark the cut with an ellipsis.
func (s *Summarizer) quickSummarize(text string) string {
	words := strings.Fields(text)
	budget := s.opts.TargetLength / avgWordLen
	if len(words) > budget {
		words = words[:budget]
	}
	return s.truncate(strings.Join(words, " ") + ellipsis)
}

func (s *Summarizer) fullSummarize(text string) string {
	cleaned := cleanWhitespace(text)
	sentences := splitSentences(cleaned, s.opts.MinSentenceLength)
	if len(sentences) == 0 {
		return s.truncate(cleaned)
	}
	// Too many sentences to score cheaply: same bound as the size check.
	if len(sentences) > s.opts.MaxSentences {
		return s.quickSummarize(text)
	}

	scored := s.scoreSentences(sentences)
	selected := s.selectSentences(scored)

	// Reassemble in original document order so the summary reads coherently
	// rather than ranked by importance.
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].index < selected[j].index
	})
	parts := make([]string, len(selected))
	for i, sel := range selected {
		parts[i] = sel.text
	}
	return s.truncate(strings.Join(parts, " "))
}

// selectSentences greedily accepts the highest-scoring candidates while the
// running character budget (including one joiner per extra sentence) stays
// within the target. Selection stops at the first overflow; there is no
// look-ahead packing.
func (s *Summarizer) selectSentences(scored []scoredSentence) []scoredSentence {
	ranked := make([]scoredSentence, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	// Generous over-fetch assuming ~50 chars per sentence.
	limit := int(math.Ceil(float64(s.opts.TargetLength) / avgSentenceLen))
	if limit > len(ranked) {
		limit = len(ranked)
	}
	ranked = ranked[:limit]

	var selected []scoredSentence
	budget := 0
	for _, cand := range ranked {
		cost := len(cand.text)
		if len(selected) > 0 {
			cost++ // joiner
		}
		if budget+cost > s.opts.TargetLength {
			break
		}
		budget += cost
		selected = append(selected, cand)
	}
	return selected
}

// truncate enforces the hard length bound, marking any cut with an ellipsis.
func (s *Summarizer) truncate(out string) string {
	if len(out) <= s.opts.TargetLength {
		return out
	}
	return out[:s.opts.TargetLength-len(ellipsis)] + ellipsis
}
