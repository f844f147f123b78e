package summarize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	linkingVerb   = regexp.MustCompile(`\b(?:is|are|was|were|will|should|must|can)\b`)
	digitPattern  = regexp.MustCompile(`\d`)
)

// scoredSentence keeps the original index so selected sentences can be
// reassembled in document order.
type scoredSentence struct {
	text  string
	index int
	score float64
}

// cleanWhitespace collapses whitespace runs and trims the ends.
func cleanWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// splitSentences splits cleaned text on sentence-terminal punctuation
// followed by whitespace, keeping the punctuation with its sentence.
// Sentences shorter than minLen are dropped as noise.
func splitSentences(text string, minLen int) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		// Consume a run of terminal punctuation ("..." , "?!").
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}
		if end+1 < len(runes) && runes[end+1] != ' ' {
			i = end
			continue
		}
		s := strings.TrimSpace(string(runes[start : end+1]))
		if len(s) >= minLen {
			sentences = append(sentences, s)
		}
		start = end + 2
		i = end + 1
	}
	if start < len(runes) {
		s := strings.TrimSpace(string(runes[start:]))
		if len(s) >= minLen {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// scoreSentences scores every sentence. Work proceeds in fixed-size batches
// purely for memory locality on large documents; batch boundaries never
// change a score.
func (s *Summarizer) scoreSentences(sentences []string) []scoredSentence {
	scored := make([]scoredSentence, len(sentences))
	n := len(sentences)
	for batchStart := 0; batchStart < n; batchStart += s.opts.BatchSize {
		batchEnd := batchStart + s.opts.BatchSize
		if batchEnd > n {
			batchEnd = n
		}
		for i := batchStart; i < batchEnd; i++ {
			scored[i] = scoredSentence{
				text:  sentences[i],
				index: i,
				score: s.scoreSentence(sentences[i], i, n),
			}
		}
	}
	return scored
}

// scoreSentence combines position, length, keyword, and structural signals.
func (s *Summarizer) scoreSentence(sentence string, index, total int) float64 {
	var score float64

	// Lead/conclusion bias: documents front- and back-load their important
	// statements.
	pos := 0.0
	if total > 1 {
		pos = float64(index) / float64(total-1)
	}
	switch {
	case pos <= 0.2 || pos >= 0.8:
		score += 3
	case pos <= 0.4 || pos >= 0.6:
		score += 2
	default:
		score += 1
	}

	switch length := len(sentence); {
	case length >= 50 && length <= 150:
		score += 3
	case length >= 30 && length <= 200:
		score += 2
	default:
		score += 1
	}

	lower := strings.ToLower(sentence)
	matches := 0
	for _, kw := range s.opts.Keywords {
		if strings.Contains(lower, kw) {
			matches++
			if matches >= maxKeywordMatches {
				break
			}
		}
	}
	kwScore := float64(matches) * keywordMultiplier
	if kwScore > keywordCap {
		kwScore = keywordCap
	}
	score += kwScore

	if linkingVerb.MatchString(lower) {
		score += 2
	}
	if digitPattern.MatchString(sentence) {
		score += 1
	}
	if strings.ContainsAny(sentence, ":-") {
		score += 1
	}

	return score
}
