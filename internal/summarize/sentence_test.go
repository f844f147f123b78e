package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanWhitespace(t *testing.T) {
	got := cleanWhitespace("  First sentence.\n\nSecond\tsentence.   ")
	assert.Equal(t, "First sentence. Second sentence.", got)
}

func TestSplitSentences(t *testing.T) {
	text := "The first sentence is here. A second one follows! Is this the third? Yes: the fourth closes."

	got := splitSentences(text, 10)

	require.Len(t, got, 4)
	assert.Equal(t, "The first sentence is here.", got[0])
	assert.Equal(t, "A second one follows!", got[1])
	assert.Equal(t, "Is this the third?", got[2])
	assert.Equal(t, "Yes: the fourth closes.", got[3])
}

func TestSplitSentences_FiltersFragments(t *testing.T) {
	text := "Ok. This sentence is comfortably long enough to keep. No."

	got := splitSentences(text, 20)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "comfortably long")
}

func TestSplitSentences_KeepsDecimalsTogether(t *testing.T) {
	text := "The budget is 3.5 weeks for this phase of work. The rest follows later on."

	got := splitSentences(text, 10)

	require.Len(t, got, 2)
	assert.Contains(t, got[0], "3.5 weeks")
}

func TestSplitSentences_TrailingSentenceWithoutTerminator(t *testing.T) {
	text := "A complete first sentence sits here. And a trailing fragment without punctuation"

	got := splitSentences(text, 10)

	require.Len(t, got, 2)
	assert.Equal(t, "And a trailing fragment without punctuation", got[1])
}

func TestScoreSentence_PositionBands(t *testing.T) {
	s := New(Options{})
	const total = 100

	lead := s.scoreSentence("Plain sentence body here xyz qqq www eee rrr ttt yyy", 0, total)
	earlyMid := s.scoreSentence("Plain sentence body here xyz qqq www eee rrr ttt yyy", 30, total)
	middle := s.scoreSentence("Plain sentence body here xyz qqq www eee rrr ttt yyy", 50, total)
	tail := s.scoreSentence("Plain sentence body here xyz qqq www eee rrr ttt yyy", 99, total)

	assert.Equal(t, lead, tail, "lead and conclusion bands score alike")
	assert.Greater(t, lead, earlyMid)
	assert.Greater(t, earlyMid, middle)
}

func TestScoreSentence_Signals(t *testing.T) {
	s := New(Options{})

	// Pad every variant to one length so the length band never differs.
	pad := func(text string) string {
		return text + strings.Repeat("x", 60-len(text))
	}

	base := s.scoreSentence(pad("plain words without any signal here"), 50, 100)
	withVerb := s.scoreSentence(pad("plain words that will gain points"), 50, 100)
	withDigit := s.scoreSentence(pad("plain words without any signal 7"), 50, 100)
	withColon := s.scoreSentence(pad("plain words without any signal:"), 50, 100)
	withKeyword := s.scoreSentence(pad("plain words with important signal"), 50, 100)

	assert.Equal(t, base+2, withVerb)
	assert.Equal(t, base+1, withDigit)
	assert.Equal(t, base+1, withColon)
	assert.Equal(t, base+keywordMultiplier, withKeyword)
}

func TestScoreSentence_KeywordCap(t *testing.T) {
	s := New(Options{})

	// Seven distinct keywords stuffed into one sentence; the contribution
	// stops at the cap.
	stuffed := "important key critical essential main primary significant padding padd"
	base := "plain words without any signal in them whatsoever padding paddin extra"
	require.Equal(t, len(base), len(stuffed), "length band must match for a clean comparison")

	diff := s.scoreSentence(stuffed, 50, 100) - s.scoreSentence(base, 50, 100)
	assert.Equal(t, keywordCap, diff)
}

func TestScoreSentences_BatchingHasNoSemanticEffect(t *testing.T) {
	text := sampleDocument(60)
	sentences := splitSentences(cleanWhitespace(text), DefaultMinSentenceLength)
	require.NotEmpty(t, sentences)

	batched := New(Options{BatchSize: 7}).scoreSentences(sentences)
	unbatched := New(Options{BatchSize: len(sentences) + 1}).scoreSentences(sentences)

	assert.Equal(t, unbatched, batched, "batch boundaries must not change scores")
}

func TestSelectSentences_GreedyStopsAtFirstOverflow(t *testing.T) {
	s := New(Options{TargetLength: 100})
	scored := []scoredSentence{
		{text: strings.Repeat("a", 60), index: 0, score: 10},
		{text: strings.Repeat("b", 60), index: 1, score: 9}, // would overflow: stop here
		{text: strings.Repeat("c", 10), index: 2, score: 8}, // never considered
	}

	selected := s.selectSentences(scored)

	require.Len(t, selected, 1)
	assert.Equal(t, 0, selected[0].index)
}
