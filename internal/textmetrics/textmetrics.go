// Package textmetrics provides the deterministic text parsing primitives
// shared by every analyzer. All functions are pure and total: empty input
// yields zero values, and ratio helpers return 0 instead of dividing by zero.
package textmetrics

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const minFrequencyWordLen = 5

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s]`)
	sentenceRe  = regexp.MustCompile(`[.!?]+`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
)

// Words splits text on whitespace. Used for word counting.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of whitespace-separated words.
func WordCount(text string) int {
	return len(Words(text))
}

// FrequencyWords extracts case-folded words for frequency analysis.
// Punctuation is stripped and words shorter than 5 characters are excluded,
// so that frequency tables reflect topical terms rather than stopwords.
func FrequencyWords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) >= minFrequencyWordLen {
			words = append(words, w)
		}
	}
	return words
}

// WordFrequencies builds a frequency table over FrequencyWords.
func WordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range FrequencyWords(text) {
		freq[w]++
	}
	return freq
}

// TopWord returns the most frequent word of 5+ characters and its count.
// Ties break alphabetically so results are stable. Returns ("", 0) when the
// text has no qualifying words.
func TopWord(text string) (string, int) {
	freq := WordFrequencies(text)
	if len(freq) == 0 {
		return "", 0
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Strings(words)

	top, best := "", 0
	for _, w := range words {
		if freq[w] > best {
			top, best = w, freq[w]
		}
	}
	return top, best
}

// KeywordDensity returns the primary keyword (most frequent 5+ char word)
// and its density as a percentage of total words. Empty text yields ("", 0).
func KeywordDensity(text string) (string, float64) {
	total := WordCount(text)
	if total == 0 {
		return "", 0
	}
	keyword, count := TopWord(text)
	if keyword == "" {
		return "", 0
	}
	return keyword, float64(count) / float64(total) * 100
}

// Sentences splits text on terminal punctuation, discarding empty results.
func Sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	var sentences []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// Paragraphs splits text on blank-line runs, discarding empty results.
func Paragraphs(text string) []string {
	parts := paragraphRe.Split(text, -1)
	var paragraphs []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	return paragraphs
}

// SentenceLengths returns the word count of each sentence.
func SentenceLengths(text string) []int {
	sentences := Sentences(text)
	lengths := make([]int, len(sentences))
	for i, s := range sentences {
		lengths[i] = len(strings.Fields(s))
	}
	return lengths
}

// SentenceLengthStdDev computes the population standard deviation of
// sentence lengths. Fewer than two sentences yields 0.
func SentenceLengthStdDev(text string) float64 {
	lengths := SentenceLengths(text)
	if len(lengths) < 2 {
		return 0
	}

	sum := 0
	for _, l := range lengths {
		sum += l
	}
	mean := float64(sum) / float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		d := float64(l) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))

	return math.Sqrt(variance)
}

// AvgWordsPerSentence returns words per sentence, or 0 for empty text.
func AvgWordsPerSentence(text string) float64 {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	return float64(WordCount(text)) / float64(len(sentences))
}

// Readability computes a Flesch-style reading ease estimate from average
// sentence length. Empty text yields 0 rather than the formula's intercept.
func Readability(text string) float64 {
	if WordCount(text) == 0 || len(Sentences(text)) == 0 {
		return 0
	}
	score := 206.835 - 1.015*AvgWordsPerSentence(text)
	return math.Round(score*100) / 100
}

// AvgParagraphChars returns the mean paragraph length in characters.
func AvgParagraphChars(text string) float64 {
	paragraphs := Paragraphs(text)
	if len(paragraphs) == 0 {
		return 0
	}
	total := 0
	for _, p := range paragraphs {
		total += len(p)
	}
	return float64(total) / float64(len(paragraphs))
}

// ReadingTimeMinutes estimates reading time at 200 words per minute.
func ReadingTimeMinutes(wordCount int) int {
	return int(math.Ceil(float64(wordCount) / 200))
}
