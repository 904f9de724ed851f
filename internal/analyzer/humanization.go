package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/textmetrics"
)

var (
	passiveRe = regexp.MustCompile(`(?i)\b(?:is|are|was|were|been|being|be)\s+\w+(?:ed|en)\b`)
	pronounRe = regexp.MustCompile(`(?i)\b(?:i|we|you|my|our|me|us|your)\b`)
	starterRe = regexp.MustCompile(`^\W*(\w+)`)
)

// aiCliches are stock phrases that read as machine-generated when several
// appear together.
var aiCliches = []string{
	"delve into",
	"in today's fast-paced world",
	"important to note",
	"in conclusion",
}

// AnalyzeHumanization estimates how human-written the text sounds: sentence
// rhythm, repeated openers, passive voice, stock AI phrases and personal
// pronouns.
func AnalyzeHumanization(content string) models.ScoreResult {
	stdDev := textmetrics.SentenceLengthStdDev(content)
	sentences := textmetrics.Sentences(content)
	passivePct := passiveSentencePercent(sentences)
	clicheCount := countCliches(content)
	pronounCount := len(pronounRe.FindAllString(content, -1))

	checks := []check{
		{
			failed:         stdDev < 5,
			penalty:        20,
			issue:          "Sentence lengths are monotonous",
			recommendation: "Vary sentence length; mix short punchy sentences with longer explanatory ones",
		},
		{
			failed:         dominantStarterShare(sentences) > 0.20,
			penalty:        15,
			issue:          "Repetitive sentence starters",
			recommendation: "Rewrite sentence openings; no single word should start more than a fifth of your sentences",
		},
		{
			failed:         passivePct > 20,
			penalty:        15,
			issue:          "Passive voice appears in more than 20% of sentences",
			recommendation: "Rewrite passive constructions in active voice to sound more direct",
		},
		{
			failed:         clicheCount > 2,
			penalty:        10,
			issue:          "Multiple stock AI phrases detected",
			recommendation: "Replace boilerplate phrases with specific, concrete language",
		},
		{
			failed:         pronounCount < 5,
			penalty:        10,
			issue:          "Few personal pronouns",
			recommendation: "Write to the reader and from your own perspective; impersonal prose reads as generated",
		},
	}

	result := scoreChecks(checks)
	result.Metrics = map[string]string{
		"sentence_stddev": fmt.Sprintf("%.1f", stdDev),
		"passive_voice":   fmt.Sprintf("%.1f%%", passivePct),
	}
	return result
}

// dominantStarterShare returns the share of sentences opened by the most
// common starter word. Zero sentences yields 0.
func dominantStarterShare(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	starters := make(map[string]int)
	max := 0
	for _, s := range sentences {
		m := starterRe.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		w := strings.ToLower(m[1])
		starters[w]++
		if starters[w] > max {
			max = starters[w]
		}
	}

	return float64(max) / float64(len(sentences))
}

func passiveSentencePercent(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	passive := 0
	for _, s := range sentences {
		if passiveRe.MatchString(s) {
			passive++
		}
	}
	return float64(passive) / float64(len(sentences)) * 100
}

func countCliches(content string) int {
	lower := strings.ToLower(content)
	count := 0
	for _, phrase := range aiCliches {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	return count
}
