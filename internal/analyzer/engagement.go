package analyzer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/textmetrics"
)

var (
	headingRe      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	secondPersonRe = regexp.MustCompile(`(?i)\byours?\b|\byou\b`)
)

// AnalyzeEngagement estimates how likely readers are to stay with the
// content: reading effort, skimmability and reader interaction.
func AnalyzeEngagement(content string) models.ScoreResult {
	wordCount := textmetrics.WordCount(content)
	readingTime := textmetrics.ReadingTimeMinutes(wordCount)
	avgParagraph := textmetrics.AvgParagraphChars(content)
	secondPerson := len(secondPersonRe.FindAllString(content, -1))

	checks := []check{
		{
			failed:         avgParagraph > 400,
			penalty:        15,
			issue:          "Paragraphs are too dense to skim",
			recommendation: "Keep paragraphs short; walls of text push readers away",
		},
		{
			failed:         strings.Count(content, "?") == 0,
			penalty:        10,
			issue:          "Content never poses a question",
			recommendation: "Ask the reader a question to invite them into the topic",
		},
		{
			failed:         secondPerson < 2,
			penalty:        10,
			issue:          "Content rarely addresses the reader directly",
			recommendation: "Use second person; speaking to the reader keeps them engaged",
		},
	}

	result := scoreChecks(checks)
	result.Metrics = map[string]string{
		"reading_time": fmt.Sprintf("%d min", readingTime),
		"skimmability": skimmability(content),
		"word_count":   strconv.Itoa(wordCount),
	}
	return result
}

// skimmability labels how scannable the content is from its count of
// structural elements (headings and list lines).
func skimmability(content string) string {
	structural := len(headingRe.FindAllString(content, -1)) + len(listLineRe.FindAllString(content, -1))
	switch {
	case structural >= 5:
		return "high"
	case structural >= 2:
		return "medium"
	default:
		return "low"
	}
}
