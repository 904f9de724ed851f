package analyzer

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/textmetrics"
)

var (
	h1Re           = regexp.MustCompile(`(?m)^#\s+`)
	h2Re           = regexp.MustCompile(`(?m)^##\s+`)
	markdownLinkRe = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
)

// AnalyzeSEO scores traditional search optimization signals: keyword
// density, readability, heading structure, length and linking.
func AnalyzeSEO(content string) models.ScoreResult {
	keyword, density := textmetrics.KeywordDensity(content)
	readability := textmetrics.Readability(content)
	wordCount := textmetrics.WordCount(content)
	h1Count := len(h1Re.FindAllString(content, -1))
	h2Count := len(h2Re.FindAllString(content, -1))
	linkCount := len(markdownLinkRe.FindAllString(content, -1))

	checks := []check{
		{
			failed:         density < 1.0 || density > 2.5,
			penalty:        15,
			issue:          "Keyword density is outside the optimal 1-2.5% range",
			recommendation: "Adjust how often the primary keyword appears so it lands between 1% and 2.5% of total words",
		},
		{
			failed:         readability < 60,
			penalty:        10,
			issue:          "Readability is below the comfortable-reading threshold",
			recommendation: "Shorten sentences and prefer plain words to raise the readability score above 60",
		},
		{
			failed:         h1Count == 0,
			penalty:        15,
			issue:          "No H1 heading found",
			recommendation: "Add a single top-level heading that states the page topic",
		},
		{
			failed:         h2Count < 2,
			penalty:        10,
			issue:          "Fewer than two H2 section headings",
			recommendation: "Break the content into sections with descriptive H2 headings",
		},
		{
			failed:         wordCount < 300,
			penalty:        20,
			issue:          "Content is shorter than 300 words",
			recommendation: "Expand the content; thin pages rarely rank for competitive terms",
		},
		{
			failed:         linkCount < 2,
			penalty:        10,
			issue:          "Fewer than two links in the content",
			recommendation: "Link to at least two relevant internal or authoritative external pages",
		},
	}

	result := scoreChecks(checks)
	result.Metrics = map[string]string{
		"keyword_density":   fmt.Sprintf("%.2f%%", density),
		"readability_score": fmt.Sprintf("%.1f", readability),
		"word_count":        strconv.Itoa(wordCount),
		"primary_keyword":   keyword,
	}
	return result
}
