package aggregator

import (
	"fmt"

	"github.com/contentaudit/contentaudit/internal/analyzer"
	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/textmetrics"
)

// Competitor projection baseline. Top-ranking pages for contested queries
// cluster well above typical draft length, so the projection never assumes
// competitors thinner than this.
const competitorFloorWords = 800

// buildSERPAnalysis projects a deterministic competitor field from the
// content's own length and summarizes the gap.
func buildSERPAnalysis(content string) *models.SERPAnalysis {
	wc := textmetrics.WordCount(content)

	base := wc
	if base < competitorFloorWords {
		base = competitorFloorWords
	}

	competitors := []models.Competitor{
		{Position: 1, Title: "Comprehensive guide (typical #1 result)", WordCount: base * 2, Strength: "strong"},
		{Position: 2, Title: "In-depth comparison (typical #2 result)", WordCount: base * 3 / 2, Strength: "strong"},
		{Position: 3, Title: "Topic overview (typical #3 result)", WordCount: base * 5 / 4, Strength: "moderate"},
	}

	var comparison string
	switch {
	case wc == 0:
		comparison = "No content to compare against competitors."
	case wc >= competitors[2].WordCount:
		comparison = fmt.Sprintf("At %d words the content matches the depth of typical top-3 results.", wc)
	default:
		comparison = fmt.Sprintf("At %d words the content runs %d words shorter than a typical #3 result.",
			wc, competitors[2].WordCount-wc)
	}

	return &models.SERPAnalysis{Competitors: competitors, Comparison: comparison}
}

// buildAIDetection labels each paragraph with an AI-likelihood from the same
// signals the humanization analyzer scores globally.
func buildAIDetection(content string, humanizationScore int) *models.AIDetection {
	paragraphs := textmetrics.Paragraphs(content)

	segments := make([]models.ContentSegment, 0, len(paragraphs))
	for _, p := range paragraphs {
		signals := []string{}
		if len(textmetrics.Sentences(p)) >= 2 && textmetrics.SentenceLengthStdDev(p) < 5 {
			signals = append(signals, "uniform sentence length")
		}
		if analyzer.CountAICliches(p) > 0 {
			signals = append(signals, "stock AI phrasing")
		}
		if analyzer.PronounCount(p) == 0 {
			signals = append(signals, "no personal pronouns")
		}

		likelihood := "unlikely"
		switch {
		case len(signals) >= 2:
			likelihood = "likely"
		case len(signals) == 1:
			likelihood = "possible"
		}

		segments = append(segments, models.ContentSegment{
			Excerpt:    excerpt(p, 80),
			Likelihood: likelihood,
			Signals:    signals,
		})
	}

	return &models.AIDetection{
		HumanScore: float64(humanizationScore),
		Segments:   segments,
	}
}

// buildGapAnalysis lists well-rounded-content elements the text lacks.
func buildGapAnalysis(content string) *models.GapAnalysis {
	gaps := &models.GapAnalysis{
		MissingElements: []string{},
		Suggestions:     []string{},
	}

	if !analyzer.HasStatistics(content) {
		gaps.MissingElements = append(gaps.MissingElements, "statistics")
		gaps.Suggestions = append(gaps.Suggestions, "Add supporting figures or data points")
	}
	if !analyzer.HasExamples(content) {
		gaps.MissingElements = append(gaps.MissingElements, "examples")
		gaps.Suggestions = append(gaps.Suggestions, "Add concrete examples or case studies")
	}
	if !analyzer.HasFAQ(content) {
		gaps.MissingElements = append(gaps.MissingElements, "faq")
		gaps.Suggestions = append(gaps.Suggestions, "Add a question-and-answer section")
	}

	return gaps
}

// buildSnippetOptimization assesses featured-snippet readiness from
// definition phrasing, list structure and question presence.
func buildSnippetOptimization(content string) *models.SnippetOptimization {
	score := 100
	suggestions := []string{}

	if !analyzer.HasDefinition(content) {
		score -= 40
		suggestions = append(suggestions, "Open with a one-sentence direct answer or definition")
	}
	if analyzer.ListLineCount(content) < 3 {
		score -= 30
		suggestions = append(suggestions, "Structure enumerable points as a list; list snippets are lifted verbatim")
	}
	if !analyzer.HasFAQ(content) {
		score -= 30
		suggestions = append(suggestions, "Pose the target question explicitly in a heading")
	}
	if score < 0 {
		score = 0
	}

	return &models.SnippetOptimization{
		Ready:       score >= 70,
		Score:       score,
		Suggestions: suggestions,
	}
}

// excerpt returns the first n runes of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
