package analyzer

import (
	"context"
	"regexp"

	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/textmetrics"
)

// SERP fallback result, returned verbatim whenever the external call fails.
const (
	SERPFallbackIssue          = "Unable to perform full SERP analysis"
	serpFallbackRecommendation = "Verify the AI service configuration and try again"
	RankUnknown                = "Unknown"

	rankContender = "Top 10 contender"
	rankLongTail  = "Page 2 or lower"
)

const (
	serpSystem = "You are a search results analyst. You assess how competitive a piece of content is against current top-ranking pages."
	serpTask   = "Name the single competitive weakness most likely to keep this content off the first page of search results."
)

var (
	// Statistics pattern mirrors the shape of cited figures: percentages
	// or large numbers followed by a unit.
	statisticRe = regexp.MustCompile(`\b\d+(?:\.\d+)?%|\b\d+(?:,\d{3})*(?:\.\d+)?\s+(?:million|billion|thousand|percent)\b`)
	citationRe  = regexp.MustCompile(`(?i)(according to|research shows|studies show|a study|source:|as reported by)`)
)

// AnalyzeSERP scores competitiveness on search results pages, combining
// local depth heuristics with one AI-generated commentary pair. If the
// external call fails the analyzer degrades to a fixed fallback result
// instead of propagating the error.
func AnalyzeSERP(ctx context.Context, content string, ai Commentator) models.ScoreResult {
	commentary, err := ai.Commentary(ctx, serpSystem, serpTask, content)
	if err != nil {
		return models.ScoreResult{
			Score:           50,
			Issues:          []string{SERPFallbackIssue},
			Recommendations: []string{serpFallbackRecommendation},
			PredictedRank:   RankUnknown,
		}
	}

	wordCount := textmetrics.WordCount(content)

	checks := []check{
		{
			failed:         wordCount < 1000,
			penalty:        20,
			issue:          "Content is under 1000 words",
			recommendation: "Top-ranking pages for competitive queries usually run much longer; deepen the coverage",
		},
		{
			failed:         !statisticRe.MatchString(content),
			penalty:        15,
			issue:          "No numeric statistics cited",
			recommendation: "Back claims with concrete figures; pages with data earn links and rank better",
		},
		{
			failed:         !citationRe.MatchString(content),
			penalty:        10,
			issue:          "No source citations found",
			recommendation: "Attribute claims to named sources to build topical authority",
		},
	}

	result := scoreChecks(checks)
	result.Issues = append(result.Issues, commentary)
	if len(result.Recommendations) < maxRecommendations {
		result.Recommendations = append(result.Recommendations, "Address the competitive gap identified above")
	}

	if wordCount >= 1500 {
		result.PredictedRank = rankContender
	} else {
		result.PredictedRank = rankLongTail
	}
	return result
}
