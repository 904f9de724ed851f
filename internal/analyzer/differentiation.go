package analyzer

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/contentaudit/contentaudit/internal/models"
)

const (
	DifferentiationFallbackIssue = "Unable to perform full differentiation analysis"
	diffFallbackRecommendation   = "Verify the AI service configuration and try again"
)

const (
	diffSystem = "You are a content strategist. You judge whether a piece of content offers anything competitors do not."
	diffTask   = "Point out the one way this content is most interchangeable with generic competitor content on the same topic."
)

var (
	exampleRe   = regexp.MustCompile(`(?i)(for example|for instance|case study|real[- ]world|e\.g\.)`)
	discoveryRe = regexp.MustCompile(`(?i)\b(?:we|i)\s+(?:found|discovered|tested|learned|noticed|measured)\b`)
	opinionRe   = regexp.MustCompile(`(?i)(i think|i believe|in my opinion|we believe|in our experience|arguably)`)
)

// AnalyzeDifferentiation scores content uniqueness: original examples,
// firsthand findings, stated opinions and freshness, combined with one
// AI-generated commentary pair. On external-call failure it degrades to a
// fixed fallback result.
func AnalyzeDifferentiation(ctx context.Context, content string, ai Commentator) models.ScoreResult {
	commentary, err := ai.Commentary(ctx, diffSystem, diffTask, content)
	if err != nil {
		return models.ScoreResult{
			Score:           60,
			Issues:          []string{DifferentiationFallbackIssue},
			Recommendations: []string{diffFallbackRecommendation},
		}
	}

	currentYear := strconv.Itoa(time.Now().Year())

	checks := []check{
		{
			failed:         !exampleRe.MatchString(content),
			penalty:        20,
			issue:          "No examples or case studies",
			recommendation: "Add concrete examples or a case study; generic advice is what everyone else publishes",
		},
		{
			failed:         !discoveryRe.MatchString(content),
			penalty:        15,
			issue:          "No firsthand findings",
			recommendation: "Share what you found or tested yourself; original research cannot be copied",
		},
		{
			failed:         !opinionRe.MatchString(content),
			penalty:        15,
			issue:          "No stated opinions",
			recommendation: "Take a position; a clear point of view separates you from aggregated summaries",
		},
		{
			failed:         !strings.Contains(content, currentYear),
			penalty:        10,
			issue:          "No reference to the current year",
			recommendation: "Signal freshness by anchoring the content in the current year",
		},
	}

	result := scoreChecks(checks)
	result.Issues = append(result.Issues, commentary)
	if len(result.Recommendations) < maxRecommendations {
		result.Recommendations = append(result.Recommendations, "Differentiate along the angle noted above")
	}
	return result
}
