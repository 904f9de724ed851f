// Package analyzer implements the six content-quality scoring dimensions.
// Each analyzer evaluates an ordered list of independent rule checks against
// the raw text: every failing check subtracts a fixed penalty from a starting
// score of 100 and contributes one issue and one recommendation. Check order
// is part of the contract because recommendations are truncated to five.
package analyzer

import (
	"context"

	"github.com/contentaudit/contentaudit/internal/models"
)

const maxRecommendations = 5

// Commentator produces a single AI-generated commentary string for a task.
// The SERP and Differentiation analyzers fold its output into their results
// and substitute a fixed fallback when it errors.
type Commentator interface {
	Commentary(ctx context.Context, system, task, content string) (string, error)
}

// check is one rule evaluation: a failed check contributes its penalty,
// issue and recommendation to the result.
type check struct {
	failed         bool
	penalty        int
	issue          string
	recommendation string
}

// scoreChecks folds an ordered list of rule evaluations into a ScoreResult.
// The score is floored at 0 and recommendations keep only the first five
// failures in evaluation order.
func scoreChecks(checks []check) models.ScoreResult {
	score := 100
	issues := []string{}
	recommendations := []string{}

	for _, c := range checks {
		if !c.failed {
			continue
		}
		score -= c.penalty
		issues = append(issues, c.issue)
		if len(recommendations) < maxRecommendations {
			recommendations = append(recommendations, c.recommendation)
		}
	}

	if score < 0 {
		score = 0
	}

	return models.ScoreResult{
		Score:           score,
		Issues:          issues,
		Recommendations: recommendations,
	}
}
