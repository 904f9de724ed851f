// Package report turns analysis results into an overall score and a
// plain-text report suitable for terminal output or email.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/contentaudit/contentaudit/internal/models"
)

// section pairs a display name with one dimension's result.
type section struct {
	name   string
	result models.ScoreResult
}

// sections returns the report dimensions in display order. The engagement
// dimension is optional and omitted when absent.
func sections(results *models.AnalysisResults) []section {
	s := []section{
		{"SEO", results.SEO},
		{"SERP Competitiveness", results.SERP},
		{"AEO", results.AEO},
		{"Humanization", results.Humanization},
		{"Differentiation", results.Differentiation},
	}
	if results.Engagement != nil {
		s = append(s, section{"Engagement", *results.Engagement})
	}
	return s
}

// OverallScore is the unweighted mean of all present dimension scores,
// rounded to the nearest integer.
func OverallScore(results *models.AnalysisResults) int {
	all := sections(results)
	sum := 0
	for _, s := range all {
		sum += s.result.Score
	}
	return int(math.Round(float64(sum) / float64(len(all))))
}

// Render writes the full plain-text report.
func Render(results *models.AnalysisResults) string {
	var b strings.Builder

	b.WriteString("CONTENT QUALITY REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", results.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	if results.TargetKeyword != "" {
		fmt.Fprintf(&b, "Target keyword: %s\n", results.TargetKeyword)
	}
	fmt.Fprintf(&b, "Overall score: %d/100\n", OverallScore(results))

	for _, s := range sections(results) {
		b.WriteString("\n")
		renderSection(&b, s)
	}

	return b.String()
}

func renderSection(b *strings.Builder, s section) {
	fmt.Fprintf(b, "%s: %d/100\n", s.name, s.result.Score)
	if s.result.PredictedRank != "" {
		fmt.Fprintf(b, "  Predicted rank: %s\n", s.result.PredictedRank)
	}

	if len(s.result.Metrics) > 0 {
		keys := make([]string, 0, len(s.result.Metrics))
		for k := range s.result.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, "  %s: %s\n", k, s.result.Metrics[k])
		}
	}

	for _, issue := range s.result.Issues {
		fmt.Fprintf(b, "  ! %s\n", issue)
	}
	for _, rec := range s.result.Recommendations {
		fmt.Fprintf(b, "  > %s\n", rec)
	}
}
