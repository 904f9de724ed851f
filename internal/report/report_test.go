package report

import (
	"strings"
	"testing"
	"time"

	"github.com/contentaudit/contentaudit/internal/models"
)

func sampleResults() *models.AnalysisResults {
	return &models.AnalysisResults{
		SEO:             models.ScoreResult{Score: 80, Issues: []string{}, Recommendations: []string{}},
		SERP:            models.ScoreResult{Score: 70, Issues: []string{}, Recommendations: []string{}, PredictedRank: "Page 2 or lower"},
		AEO:             models.ScoreResult{Score: 60, Issues: []string{"No FAQ-style phrasing found"}, Recommendations: []string{"Add question-and-answer sections"}},
		Humanization:    models.ScoreResult{Score: 90, Issues: []string{}, Recommendations: []string{}},
		Differentiation: models.ScoreResult{Score: 50, Issues: []string{}, Recommendations: []string{}},
		Timestamp:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		TargetKeyword:   "cold brew",
	}
}

func TestOverallScoreWithoutEngagement(t *testing.T) {
	// (80 + 70 + 60 + 90 + 50) / 5 = 70
	if got := OverallScore(sampleResults()); got != 70 {
		t.Errorf("expected 70, got %d", got)
	}
}

func TestOverallScoreWithEngagement(t *testing.T) {
	results := sampleResults()
	results.Engagement = &models.ScoreResult{Score: 100}

	// (80 + 70 + 60 + 90 + 50 + 100) / 6 = 75
	if got := OverallScore(results); got != 75 {
		t.Errorf("expected 75, got %d", got)
	}
}

func TestRenderSectionOrder(t *testing.T) {
	results := sampleResults()
	results.Engagement = &models.ScoreResult{Score: 65}

	out := Render(results)

	order := []string{"SEO:", "SERP Competitiveness:", "AEO:", "Humanization:", "Differentiation:", "Engagement:"}
	last := -1
	for _, name := range order {
		idx := strings.Index(out, name)
		if idx < 0 {
			t.Fatalf("section %q missing from report", name)
		}
		if idx < last {
			t.Errorf("section %q out of order", name)
		}
		last = idx
	}
}

func TestRenderContents(t *testing.T) {
	out := Render(sampleResults())

	for _, want := range []string{
		"CONTENT QUALITY REPORT",
		"Generated: 2025-03-01 12:00:00 UTC",
		"Target keyword: cold brew",
		"Overall score: 70/100",
		"Predicted rank: Page 2 or lower",
		"! No FAQ-style phrasing found",
		"> Add question-and-answer sections",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if strings.Contains(out, "Engagement:") {
		t.Error("engagement section should be omitted when absent")
	}
}
