package models

import "time"

// ScoreResult is the per-dimension output of one analyzer.
type ScoreResult struct {
	// Score is clamped to [0, 100].
	Score int `json:"score"`

	// Issues lists failed rule checks in evaluation order.
	Issues []string `json:"issues"`

	// Recommendations carries one entry per failed check, capped at 5.
	Recommendations []string `json:"recommendations"`

	// Metrics holds formatted derived statistics, present only for
	// analyzers that expose them (SEO, Humanization, Engagement).
	Metrics map[string]string `json:"metrics,omitempty"`

	// PredictedRank is set only by the SERP analyzer.
	PredictedRank string `json:"predicted_rank,omitempty"`
}

// AnalysisResults is the aggregate record for one analysis run. It is
// written once by the aggregator and never mutated afterwards.
type AnalysisResults struct {
	SEO             ScoreResult  `json:"seo"`
	SERP            ScoreResult  `json:"serp"`
	AEO             ScoreResult  `json:"aeo"`
	Humanization    ScoreResult  `json:"humanization"`
	Differentiation ScoreResult  `json:"differentiation"`
	Engagement      *ScoreResult `json:"engagement,omitempty"`

	Timestamp     time.Time `json:"timestamp"`
	TargetKeyword string    `json:"target_keyword,omitempty"`

	// Extended sections. Populated when present; they never participate
	// in overall scoring.
	SERPAnalysis        *SERPAnalysis        `json:"serp_analysis,omitempty"`
	AIDetection         *AIDetection         `json:"ai_detection,omitempty"`
	GapAnalysis         *GapAnalysis         `json:"gap_analysis,omitempty"`
	SnippetOptimization *SnippetOptimization `json:"snippet_optimization,omitempty"`
}

// Competitor is one projected SERP competitor entry.
type Competitor struct {
	Position  int    `json:"position"`
	Title     string `json:"title"`
	WordCount int    `json:"word_count"`
	Strength  string `json:"strength"` // strong, moderate, comparable
}

// SERPAnalysis projects how the content compares against typical
// top-ranking competitors.
type SERPAnalysis struct {
	Competitors []Competitor `json:"competitors"`
	Comparison  string       `json:"comparison"`
}

// ContentSegment is one paragraph-level slice of the AI-detection breakdown.
type ContentSegment struct {
	Excerpt    string   `json:"excerpt"`
	Likelihood string   `json:"likelihood"` // likely, possible, unlikely
	Signals    []string `json:"signals"`
}

// AIDetection breaks the content into segments with per-segment
// AI-likelihood labels and an overall human score.
type AIDetection struct {
	HumanScore float64          `json:"human_score"` // 0-100, higher is more human
	Segments   []ContentSegment `json:"segments"`
}

// GapAnalysis lists content elements missing relative to well-rounded
// competitor content.
type GapAnalysis struct {
	MissingElements []string `json:"missing_elements"`
	Suggestions     []string `json:"suggestions"`
}

// SnippetOptimization assesses featured-snippet readiness.
type SnippetOptimization struct {
	Ready       bool     `json:"ready"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}
