// Package aggregator fans content out to every analyzer and merges the
// results into a single AnalysisResults record.
package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/contentaudit/contentaudit/internal/analyzer"
	"github.com/contentaudit/contentaudit/internal/metrics"
	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/pkg/tracing"
)

// Request carries one piece of content through an analysis run.
type Request struct {
	Content       string
	TargetKeyword string
}

// Aggregator owns the analyzer fan-out. It is the sole writer of
// AnalysisResults; analyzers never see each other's output.
type Aggregator struct {
	ai      analyzer.Commentator
	logger  *slog.Logger
	metrics *metrics.AnalysisMetrics
}

// New creates an aggregator. ai may be nil when no AI backend is
// configured; callers must check Configured before Analyze.
func New(ai analyzer.Commentator, m *metrics.AnalysisMetrics) *Aggregator {
	return &Aggregator{
		ai:      ai,
		logger:  slog.Default(),
		metrics: m,
	}
}

// Configured reports whether an AI backend is available. Analysis cannot
// run without one; the AI-assisted analyzers own their per-call degradation
// but a missing backend is a configuration error.
func (a *Aggregator) Configured() bool {
	return a.ai != nil
}

// Analyze runs every analyzer against the content and merges the results.
// The four synchronous analyzers run inline; the two AI-assisted analyzers
// run concurrently since each blocks on an external call.
func (a *Aggregator) Analyze(ctx context.Context, req Request) *models.AnalysisResults {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "aggregator.Analyze")
	defer span.End()

	results := &models.AnalysisResults{
		Timestamp:     time.Now().UTC(),
		TargetKeyword: req.TargetKeyword,
	}

	results.SEO = analyzer.AnalyzeSEO(req.Content)
	results.AEO = analyzer.AnalyzeAEO(req.Content)
	results.Humanization = analyzer.AnalyzeHumanization(req.Content)
	engagement := analyzer.AnalyzeEngagement(req.Content)
	results.Engagement = &engagement

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results.SERP = analyzer.AnalyzeSERP(ctx, req.Content, a.ai)
	}()
	go func() {
		defer wg.Done()
		results.Differentiation = analyzer.AnalyzeDifferentiation(ctx, req.Content, a.ai)
	}()
	wg.Wait()

	a.recordFallbacks(results)

	results.SERPAnalysis = buildSERPAnalysis(req.Content)
	results.AIDetection = buildAIDetection(req.Content, results.Humanization.Score)
	results.GapAnalysis = buildGapAnalysis(req.Content)
	results.SnippetOptimization = buildSnippetOptimization(req.Content)

	if a.metrics != nil {
		a.metrics.AnalysesTotal.WithLabelValues("ok").Inc()
		a.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}
	a.logger.Info("analysis complete",
		"duration_ms", time.Since(start).Milliseconds(),
		"seo_score", results.SEO.Score,
		"serp_score", results.SERP.Score,
	)

	return results
}

// recordFallbacks counts AI-assisted analyzers that degraded this run.
func (a *Aggregator) recordFallbacks(results *models.AnalysisResults) {
	if a.metrics == nil {
		return
	}
	if hasIssue(results.SERP, analyzer.SERPFallbackIssue) {
		a.metrics.AIFallbacksTotal.WithLabelValues("serp").Inc()
		a.logger.Warn("serp analysis degraded to fallback")
	}
	if hasIssue(results.Differentiation, analyzer.DifferentiationFallbackIssue) {
		a.metrics.AIFallbacksTotal.WithLabelValues("differentiation").Inc()
		a.logger.Warn("differentiation analysis degraded to fallback")
	}
}

func hasIssue(r models.ScoreResult, issue string) bool {
	for _, i := range r.Issues {
		if i == issue {
			return true
		}
	}
	return false
}
