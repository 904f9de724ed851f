package analyzer

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"
)

// stubCommentator returns a fixed reply or error.
type stubCommentator struct {
	reply string
	err   error
}

func (s *stubCommentator) Commentary(ctx context.Context, system, task, content string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestScoreChecksFold(t *testing.T) {
	checks := []check{
		{failed: true, penalty: 15, issue: "a", recommendation: "ra"},
		{failed: false, penalty: 50, issue: "b", recommendation: "rb"},
		{failed: true, penalty: 10, issue: "c", recommendation: "rc"},
	}

	result := scoreChecks(checks)
	if result.Score != 75 {
		t.Errorf("expected score 75, got %d", result.Score)
	}
	if !reflect.DeepEqual(result.Issues, []string{"a", "c"}) {
		t.Errorf("issues out of order: %v", result.Issues)
	}
	if !reflect.DeepEqual(result.Recommendations, []string{"ra", "rc"}) {
		t.Errorf("recommendations out of order: %v", result.Recommendations)
	}
}

func TestScoreChecksFloorAndCap(t *testing.T) {
	var checks []check
	for i := 0; i < 8; i++ {
		checks = append(checks, check{failed: true, penalty: 20, issue: "issue", recommendation: "rec"})
	}

	result := scoreChecks(checks)
	if result.Score != 0 {
		t.Errorf("score should be floored at 0, got %d", result.Score)
	}
	if len(result.Issues) != 8 {
		t.Errorf("all issues should be kept, got %d", len(result.Issues))
	}
	if len(result.Recommendations) != 5 {
		t.Errorf("recommendations should be capped at 5, got %d", len(result.Recommendations))
	}
}

func TestAnalyzeSEOEmptyContent(t *testing.T) {
	result := AnalyzeSEO("")

	if result.Metrics["word_count"] != "0" {
		t.Errorf("expected word_count 0, got %s", result.Metrics["word_count"])
	}
	if result.Score > 80 {
		t.Errorf("empty content should score at most 80, got %d", result.Score)
	}

	wantIssues := map[string]bool{
		"No H1 heading found":                false,
		"Content is shorter than 300 words":  false,
		"Fewer than two H2 section headings": false,
	}
	for _, issue := range result.Issues {
		if _, ok := wantIssues[issue]; ok {
			wantIssues[issue] = true
		}
	}
	for issue, found := range wantIssues {
		if !found {
			t.Errorf("expected issue %q to be reported", issue)
		}
	}
}

func TestAnalyzeSEOWellFormedContent(t *testing.T) {
	content := buildWellFormedContent()

	result := AnalyzeSEO(content)
	if result.Score < 85 {
		t.Errorf("well-formed content should score at least 85, got %d (issues: %v)", result.Score, result.Issues)
	}
	for _, issue := range result.Issues {
		switch issue {
		case "No H1 heading found", "Content is shorter than 300 words", "Fewer than two links in the content":
			t.Errorf("unexpected issue for well-formed content: %q", issue)
		}
	}
	if result.Metrics["primary_keyword"] != "coffee" {
		t.Errorf("expected primary keyword coffee, got %q", result.Metrics["primary_keyword"])
	}
}

// buildWellFormedContent produces 400+ words with one H1, two H2s, three
// links and a primary keyword density of about 1.4%.
func buildWellFormedContent() string {
	content := "# Coffee guide\n\n## Brew basics\n\n"
	for i := 0; i < 35; i++ {
		content += "It is a cup you can sip at home with joy. "
	}
	for i := 0; i < 5; i++ {
		content += "I sip coffee at dawn. "
	}
	content += "\n\n## Tips\n\n[one](https://a.example) [two](https://b.example) [three](https://c.example)\n"
	return content
}

func TestAnalyzeSEOIdempotent(t *testing.T) {
	content := buildWellFormedContent()
	first := AnalyzeSEO(content)
	second := AnalyzeSEO(content)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input should yield identical output")
	}
}

func TestAnalyzeAEOAllChecksFail(t *testing.T) {
	// One dense paragraph over 500 characters with no FAQ, list, how-to or
	// definition phrasing.
	content := ""
	for i := 0; i < 5; i++ {
		content += "The morning sky glowed over the quiet harbor town while fishermen gathered their nets and sailed beyond the breakwater into open water. "
	}

	result := AnalyzeAEO(content)
	if result.Score > 55 {
		t.Errorf("expected score at most 55, got %d", result.Score)
	}
	if len(result.Recommendations) != 5 {
		t.Errorf("expected exactly 5 recommendations, got %d", len(result.Recommendations))
	}
	if len(result.Issues) != 5 {
		t.Errorf("expected 5 issues, got %d", len(result.Issues))
	}
}

func TestAnalyzeAEOStructuredContent(t *testing.T) {
	content := `## Frequently asked questions

What is cold brew? Cold brew refers to coffee steeped in cold water.

How to make it, step by step:

- Grind the beans coarsely
- Steep for twelve hours
- Strain and serve

Short paragraphs keep this easy to read.`

	result := AnalyzeAEO(content)
	if result.Score != 100 {
		t.Errorf("structured content should pass all checks, got %d (issues: %v)", result.Score, result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Errorf("expected no issues, got %v", result.Issues)
	}
}

func TestAnalyzeHumanizationRepetitiveStarters(t *testing.T) {
	content := "The dog ran. The cat slept. The bird sang a long song today. Rain fell on roofs. Wind blew past. "
	content += "The sun rose over the hills and warmed everything below it for hours. Children played. Shadows moved."

	result := AnalyzeHumanization(content)

	found := false
	for _, issue := range result.Issues {
		if issue == "Repetitive sentence starters" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected repetitive starters issue, got %v", result.Issues)
	}
	if result.Score > 85 {
		t.Errorf("repetitive starters should cost at least 15 points, got %d", result.Score)
	}
}

func TestAnalyzeHumanizationMetrics(t *testing.T) {
	result := AnalyzeHumanization("I wrote this. You can read it whenever you like, my friend.")
	if _, ok := result.Metrics["sentence_stddev"]; !ok {
		t.Error("expected sentence_stddev metric")
	}
	if _, ok := result.Metrics["passive_voice"]; !ok {
		t.Error("expected passive_voice metric")
	}
}

func TestAnalyzeHumanizationEmptyContent(t *testing.T) {
	result := AnalyzeHumanization("")
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("score out of bounds: %d", result.Score)
	}
	if result.Metrics["passive_voice"] != "0.0%" {
		t.Errorf("zero sentences should yield 0.0%% passive voice, got %s", result.Metrics["passive_voice"])
	}
}

func TestAnalyzeEngagementMetrics(t *testing.T) {
	content := "Do you like coffee? You should try it.\n\nShort paragraph here."
	result := AnalyzeEngagement(content)

	if result.Metrics["reading_time"] != "1 min" {
		t.Errorf("expected 1 min reading time, got %s", result.Metrics["reading_time"])
	}
	if result.Metrics["skimmability"] == "" {
		t.Error("expected skimmability label")
	}
	for _, issue := range result.Issues {
		if issue == "Content never poses a question" {
			t.Error("question check should pass for content with a question")
		}
	}
}

func TestAnalyzeSERPFallback(t *testing.T) {
	ai := &stubCommentator{err: errors.New("connection refused")}
	result := AnalyzeSERP(context.Background(), "some content", ai)

	if result.Score != 50 {
		t.Errorf("fallback score should be exactly 50, got %d", result.Score)
	}
	if result.PredictedRank != RankUnknown {
		t.Errorf("fallback rank should be Unknown, got %q", result.PredictedRank)
	}
	if !reflect.DeepEqual(result.Issues, []string{SERPFallbackIssue}) {
		t.Errorf("fallback issues should be exactly [%q], got %v", SERPFallbackIssue, result.Issues)
	}
	if len(result.Recommendations) != 1 {
		t.Errorf("fallback should carry one recommendation, got %v", result.Recommendations)
	}
}

func TestAnalyzeSERPWithCommentary(t *testing.T) {
	ai := &stubCommentator{reply: "Competitors cover pricing in more depth."}
	result := AnalyzeSERP(context.Background(), "short content with no numbers", ai)

	// Three local checks fail (length, statistics, citations) plus the
	// commentary pair.
	if result.Score != 55 {
		t.Errorf("expected score 55, got %d", result.Score)
	}
	if result.Issues[len(result.Issues)-1] != ai.reply {
		t.Errorf("commentary should be appended as the last issue, got %v", result.Issues)
	}
	if result.PredictedRank != "Page 2 or lower" {
		t.Errorf("short content should predict a low rank, got %q", result.PredictedRank)
	}
}

func TestAnalyzeSERPLongContentRank(t *testing.T) {
	ai := &stubCommentator{reply: "Solid depth."}
	content := ""
	for i := 0; i < 1500; i++ {
		content += "word "
	}

	result := AnalyzeSERP(context.Background(), content, ai)
	if result.PredictedRank != "Top 10 contender" {
		t.Errorf("1500+ words should predict a contender rank, got %q", result.PredictedRank)
	}
}

func TestAnalyzeDifferentiationFallback(t *testing.T) {
	ai := &stubCommentator{err: errors.New("timeout")}
	result := AnalyzeDifferentiation(context.Background(), "content", ai)

	if result.Score != 60 {
		t.Errorf("fallback score should be exactly 60, got %d", result.Score)
	}
	if !reflect.DeepEqual(result.Issues, []string{DifferentiationFallbackIssue}) {
		t.Errorf("fallback issues should be exactly [%q], got %v", DifferentiationFallbackIssue, result.Issues)
	}
	if result.PredictedRank != "" {
		t.Errorf("differentiation should not set a rank, got %q", result.PredictedRank)
	}
}

func TestAnalyzeDifferentiationAllChecksPass(t *testing.T) {
	year := strconv.Itoa(time.Now().Year())
	content := "For example, we tested three grinders side by side. I believe the cheapest one held up best, and in " +
		year + " it still does."

	ai := &stubCommentator{reply: "The comparison angle is distinctive."}
	result := AnalyzeDifferentiation(context.Background(), content, ai)

	if result.Score != 100 {
		t.Errorf("expected score 100, got %d (issues: %v)", result.Score, result.Issues)
	}
	if !reflect.DeepEqual(result.Issues, []string{ai.reply}) {
		t.Errorf("only the commentary should appear as an issue, got %v", result.Issues)
	}
}

func TestSynchronousAnalyzersScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"word",
		"!!! ??? ...",
		"The the the the the. The the the.",
		buildWellFormedContent(),
	}

	analyzers := map[string]func(string) int{
		"seo":          func(s string) int { return AnalyzeSEO(s).Score },
		"aeo":          func(s string) int { return AnalyzeAEO(s).Score },
		"humanization": func(s string) int { return AnalyzeHumanization(s).Score },
		"engagement":   func(s string) int { return AnalyzeEngagement(s).Score },
	}

	for name, analyze := range analyzers {
		for _, input := range inputs {
			score := analyze(input)
			if score < 0 || score > 100 {
				t.Errorf("%s score out of [0,100] for %q: %d", name, input, score)
			}
		}
	}
}
