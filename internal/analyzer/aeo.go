package analyzer

import (
	"regexp"

	"github.com/contentaudit/contentaudit/internal/models"
	"github.com/contentaudit/contentaudit/internal/textmetrics"
)

var (
	faqRe        = regexp.MustCompile(`(?i)\b(faq|frequently asked questions?|what is|what are|why do(es)?|can i|should i)\b`)
	listLineRe   = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+[.)])\s+\S`)
	howToRe      = regexp.MustCompile(`(?i)(step[ -]by[ -]step|how to|step \d|follow these steps)`)
	definitionRe = regexp.MustCompile(`(?i)\b(is defined as|refers to|means that|is a (type|form|kind) of|is the process of)\b`)
)

// AnalyzeAEO scores suitability for answer engines: question-led phrasing,
// scannable structure, and extractable definitions.
func AnalyzeAEO(content string) models.ScoreResult {
	listLines := len(listLineRe.FindAllString(content, -1))
	avgParagraph := textmetrics.AvgParagraphChars(content)

	checks := []check{
		{
			failed:         !faqRe.MatchString(content),
			penalty:        15,
			issue:          "No FAQ-style phrasing found",
			recommendation: "Add question-and-answer sections; answer engines lift content that directly poses the questions users ask",
		},
		{
			failed:         listLines < 3,
			penalty:        10,
			issue:          "Fewer than three structured list lines",
			recommendation: "Convert dense prose into bulleted or numbered lists where the content enumerates items",
		},
		{
			failed:         avgParagraph > 500,
			penalty:        15,
			issue:          "Average paragraph exceeds 500 characters",
			recommendation: "Split long paragraphs; answer engines favor self-contained passages",
		},
		{
			failed:         !howToRe.MatchString(content),
			penalty:        10,
			issue:          "No step-by-step or how-to phrasing found",
			recommendation: "Add an explicit step-by-step section if the content explains a process",
		},
		{
			failed:         !definitionRe.MatchString(content),
			penalty:        10,
			issue:          "No definition phrasing found",
			recommendation: "State key terms plainly (\"X is defined as...\", \"X refers to...\") so they can be quoted as direct answers",
		},
	}

	return scoreChecks(checks)
}
