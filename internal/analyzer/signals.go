package analyzer

// Signal predicates reused by the extended-analysis builders. Each wraps a
// pattern owned by one of the analyzers so both layers agree on what counts
// as a statistic, example or FAQ.

func HasStatistics(content string) bool {
	return statisticRe.MatchString(content)
}

func HasExamples(content string) bool {
	return exampleRe.MatchString(content)
}

func HasFAQ(content string) bool {
	return faqRe.MatchString(content)
}

func HasDefinition(content string) bool {
	return definitionRe.MatchString(content)
}

// ListLineCount counts structured list lines (bulleted or numbered).
func ListLineCount(content string) int {
	return len(listLineRe.FindAllString(content, -1))
}

// CountAICliches counts distinct stock AI phrases present in the content.
func CountAICliches(content string) int {
	return countCliches(content)
}

// PronounCount counts personal-pronoun occurrences.
func PronounCount(content string) int {
	return len(pronounRe.FindAllString(content, -1))
}
