package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"postforge/internal/domain/repository"
)

// passToken is the literal the safety rubric must answer with for a post to
// survive filtering.
const passToken = "PASS"

// minQualityScore is the overall score a post needs to be considered good.
const minQualityScore = 6

// QualityFilter runs the safety gate and the quality rubric over candidate
// posts. Any transport failure counts as unsafe; the filter never lets an
// unchecked draft through.
type QualityFilter struct {
	provider repository.CompletionProvider
}

func NewQualityFilter(provider repository.CompletionProvider) *QualityFilter {
	return &QualityFilter{provider: provider}
}

// FilterContent classifies a draft as safe or unsafe. The detail string is
// the model's verdict, or an error description when the check itself failed.
func (f *QualityFilter) FilterContent(ctx context.Context, text string) (bool, string) {
	prompt := fmt.Sprintf(`Please analyze this LinkedIn post content for professional standards.
Check for:
1. Appropriate professional language
2. No controversial or offensive topics
3. Professional tone suitable for LinkedIn
4. No personal attacks or inappropriate content
5. No misleading claims or misinformation

Text: %s

Return only 'PASS' if content is appropriate, or 'FAIL: [specific reason]' if not.
Be strict but fair in your assessment.`, text)

	response, err := f.provider.Generate(ctx, prompt)
	if err != nil {
		return false, fmt.Sprintf("Error in content filtering: %v", err)
	}
	verdict := strings.TrimSpace(response)
	return strings.HasPrefix(verdict, passToken), verdict
}

// CheckQuality scores a draft against the quality rubric. The returned
// metrics hold whichever labeled scores could be parsed; a missing or
// malformed line drops only that metric.
func (f *QualityFilter) CheckQuality(ctx context.Context, text string) (bool, string, map[string]int) {
	prompt := fmt.Sprintf(`Analyze this LinkedIn post for quality metrics:

Text: %s

Evaluate:
1. Engagement potential (1-10)
2. Professional tone (1-10)
3. Clarity and readability (1-10)
4. Value to readers (1-10)
5. Call-to-action effectiveness (1-10)

Format your response as:
SCORE: [overall score 1-10]
ENGAGEMENT: [score]
TONE: [score]
CLARITY: [score]
VALUE: [score]
CTA: [score]
FEEDBACK: [brief feedback]`, text)

	response, err := f.provider.Generate(ctx, prompt)
	if err != nil {
		return false, fmt.Sprintf("Error in quality check: %v", err), map[string]int{}
	}

	report := parseQualityReport(response)
	return report.Score >= minQualityScore, report.Feedback, report.Metrics
}

// qualityReport is the parsed form of a quality rubric response.
type qualityReport struct {
	Score    int
	Feedback string
	Metrics  map[string]int
}

// metricLabels maps response line prefixes to metric keys.
var metricLabels = map[string]string{
	"ENGAGEMENT:": "engagement",
	"TONE:":       "tone",
	"CLARITY:":    "clarity",
	"VALUE:":      "value",
	"CTA:":        "cta",
}

// parseQualityReport is a lenient line-oriented parser: recognized labels
// are extracted independently, unmatched or malformed lines are skipped.
func parseQualityReport(response string) qualityReport {
	report := qualityReport{Metrics: map[string]int{}}

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SCORE:"):
			if v, ok := parseLabeledInt(line); ok {
				report.Score = v
			}
		case strings.HasPrefix(line, "FEEDBACK:"):
			report.Feedback = strings.TrimSpace(strings.TrimPrefix(line, "FEEDBACK:"))
		default:
			for label, key := range metricLabels {
				if strings.HasPrefix(line, label) {
					if v, ok := parseLabeledInt(line); ok {
						report.Metrics[key] = v
					}
					break
				}
			}
		}
	}
	return report
}

// parseLabeledInt extracts the integer after the first colon of a
// "LABEL: value" line.
func parseLabeledInt(line string) (int, bool) {
	_, rest, found := strings.Cut(line, ":")
	if !found {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return v, true
}
