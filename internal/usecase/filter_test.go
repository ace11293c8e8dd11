package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQualityReportFull(t *testing.T) {
	report := parseQualityReport(`SCORE: 8
ENGAGEMENT: 7
TONE: 9
CLARITY: 8
VALUE: 8
CTA: 6
FEEDBACK: Strong hook, could use a sharper question`)

	assert.Equal(t, 8, report.Score)
	assert.Equal(t, "Strong hook, could use a sharper question", report.Feedback)
	assert.Equal(t, map[string]int{
		"engagement": 7,
		"tone":       9,
		"clarity":    8,
		"value":      8,
		"cta":        6,
	}, report.Metrics)
}

func TestParseQualityReportMissingClarity(t *testing.T) {
	report := parseQualityReport(`SCORE: 7
ENGAGEMENT: 7
TONE: 8
VALUE: 6
CTA: 5
FEEDBACK: Solid`)

	assert.Len(t, report.Metrics, 4)
	assert.NotContains(t, report.Metrics, "clarity")
	assert.Equal(t, 7, report.Score)
}

func TestParseQualityReportMalformedLineSkipped(t *testing.T) {
	report := parseQualityReport(`SCORE: 6
ENGAGEMENT: high
TONE: 7
Some commentary the model added on its own.
CTA: 5`)

	assert.NotContains(t, report.Metrics, "engagement")
	assert.Equal(t, 7, report.Metrics["tone"])
	assert.Equal(t, 5, report.Metrics["cta"])
	assert.Equal(t, 6, report.Score)
}

func TestFilterContentPassGate(t *testing.T) {
	provider := &stubProvider{rules: []promptRule{
		{match: "professional standards", response: "PASS"},
	}}
	filter := NewQualityFilter(provider)

	safe, detail := filter.FilterContent(context.Background(), "a perfectly fine post")
	assert.True(t, safe)
	assert.Equal(t, "PASS", detail)
}

func TestFilterContentRejection(t *testing.T) {
	provider := &stubProvider{rules: []promptRule{
		{match: "professional standards", response: "FAIL: contains unverifiable claims"},
	}}
	filter := NewQualityFilter(provider)

	safe, detail := filter.FilterContent(context.Background(), "dubious post")
	assert.False(t, safe)
	assert.Equal(t, "FAIL: contains unverifiable claims", detail)
}

func TestFilterContentTransportFailureIsUnsafe(t *testing.T) {
	provider := &stubProvider{fail: errors.New("503 overloaded")}
	filter := NewQualityFilter(provider)

	safe, detail := filter.FilterContent(context.Background(), "anything")
	assert.False(t, safe)
	assert.Contains(t, detail, "503 overloaded")
}

func TestCheckQualityThreshold(t *testing.T) {
	provider := &stubProvider{rules: []promptRule{
		{match: "quality metrics", response: "SCORE: 6\nENGAGEMENT: 6\nFEEDBACK: Fine"},
	}}
	filter := NewQualityFilter(provider)

	passes, feedback, metrics := filter.CheckQuality(context.Background(), "post")
	require.True(t, passes)
	assert.Equal(t, "Fine", feedback)
	assert.Equal(t, 6, metrics["engagement"])

	provider.rules[0].response = "SCORE: 5\nENGAGEMENT: 5"
	passes, _, _ = filter.CheckQuality(context.Background(), "post")
	assert.False(t, passes)
}

func TestCheckQualityTransportFailure(t *testing.T) {
	provider := &stubProvider{fail: errors.New("deadline exceeded")}
	filter := NewQualityFilter(provider)

	passes, feedback, metrics := filter.CheckQuality(context.Background(), "post")
	assert.False(t, passes)
	assert.Contains(t, feedback, "deadline exceeded")
	assert.Empty(t, metrics)
}
