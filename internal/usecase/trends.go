package usecase

import (
	"context"
	"fmt"
	"strings"

	"postforge/internal/domain/entity"
	"postforge/internal/domain/repository"
)

// Placeholder text substituted for research results that did not succeed.
const (
	noTrendData       = "No trend data available"
	noInspirationData = "No inspiration data available"
	noAudienceData    = "No audience data available"
	strategyFallback  = "Could not generate content strategy"
)

// TrendResearcher runs the read-only research prompts: current trends,
// successful content patterns, audience interests, and the strategy that
// synthesizes them. Failures never propagate past this boundary; each
// operation reports through its ResearchResult status.
type TrendResearcher struct {
	provider repository.CompletionProvider
}

func NewTrendResearcher(provider repository.CompletionProvider) *TrendResearcher {
	return &TrendResearcher{provider: provider}
}

// AnalyzeTrends requests current trending subtopics, challenges and content
// angles for the topic.
func (t *TrendResearcher) AnalyzeTrends(ctx context.Context, topic, audience string) entity.ResearchResult {
	var b strings.Builder
	fmt.Fprintf(&b, `Analyze current trends and hot topics related to "%s".

Consider:
1. Recent industry developments and news
2. Popular discussions on LinkedIn and professional networks
3. Emerging technologies or methodologies
4. Common challenges professionals are facing
5. Popular content formats that are getting engagement
`, topic)
	if audience != "" {
		fmt.Fprintf(&b, "6. Specific trends relevant to %s\n", audience)
	}
	b.WriteString(`
Provide:
- Top 3 trending subtopics within this area
- Current industry challenges people are discussing
- Popular content angles that get engagement
- Buzzwords and terminology that are trending
- Recent developments or news in this space

Format your response clearly with sections.`)

	response, err := t.provider.Generate(ctx, b.String())
	if err != nil {
		return entity.ResearchFailed(fmt.Sprintf("Error analyzing trends: %v", err))
	}
	result := entity.ResearchOK(response)
	result.Topic = topic
	result.Audience = audience
	return result
}

// FindInspiration requests successful content-structure patterns for the
// topic: hooks, formats and language patterns.
func (t *TrendResearcher) FindInspiration(ctx context.Context, topic, tone, postType string) entity.ResearchResult {
	var b strings.Builder
	fmt.Fprintf(&b, `Analyze successful LinkedIn content patterns for posts about "%s".

Based on high-performing LinkedIn posts, identify:

1. SUCCESSFUL CONTENT STRUCTURES:
- Opening hooks that grab attention
- Content flow patterns that work
- Effective storytelling techniques
- Call-to-action patterns that drive engagement

2. ENGAGEMENT DRIVERS:
- Question formats that generate comments
- Story elements that resonate with professionals
- Data points and statistics that get shared
- Personal experiences that connect with audiences

3. CONTENT FORMATS THAT WORK:
- List formats (3 tips, 5 strategies, etc.)
- Before/after narratives
- Lesson learned stories
- Industry insight posts
- Contrarian viewpoints that spark discussion

4. PROFESSIONAL LANGUAGE PATTERNS:
- Power words that professionals use
- Industry-specific terminology
- Confidence-building language
- Authentic, relatable expressions
`, topic)
	if tone != "" {
		fmt.Fprintf(&b, "\n5. Tailor recommendations for %s tone\n", tone)
	}
	if postType != "" {
		fmt.Fprintf(&b, "\n6. Focus on %s format specifically\n", postType)
	}
	b.WriteString("\nProvide specific examples and patterns, not just generic advice.")

	response, err := t.provider.Generate(ctx, b.String())
	if err != nil {
		return entity.ResearchFailed(fmt.Sprintf("Error finding inspiration: %v", err))
	}
	result := entity.ResearchOK(response)
	result.Topic = topic
	result.Tone = tone
	result.PostType = postType
	return result
}

// AnalyzeAudience requests pain points, goals and preferred formats for the
// target audience. An empty audience skips the call entirely.
func (t *TrendResearcher) AnalyzeAudience(ctx context.Context, audience, topic string) entity.ResearchResult {
	if audience == "" {
		return entity.ResearchSkippedResult("No audience specified")
	}

	prompt := fmt.Sprintf(`Analyze what %s professionals care about regarding "%s".

Consider:
1. Pain points and challenges they face
2. Goals and aspirations they have
3. Industry terminology they use
4. Content formats they prefer
5. Level of technical detail they want
6. Time constraints and information consumption habits
7. Professional development interests
8. Business impact they care about

Provide insights that will help create more targeted, relevant content.`, audience, topic)

	response, err := t.provider.Generate(ctx, prompt)
	if err != nil {
		return entity.ResearchFailed(fmt.Sprintf("Error analyzing audience: %v", err))
	}
	result := entity.ResearchOK(response)
	result.Audience = audience
	result.Topic = topic
	return result
}

// SynthesizeStrategy folds the three research payloads into one content
// strategy. On completion failure it returns a fixed fallback string rather
// than an error.
func (t *TrendResearcher) SynthesizeStrategy(ctx context.Context, topic string, trends, inspiration, audienceInsights entity.ResearchResult) string {
	prompt := fmt.Sprintf(`Based on the following research, create a strategic content plan for LinkedIn posts about "%s":

TREND ANALYSIS:
%s

CONTENT INSPIRATION:
%s

AUDIENCE INSIGHTS:
%s

Create a strategic content approach that:
1. Leverages current trends and hot topics
2. Uses proven engagement patterns
3. Speaks directly to the target audience's interests
4. Incorporates successful content structures
5. Suggests specific angles and approaches
6. Recommends key messages and themes
7. Identifies unique value propositions

Format this as actionable guidance for content creation.`,
		topic,
		trends.PayloadOr(noTrendData),
		inspiration.PayloadOr(noInspirationData),
		audienceInsights.PayloadOr(noAudienceData))

	response, err := t.provider.Generate(ctx, prompt)
	if err != nil {
		return strategyFallback
	}
	return response
}
