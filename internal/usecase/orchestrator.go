package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"postforge/internal/config"
	"postforge/internal/domain/entity"
	"postforge/internal/domain/repository"
)

// minDraftLength is the pre-hashtag length a draft needs to survive
// validation.
const minDraftLength = 100

// minSectionLength is the cutoff below which a parsed draft section is
// treated as formatting noise.
const minSectionLength = 50

// defaultTone is used when the model's tone pick matches nothing in the
// vocabulary.
const defaultTone = "Professional"

const inspirationSource = "trend analysis and successful content patterns"

// healthProbePrompt is sent by the health check round trip.
const healthProbePrompt = "Test connection"

// Orchestrator drives the eight-stage generation pipeline: trend analysis,
// inspiration research, audience analysis, strategic planning, tone
// resolution, draft generation, filtering, and assembly.
type Orchestrator struct {
	cfg        config.Config
	provider   repository.CompletionProvider
	modelName  string
	researcher *TrendResearcher
	filter     *QualityFilter
	hashtags   *HashtagGenerator
	logger     *logrus.Logger

	statsMu sync.Mutex
	stats   entity.GenerationStats
}

func NewOrchestrator(cfg config.Config, provider repository.CompletionProvider, modelName string, researcher *TrendResearcher, filter *QualityFilter, hashtags *HashtagGenerator, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		provider:   provider,
		modelName:  modelName,
		researcher: researcher,
		filter:     filter,
		hashtags:   hashtags,
		logger:     logger,
	}
}

// Generate runs the full pipeline for one request. An unrecoverable failure
// at any stage discards partial results and reports only the error and the
// elapsed time in the metadata.
func (o *Orchestrator) Generate(ctx context.Context, req entity.PostRequest) ([]entity.GeneratedPost, entity.GenerationMetadata) {
	start := time.Now()
	runID := uuid.NewString()
	log := o.logger.WithFields(logrus.Fields{"run_id": runID, "topic": req.Topic})

	if err := o.validateRequest(req); err != nil {
		return o.abort(err, start, runID)
	}

	// Stage 1: trend analysis
	trends := o.analyzeTrends(ctx, req)

	// Stage 2: content inspiration research
	inspiration := o.researchInspiration(ctx, req)

	// Stage 3: audience interest analysis
	audienceInsights := o.analyzeAudienceInterests(ctx, req)

	// Stage 4: strategic content planning
	plan := o.createContentPlan(ctx, req, trends, inspiration, audienceInsights)

	// Stage 5: tone resolution
	effectiveTone := o.resolveTone(ctx, req, trends, inspiration)

	// Stage 6: draft generation
	drafts, err := o.generateDrafts(ctx, req, plan, trends, inspiration, effectiveTone)
	if err != nil {
		log.WithError(err).Error("Draft generation failed")
		return o.abort(err, start, runID)
	}

	// Stage 7: filter and validate
	survivors := o.filterAndValidate(ctx, drafts, log)

	// Stage 8: hashtags and assembly
	var hashtags []string
	if req.IncludeHashtags {
		hashtags = o.hashtags.Generate(ctx, req.Topic, req.Audience, req.PostType, DefaultHashtagCount)
	}
	posts := o.assemblePosts(ctx, survivors, hashtags, req, effectiveTone)

	elapsed := time.Since(start).Seconds()
	for i := range posts {
		posts[i].GenerationTime = round2(elapsed)
	}
	metadata := o.buildMetadata(posts, elapsed, runID, req, trends, inspiration, effectiveTone)
	o.updateStats(len(posts), elapsed)

	log.WithFields(logrus.Fields{
		"posts_generated": len(posts),
		"elapsed_seconds": metadata.GenerationTime,
	}).Info("Pipeline run complete")

	return posts, metadata
}

func (o *Orchestrator) validateRequest(req entity.PostRequest) error {
	if strings.TrimSpace(req.Topic) == "" {
		return fmt.Errorf("%w: topic is required", entity.ErrInvalidRequest)
	}
	if req.PostCount < 1 || req.PostCount > o.cfg.MaxPosts {
		return fmt.Errorf("%w: post_count must be between 1 and %d", entity.ErrInvalidRequest, o.cfg.MaxPosts)
	}
	return nil
}

func (o *Orchestrator) abort(err error, start time.Time, runID string) ([]entity.GeneratedPost, entity.GenerationMetadata) {
	return []entity.GeneratedPost{}, entity.GenerationMetadata{
		RunID:          runID,
		Error:          err.Error(),
		GenerationTime: round2(time.Since(start).Seconds()),
	}
}

func (o *Orchestrator) analyzeTrends(ctx context.Context, req entity.PostRequest) entity.ResearchResult {
	if !o.cfg.EnableTrendAnalysis {
		return entity.ResearchDisabledResult()
	}
	return o.researcher.AnalyzeTrends(ctx, req.Topic, req.Audience)
}

func (o *Orchestrator) researchInspiration(ctx context.Context, req entity.PostRequest) entity.ResearchResult {
	if !o.cfg.EnableInspirationSearch {
		return entity.ResearchDisabledResult()
	}
	return o.researcher.FindInspiration(ctx, req.Topic, req.Tone, req.PostType)
}

func (o *Orchestrator) analyzeAudienceInterests(ctx context.Context, req entity.PostRequest) entity.ResearchResult {
	if req.Audience == "" || !o.cfg.EnableTrendAnalysis {
		return entity.ResearchSkippedResult("No audience specified")
	}
	return o.researcher.AnalyzeAudience(ctx, req.Audience, req.Topic)
}

// createContentPlan synthesizes the research into a strategy, then expands
// it into a per-post outline. If the outline completion fails the raw
// strategy stands in as the plan.
func (o *Orchestrator) createContentPlan(ctx context.Context, req entity.PostRequest, trends, inspiration, audienceInsights entity.ResearchResult) string {
	strategy := o.researcher.SynthesizeStrategy(ctx, req.Topic, trends, inspiration, audienceInsights)

	var b strings.Builder
	fmt.Fprintf(&b, `Based on this comprehensive research and strategy:

CONTENT STRATEGY:
%s

Create a detailed content plan for %d LinkedIn posts about "%s".

Requirements:
- Leverage trending topics and current discussions
- Use proven engagement patterns from successful content
- Address specific audience interests and pain points
- Ensure each post has a unique angle and value proposition
- Plan for variety in content types and approaches
`, strategy, req.PostCount, req.Topic)
	if req.Tone != "" {
		fmt.Fprintf(&b, "- Target tone: %s\n", req.Tone)
	} else {
		b.WriteString("- Determine most effective tone for each post\n")
	}
	if req.Audience != "" {
		fmt.Fprintf(&b, "- Audience focus: %s\n", req.Audience)
	}
	if req.PostType != "" {
		fmt.Fprintf(&b, "- Post type preference: %s\n", req.PostType)
	}
	b.WriteString(`
Provide a strategic outline with:
1. Main angle/hook for each post
2. Key value proposition
3. Engagement strategy
4. Target outcome (shares, comments, etc.)`)

	plan, err := o.provider.Generate(ctx, b.String())
	if err != nil {
		return strategy
	}
	return plan
}

// resolveTone returns the requested tone verbatim, or asks the model to
// pick one from the vocabulary and scans the answer for the first entry
// that appears. No match falls back to the default.
func (o *Orchestrator) resolveTone(ctx context.Context, req entity.PostRequest, trends, inspiration entity.ResearchResult) string {
	if req.Tone != "" {
		return req.Tone
	}

	audience := req.Audience
	if audience == "" {
		audience = "General professional audience"
	}
	prompt := fmt.Sprintf(`Based on this research about "%s":

TRENDS: %s
INSPIRATION: %s
AUDIENCE: %s

What tone would be most effective for LinkedIn posts? Choose from:
%s

Respond with just the tone name and brief reasoning.`,
		req.Topic,
		trends.PayloadOr("No data"),
		inspiration.PayloadOr("No data"),
		audience,
		strings.Join(o.cfg.ToneOptions, ", "))

	response, err := o.provider.Generate(ctx, prompt)
	if err != nil {
		return defaultTone
	}
	lower := strings.ToLower(response)
	for _, tone := range o.cfg.ToneOptions {
		if strings.Contains(lower, strings.ToLower(tone)) {
			return tone
		}
	}
	return defaultTone
}

// generateDrafts issues the single draft-generation completion and parses
// the response into candidate posts. A failed completion here aborts the
// run: with no drafts there is nothing left to salvage.
func (o *Orchestrator) generateDrafts(ctx context.Context, req entity.PostRequest, plan string, trends, inspiration entity.ResearchResult, tone string) ([]string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, `Based on this strategic content plan and research:

CONTENT STRATEGY:
%s

CURRENT TRENDS:
%s

SUCCESSFUL CONTENT PATTERNS:
%s

Generate %d professional LinkedIn posts about "%s".

ENHANCED REQUIREMENTS:
1. HOOKS: Start each post with a compelling hook based on successful patterns
   - Use trending angles and current discussions
   - Address real professional challenges
   - Create curiosity or emotional connection

2. VALUE DELIVERY: Provide genuine professional value
   - Actionable insights professionals can use immediately
   - Real-world examples and case studies
   - Industry-specific knowledge and expertise
   - Personal experiences that teach lessons

3. ENGAGEMENT OPTIMIZATION: Structure for maximum engagement
   - Use proven content formats that drive comments
   - Include thought-provoking questions
   - Create shareable moments and quotable insights
   - End with clear, compelling calls-to-action

4. PROFESSIONAL TONE:
   - Use tone: %s
   - Maintain professional credibility
   - Use industry-appropriate language
   - Balance authenticity with expertise

5. CONTENT STRUCTURE:
   - Opening hook (1-2 lines)
   - Value delivery (main content)
   - Personal insight or example
   - Clear call-to-action
   - Optimal length: %d-%d characters

6. AUDIENCE TARGETING:
`, plan, trends.PayloadOr(noTrendData), inspiration.PayloadOr(noInspirationData),
		req.PostCount, req.Topic, tone, o.cfg.MinPostLength, o.cfg.MaxPostLength)
	if req.Audience != "" {
		fmt.Fprintf(&b, "   - Speak directly to %s\n", req.Audience)
	} else {
		b.WriteString("   - Address general professional audience\n")
	}
	b.WriteString(`   - Use language and examples they relate to
   - Address their specific challenges and goals

Format each post clearly and ensure they feel authentic, valuable, and engaging.

Post 1:
[Content focused on trending angle #1]

Post 2:
[Content focused on different successful pattern]
`)
	fmt.Fprintf(&b, "\nContinue for all %d posts, ensuring variety and unique value in each.", req.PostCount)

	response, err := o.provider.Generate(ctx, b.String())
	if err != nil {
		return nil, fmt.Errorf("draft generation failed: %w", err)
	}
	return parseDraftSections(response), nil
}

// parseDraftSections splits a multi-post response on the "Post " marker,
// discards the preamble, and keeps the text after each section's first line
// break, minus placeholder bracket annotations.
func parseDraftSections(response string) []string {
	var drafts []string
	sections := strings.Split(response, "Post ")
	for _, section := range sections[1:] {
		lines := strings.Split(strings.TrimSpace(section), "\n")
		if len(lines) < 2 {
			continue
		}
		content := strings.TrimSpace(strings.Join(lines[1:], "\n"))
		content = strings.ReplaceAll(content, "[Content focused on", "")
		content = strings.ReplaceAll(content, "]", "")
		content = strings.TrimSpace(content)
		if len(content) > minSectionLength {
			drafts = append(drafts, content)
		}
	}
	return drafts
}

// filterAndValidate drops unsafe drafts and drafts under the minimum
// length. A safety rejection is a normal outcome, not an error.
func (o *Orchestrator) filterAndValidate(ctx context.Context, drafts []string, log *logrus.Entry) []string {
	var survivors []string
	for _, draft := range drafts {
		safe, detail := o.filter.FilterContent(ctx, draft)
		if !safe {
			log.WithField("detail", detail).Info("Draft rejected by content filter")
			o.statsMu.Lock()
			o.stats.TotalFiltered++
			o.statsMu.Unlock()
			continue
		}
		if len(draft) < minDraftLength {
			continue
		}
		survivors = append(survivors, draft)
	}
	return survivors
}

// assemblePosts attaches hashtags and quality metrics to each surviving
// draft and builds the final post records.
func (o *Orchestrator) assemblePosts(ctx context.Context, drafts, hashtags []string, req entity.PostRequest, tone string) []entity.GeneratedPost {
	posts := make([]entity.GeneratedPost, 0, len(drafts))
	for _, draft := range drafts {
		content := draft
		if req.IncludeHashtags && len(hashtags) > 0 {
			content = draft + "\n\n" + strings.Join(hashtags, " ")
		}

		_, _, metrics := o.filter.CheckQuality(ctx, draft)

		postHashtags := []string{}
		if req.IncludeHashtags {
			postHashtags = hashtags
		}

		posts = append(posts, entity.GeneratedPost{
			Content:             content,
			Hashtags:            postHashtags,
			CharCount:           len(content),
			QualityScore:        qualityScore(metrics),
			EngagementPotential: engagementPotential(metrics),
			ToneUsed:            tone,
			InspirationSource:   inspirationSource,
		})
	}
	return posts
}

func qualityScore(metrics map[string]int) float64 {
	if len(metrics) == 0 {
		return 0.5
	}
	return float64(metrics["engagement"]) / 10.0
}

// engagementPotential averages every returned metric, engagement included,
// and buckets the result.
func engagementPotential(metrics map[string]int) string {
	if len(metrics) == 0 {
		return entity.EngagementMedium
	}
	sum := 0
	for _, v := range metrics {
		sum += v
	}
	avg := float64(sum) / float64(len(metrics))
	switch {
	case avg >= 8:
		return entity.EngagementHigh
	case avg >= 6:
		return entity.EngagementMedium
	default:
		return entity.EngagementLow
	}
}

func (o *Orchestrator) buildMetadata(posts []entity.GeneratedPost, elapsed float64, runID string, req entity.PostRequest, trends, inspiration entity.ResearchResult, tone string) entity.GenerationMetadata {
	avgChars := 0
	if len(posts) > 0 {
		total := 0
		for _, p := range posts {
			total += p.CharCount
		}
		avgChars = total / len(posts)
	}

	var dist entity.QualityDistribution
	for _, p := range posts {
		switch p.EngagementPotential {
		case entity.EngagementHigh:
			dist.High++
		case entity.EngagementMedium:
			dist.Medium++
		case entity.EngagementLow:
			dist.Low++
		}
	}

	return entity.GenerationMetadata{
		RunID:          runID,
		GenerationTime: round2(elapsed),
		PostsGenerated: len(posts),
		ModelUsed:      o.modelName,
		AgenticFeatures: entity.AgenticFeatures{
			TrendAnalysis:      trends.Status == entity.ResearchSuccess,
			ContentInspiration: inspiration.Status == entity.ResearchSuccess,
			AudienceAnalysis:   req.Audience != "",
			ToneOptimization:   true,
			QualityFiltering:   true,
		},
		RequestParams:       req,
		AvgCharCount:        avgChars,
		QualityDistribution: dist,
		ToneAnalysis: entity.ToneAnalysis{
			EffectiveTone:    tone,
			ToneSpecified:    req.Tone != "",
			ToneOptimization: req.Tone == "",
		},
		ResearchSummary: entity.ResearchSummary{
			TrendsAnalyzed:   trends.Status == entity.ResearchSuccess,
			InspirationFound: inspiration.Status == entity.ResearchSuccess,
			AudienceInsights: req.Audience != "",
		},
	}
}

func (o *Orchestrator) updateStats(generated int, elapsed float64) {
	o.statsMu.Lock()
	defer o.statsMu.Unlock()
	o.stats.TotalGenerated += generated
	if o.stats.AvgGenerationTime == 0 {
		o.stats.AvgGenerationTime = elapsed
	} else {
		o.stats.AvgGenerationTime = (o.stats.AvgGenerationTime + elapsed) / 2
	}
}

// Stats returns a copy of the accumulated generation statistics.
func (o *Orchestrator) Stats() entity.GenerationStats {
	o.statsMu.Lock()
	defer o.statsMu.Unlock()
	return o.stats
}

// HealthStatus probes the backing model with a trivial completion and
// reports connection state plus generation statistics.
func (o *Orchestrator) HealthStatus(ctx context.Context) entity.HealthStatus {
	status := entity.HealthStatus{
		ModelInfo:  entity.ModelInfo{ModelName: o.modelName, Status: "connected"},
		Generation: o.Stats(),
	}

	if _, err := o.provider.Generate(ctx, healthProbePrompt); err != nil {
		status.Status = "unhealthy"
		status.Connected = false
		status.Message = fmt.Sprintf("Connection failed: %v", err)
		status.ModelInfo.Status = "disconnected"
		return status
	}

	status.Status = "healthy"
	status.Connected = true
	status.Message = fmt.Sprintf("Successfully connected to %s", o.modelName)
	return status
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
