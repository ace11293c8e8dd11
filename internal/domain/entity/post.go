package entity

// PostRequest carries the generation parameters for one pipeline run.
// It is passed by value and never mutated by the pipeline.
type PostRequest struct {
	Topic           string `json:"topic"`
	Tone            string `json:"tone"`      // empty means "let the system decide"
	Audience        string `json:"audience"`  // optional
	PostType        string `json:"post_type"` // optional, e.g. "Story", "Tips"
	PostCount       int    `json:"post_count"`
	IncludeHashtags bool   `json:"include_hashtags"`
	IncludeCTA      bool   `json:"include_cta"`
}

// Engagement potential buckets derived from quality metrics.
const (
	EngagementHigh   = "High"
	EngagementMedium = "Medium"
	EngagementLow    = "Low"
)

// GeneratedPost is one finished post with its quality metadata.
type GeneratedPost struct {
	Content             string   `json:"content"`
	Hashtags            []string `json:"hashtags"`
	CharCount           int      `json:"char_count"`
	QualityScore        float64  `json:"quality_score"`
	EngagementPotential string   `json:"engagement_potential"`
	GenerationTime      float64  `json:"generation_time"`
	ToneUsed            string   `json:"tone_used"`
	InspirationSource   string   `json:"inspiration_source"`
}

// EditContent replaces the post body and keeps CharCount in sync.
func (p *GeneratedPost) EditContent(content string) {
	p.Content = content
	p.CharCount = len(content)
}
