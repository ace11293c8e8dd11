package entity

// AgenticFeatures records which optional research stages actually ran.
type AgenticFeatures struct {
	TrendAnalysis      bool `json:"trend_analysis"`
	ContentInspiration bool `json:"content_inspiration"`
	AudienceAnalysis   bool `json:"audience_analysis"`
	ToneOptimization   bool `json:"tone_optimization"`
	QualityFiltering   bool `json:"quality_filtering"`
}

// QualityDistribution buckets the returned posts by engagement potential.
type QualityDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ToneAnalysis describes how the effective tone was chosen.
type ToneAnalysis struct {
	EffectiveTone    string `json:"effective_tone"`
	ToneSpecified    bool   `json:"tone_specified"`
	ToneOptimization bool   `json:"tone_optimization"`
}

// ResearchSummary is a compact view of which research stages succeeded.
type ResearchSummary struct {
	TrendsAnalyzed   bool `json:"trends_analyzed"`
	InspirationFound bool `json:"inspiration_found"`
	AudienceInsights bool `json:"audience_insights"`
}

// GenerationMetadata describes one full pipeline run. Built once by the
// assembly stage and read-only afterwards. On a pipeline abort only Error
// and GenerationTime are populated.
type GenerationMetadata struct {
	RunID               string              `json:"run_id,omitempty"`
	GenerationTime      float64             `json:"generation_time"`
	PostsGenerated      int                 `json:"posts_generated"`
	ModelUsed           string              `json:"model_used,omitempty"`
	AgenticFeatures     AgenticFeatures     `json:"agentic_features_used"`
	RequestParams       PostRequest         `json:"request_params"`
	AvgCharCount        int                 `json:"avg_char_count"`
	QualityDistribution QualityDistribution `json:"quality_distribution"`
	ToneAnalysis        ToneAnalysis        `json:"tone_analysis"`
	ResearchSummary     ResearchSummary     `json:"research_summary"`
	Error               string              `json:"error,omitempty"`
}

// CostBreakdown is the estimated cost of a single completion round trip.
type CostBreakdown struct {
	Model        string  `json:"model"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	InputCost    float64 `json:"input_cost"`
	OutputCost   float64 `json:"output_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// SessionSummary is a point-in-time read of the usage ledger.
type SessionSummary struct {
	DurationMinutes   float64 `json:"session_duration_minutes"`
	Requests          int     `json:"total_requests"`
	InputTokens       int     `json:"total_input_tokens"`
	OutputTokens      int     `json:"total_output_tokens"`
	TotalCost         float64 `json:"estimated_total_cost"`
	AvgCostPerRequest float64 `json:"avg_cost_per_request"`
}

// GenerationStats accumulates pipeline outcomes across runs.
type GenerationStats struct {
	TotalGenerated    int     `json:"total_generated"`
	TotalFiltered     int     `json:"total_filtered"`
	AvgGenerationTime float64 `json:"avg_generation_time"`
}

// ModelInfo identifies the backing model for the health surface.
type ModelInfo struct {
	ModelName string `json:"model_name"`
	Status    string `json:"status"`
}

// HealthStatus is the agent-level health report.
type HealthStatus struct {
	Status     string          `json:"status"`
	Connected  bool            `json:"connected"`
	Message    string          `json:"message"`
	ModelInfo  ModelInfo       `json:"model_info"`
	Generation GenerationStats `json:"generation_stats"`
}
