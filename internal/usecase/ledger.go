package usecase

import (
	"math"
	"strings"
	"sync"
	"time"

	"postforge/internal/domain/entity"
)

// modelPricing lists per-token prices in USD. Values mirror published Gemini
// pricing per million tokens.
var modelPricing = map[string]struct {
	Input  float64
	Output float64
}{
	"gemini-1.5-flash": {0.075 / 1e6, 0.3 / 1e6},
	"gemini-1.5-pro":   {3.5 / 1e6, 10.5 / 1e6},
	"gemini-pro":       {0.5 / 1e6, 1.5 / 1e6},
}

// fallbackPricingModel is used for model names missing from the table.
const fallbackPricingModel = "gemini-1.5-flash"

// UsageLedger accumulates estimated token counts and cost for the session.
// RecordRequest is the only mutating operation besides Reset; both are safe
// for concurrent use.
type UsageLedger struct {
	mu           sync.Mutex
	requests     int
	inputTokens  int
	outputTokens int
	totalCost    float64
	startTime    time.Time
}

func NewUsageLedger() *UsageLedger {
	return &UsageLedger{startTime: time.Now()}
}

// EstimateTokens approximates the token count of a text. One token is
// roughly four characters of English; this is not a tokenizer.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// RecordRequest estimates and accumulates the cost of one completion round
// trip, returning the per-request breakdown.
func (l *UsageLedger) RecordRequest(model, inputText, outputText string) entity.CostBreakdown {
	cleanModel := strings.TrimPrefix(model, "models/")
	pricing, ok := modelPricing[cleanModel]
	if !ok {
		pricing = modelPricing[fallbackPricingModel]
	}

	inputTokens := EstimateTokens(inputText)
	outputTokens := EstimateTokens(outputText)
	inputCost := float64(inputTokens) * pricing.Input
	outputCost := float64(outputTokens) * pricing.Output

	l.mu.Lock()
	l.requests++
	l.inputTokens += inputTokens
	l.outputTokens += outputTokens
	l.totalCost += inputCost + outputCost
	l.mu.Unlock()

	return entity.CostBreakdown{
		Model:        cleanModel,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    round6(inputCost),
		OutputCost:   round6(outputCost),
		TotalCost:    round6(inputCost + outputCost),
	}
}

// SessionSummary is a point-in-time read of the running totals.
func (l *UsageLedger) SessionSummary() entity.SessionSummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	avg := 0.0
	if l.requests > 0 {
		avg = l.totalCost / float64(l.requests)
	}
	return entity.SessionSummary{
		DurationMinutes:   math.Round(time.Since(l.startTime).Minutes()*100) / 100,
		Requests:          l.requests,
		InputTokens:       l.inputTokens,
		OutputTokens:      l.outputTokens,
		TotalCost:         round6(l.totalCost),
		AvgCostPerRequest: round6(avg),
	}
}

// Reset zeroes all counters and restarts the session timer.
func (l *UsageLedger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = 0
	l.inputTokens = 0
	l.outputTokens = 0
	l.totalCost = 0
	l.startTime = time.Now()
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
