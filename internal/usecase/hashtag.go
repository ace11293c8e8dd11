package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"postforge/internal/domain/repository"
)

// DefaultHashtagCount is how many hashtags a post gets unless the caller
// asks otherwise.
const DefaultHashtagCount = 5

// fallbackHashtags are used when generation fails or yields nothing usable.
var fallbackHashtags = []string{"#LinkedIn", "#Professional", "#Career", "#Business", "#Leadership"}

// HashtagGenerator derives a short list of topical tags via the model, with
// a deterministic fallback set.
type HashtagGenerator struct {
	provider repository.CompletionProvider
	logger   *logrus.Logger
}

func NewHashtagGenerator(provider repository.CompletionProvider, logger *logrus.Logger) *HashtagGenerator {
	return &HashtagGenerator{provider: provider, logger: logger}
}

// Generate returns up to count hashtags for the topic. Duplicate tags are
// removed by exact string match, keeping first-seen order.
func (h *HashtagGenerator) Generate(ctx context.Context, topic, audience, postType string, count int) []string {
	if count <= 0 {
		count = DefaultHashtagCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d highly relevant and trending LinkedIn hashtags for:\n\nTopic: %s\n", count, topic)
	if audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", audience)
	}
	if postType != "" {
		fmt.Fprintf(&b, "Post Type: %s\n", postType)
	}
	b.WriteString(`
Requirements:
1. Use popular LinkedIn hashtags that actually exist
2. Mix of broad and specific hashtags
3. Include industry-relevant tags
4. Ensure hashtags are professional and appropriate
5. Focus on discoverability and engagement

Format: Return only the hashtags, one per line, starting with #
Example:
#Leadership
#BusinessStrategy
#ProfessionalDevelopment`)

	response, err := h.provider.Generate(ctx, b.String())
	if err != nil {
		h.logger.WithError(err).Warn("Hashtag generation failed, using fallback tags")
		return FallbackHashtags(topic)
	}

	tags := ParseHashtagLines(response, count)
	if len(tags) == 0 {
		return FallbackHashtags(topic)
	}
	return tags
}

// ParseHashtagLines extracts hashtags from a model response: one per line,
// first whitespace-delimited token only, exact-string dedup, capped at count.
func ParseHashtagLines(response string, count int) []string {
	var tags []string
	seen := map[string]bool{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") || len(line) < 2 {
			continue
		}
		tag := strings.Fields(line)[0]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == count {
			break
		}
	}
	return tags
}

// FallbackHashtags returns the fixed professional tag set, with a
// topic-derived tag inserted second when the topic is meaningful.
func FallbackHashtags(topic string) []string {
	tags := make([]string, len(fallbackHashtags))
	copy(tags, fallbackHashtags)

	stripped := strings.NewReplacer(" ", "", "-", "").Replace(topic)
	if len(stripped) > 3 {
		topicTag := "#" + titleCase(stripped)
		tags = append(tags[:1], append([]string{topicTag}, tags[1:]...)...)
	}
	if len(tags) > DefaultHashtagCount {
		tags = tags[:DefaultHashtagCount]
	}
	return tags
}

// AnalyzePerformance asks the model for a free-text assessment of a tag
// set. Failures are absorbed into the analysis text.
func (h *HashtagGenerator) AnalyzePerformance(ctx context.Context, hashtags []string) map[string]any {
	prompt := fmt.Sprintf(`Analyze these LinkedIn hashtags for performance potential:

Hashtags: %s

Evaluate:
1. Popularity level (High/Medium/Low) for each
2. Competition level (High/Medium/Low) for each
3. Relevance score (1-10) for each
4. Overall hashtag strategy rating (1-10)

Provide a brief analysis of the hashtag mix and suggestions for improvement.`, strings.Join(hashtags, " "))

	analysis, err := h.provider.Generate(ctx, prompt)
	if err != nil {
		analysis = fmt.Sprintf("Error analyzing hashtags: %v", err)
	}
	return map[string]any{
		"analysis":      analysis,
		"hashtag_count": len(hashtags),
		"hashtags":      hashtags,
	}
}

// titleCase uppercases the letter starting each alphabetic run and
// lowercases the rest, so "remoteworkproductivity" becomes
// "Remoteworkproductivity" and "covid19vaccine" becomes "Covid19Vaccine".
func titleCase(s string) string {
	var b strings.Builder
	prevAlpha := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevAlpha {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevAlpha = true
		} else {
			b.WriteRune(r)
			prevAlpha = false
		}
	}
	return b.String()
}
