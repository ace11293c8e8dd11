package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestParseHashtagLinesDedupIsCaseSensitive(t *testing.T) {
	response := "#Tag\n#tag\n#Tag\n#Other\n#tag"
	tags := ParseHashtagLines(response, 5)
	assert.Equal(t, []string{"#Tag", "#tag", "#Other"}, tags)
}

func TestParseHashtagLinesCapAndTokenExtraction(t *testing.T) {
	response := `Here are your hashtags:
#Leadership - broad reach
#BusinessStrategy great for B2B
#ProfessionalDevelopment
not a hashtag line
#Innovation
#Growth
#Extra`
	tags := ParseHashtagLines(response, 5)
	assert.Equal(t, []string{"#Leadership", "#BusinessStrategy", "#ProfessionalDevelopment", "#Innovation", "#Growth"}, tags)
}

func TestParseHashtagLinesIgnoresBareHash(t *testing.T) {
	tags := ParseHashtagLines("#\n#Real", 5)
	assert.Equal(t, []string{"#Real"}, tags)
}

func TestGenerateFallsBackOnError(t *testing.T) {
	provider := &stubProvider{fail: errors.New("quota exhausted")}
	gen := NewHashtagGenerator(provider, testLogger())

	tags := gen.Generate(context.Background(), "remote work productivity", "", "", 5)
	assert.Equal(t, []string{"#LinkedIn", "#Remoteworkproductivity", "#Professional", "#Career", "#Business"}, tags)
}

func TestGenerateFallsBackOnEmptyParse(t *testing.T) {
	provider := &stubProvider{rules: []promptRule{
		{match: "LinkedIn hashtags", response: "I could not come up with any tags."},
	}}
	gen := NewHashtagGenerator(provider, testLogger())

	tags := gen.Generate(context.Background(), "ai", "", "", 5)
	// Stripped topic "ai" is too short for a topic tag.
	assert.Equal(t, []string{"#LinkedIn", "#Professional", "#Career", "#Business", "#Leadership"}, tags)
}

func TestFallbackHashtagsTopicTagPlacement(t *testing.T) {
	tags := FallbackHashtags("cloud-native security")
	assert.Len(t, tags, 5)
	assert.Equal(t, "#LinkedIn", tags[0])
	assert.Equal(t, "#Cloudnativesecurity", tags[1])
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Remoteworkproductivity", titleCase("remoteworkproductivity"))
	assert.Equal(t, "Covid19Vaccine", titleCase("covid19vaccine"))
	assert.Equal(t, "Devops", titleCase("devOps"))
}

func TestAnalyzePerformance(t *testing.T) {
	provider := &stubProvider{rules: []promptRule{
		{match: "performance potential", response: "Strong mix of broad and niche tags."},
	}}
	gen := NewHashtagGenerator(provider, testLogger())

	result := gen.AnalyzePerformance(context.Background(), []string{"#Go", "#Cloud"})
	assert.Equal(t, "Strong mix of broad and niche tags.", result["analysis"])
	assert.Equal(t, 2, result["hashtag_count"])
}

func TestAnalyzePerformanceAbsorbsError(t *testing.T) {
	provider := &stubProvider{fail: errors.New("timeout")}
	gen := NewHashtagGenerator(provider, testLogger())

	result := gen.AnalyzePerformance(context.Background(), []string{"#Go"})
	assert.Contains(t, result["analysis"], "timeout")
}
