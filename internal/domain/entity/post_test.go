package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditContentRecomputesCharCount(t *testing.T) {
	post := GeneratedPost{Content: "original", CharCount: len("original")}
	post.EditContent("a much longer edited body")
	assert.Equal(t, "a much longer edited body", post.Content)
	assert.Equal(t, len("a much longer edited body"), post.CharCount)
}

func TestResearchResultPayloadOr(t *testing.T) {
	ok := ResearchOK("payload")
	assert.Equal(t, "payload", ok.PayloadOr("fallback"))

	failed := ResearchFailed("boom")
	assert.Equal(t, "fallback", failed.PayloadOr("fallback"))
	assert.Equal(t, ResearchError, failed.Status)

	disabled := ResearchDisabledResult()
	assert.Equal(t, "fallback", disabled.PayloadOr("fallback"))
}
