package entity

// ResearchStatus tags a ResearchResult. Consumers must branch on the status
// before reading the payload.
type ResearchStatus string

const (
	ResearchSuccess  ResearchStatus = "success"
	ResearchError    ResearchStatus = "error"
	ResearchSkipped  ResearchStatus = "skipped"
	ResearchDisabled ResearchStatus = "disabled"
)

// ResearchResult is the outcome of one research operation. Payload and the
// echo fields are populated only on success; Message only on error/skipped.
type ResearchResult struct {
	Status   ResearchStatus `json:"status"`
	Payload  string         `json:"payload,omitempty"`
	Message  string         `json:"message,omitempty"`
	Topic    string         `json:"topic,omitempty"`
	Audience string         `json:"audience,omitempty"`
	Tone     string         `json:"tone,omitempty"`
	PostType string         `json:"post_type,omitempty"`
}

func ResearchOK(payload string) ResearchResult {
	return ResearchResult{Status: ResearchSuccess, Payload: payload}
}

func ResearchFailed(message string) ResearchResult {
	return ResearchResult{Status: ResearchError, Message: message}
}

func ResearchSkippedResult(message string) ResearchResult {
	return ResearchResult{Status: ResearchSkipped, Message: message}
}

func ResearchDisabledResult() ResearchResult {
	return ResearchResult{Status: ResearchDisabled}
}

// PayloadOr returns the payload for a successful result, otherwise the
// given placeholder.
func (r ResearchResult) PayloadOr(placeholder string) string {
	if r.Status == ResearchSuccess {
		return r.Payload
	}
	return placeholder
}
