package models

// SearchQuery is the request body for the backend's conversational search.
// SessionID is empty on the first query of a session.
type SearchQuery struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id,omitempty"`
}

// SearchResponse is the backend's structured reply. Every field is nullable;
// a nil slice and an empty slice both mean "no items".
type SearchResponse struct {
	SessionID               string          `json:"session_id,omitempty"`
	Results                 []ProductResult `json:"results,omitempty"`
	RagContexts             []RagContext    `json:"rag_contexts,omitempty"`
	FollowUpQuestions       []string        `json:"follow_up_questions,omitempty"`
	Answer                  string          `json:"answer,omitempty"`
	ContextualJustification string          `json:"contextual_justification,omitempty"`
}

// Empty reports whether the response carries nothing worth rendering, in
// which case the transcript shows a "no results" fallback.
func (r *SearchResponse) Empty() bool {
	return r.Answer == "" &&
		len(r.FollowUpQuestions) == 0 &&
		len(r.Results) == 0 &&
		len(r.RagContexts) == 0
}
