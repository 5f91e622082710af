// Package answer defines the structured output of a question.
package answer

// Answer is the immutable result of asking a question: a Vietnamese summary,
// a Korean explanation, and a Vietnamese pronunciation guide. Fields may be
// empty when the model response omitted a section, but never carry nil
// semantics.
type Answer struct {
	VietnameseSummary string `json:"vietnamese_summary"`
	KoreanExplanation string `json:"korean_explanation"`
	Pronunciation     string `json:"pronunciation"`
}
