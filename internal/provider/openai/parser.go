package openai

import (
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
)

// Section markers the prompt instructs the model to emit. The parser accepts
// them in any order.
const (
	markerVietnameseSummary = "[베트남어 요약]"
	markerKoreanExplanation = "[한국어 설명]"
	markerPronunciation     = "[발음]"
)

// ParseAnswer extracts the three labeled sections from a raw model response.
// Each section runs from its marker up to the next bracketed marker or the end
// of the text, with surrounding whitespace trimmed. Parsing is best-effort:
// a missing marker yields an empty field instead of an error, so garbled model
// output degrades field-by-field.
func ParseAnswer(rawText string) answer.Answer {
	return answer.Answer{
		VietnameseSummary: extractSection(rawText, markerVietnameseSummary),
		KoreanExplanation: extractSection(rawText, markerKoreanExplanation),
		Pronunciation:     extractSection(rawText, markerPronunciation),
	}
}

func extractSection(text, marker string) string {
	start := strings.Index(text, marker)
	if start < 0 {
		return ""
	}
	section := text[start+len(marker):]
	if end := strings.Index(section, "["); end >= 0 {
		section = section[:end]
	}
	return strings.TrimSpace(section)
}
