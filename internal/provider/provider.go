package provider

import (
	"context"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
)

//go:generate mockgen -source=provider.go -destination=../mocks/provider/mock_provider.go -package=mock_provider

// Provider interface abstracts over the backends that turn a question into an Answer
type Provider interface {
	// GetAnswer produces a structured answer for a free-text question.
	GetAnswer(ctx context.Context, question string) (answer.Answer, error)

	// ProcessImage produces an answer for an image reference. Backends that
	// cannot read images fail and expect the caller to run OCR first and call
	// GetAnswer with the extracted text.
	ProcessImage(ctx context.Context, imageRef string) (answer.Answer, error)
}

const (
	DefaultMaxRetryAttempts = 3
)

// ImageUnsupportedMessage is returned by backends that require the OCR route.
const ImageUnsupportedMessage = "이미지 처리는 OCR을 통해 텍스트 추출 후 질문으로 변환해야 합니다"
