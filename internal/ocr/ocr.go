// Package ocr extracts question text from homework images. The session layer
// consumes it as a black box: text comes back as a tri-state result, and a
// failed extraction is injected into the session with SetError.
package ocr

import (
	"context"

	"github.com/cj5427533/BilingualBuddy/internal/result"
)

//go:generate mockgen -source=ocr.go -destination=../mocks/ocr/mock_extractor.go -package=mock_ocr

// Extractor interface abstracts the text recognition backend
type Extractor interface {
	ExtractText(ctx context.Context, imagePath string) result.Result[string]
}

const (
	// NoTextFoundMessage is returned when recognition succeeds but the image
	// contains no readable text.
	NoTextFoundMessage = "텍스트를 찾을 수 없습니다"

	// failureMessageFormat wraps any extraction failure.
	failureMessageFormat = "OCR 처리 중 오류가 발생했습니다: %s"
)
