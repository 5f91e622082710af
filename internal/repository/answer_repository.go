// Package repository converts provider failures into tri-state results so no
// error value crosses into the session or UI layers.
package repository

import (
	"context"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
	"github.com/cj5427533/BilingualBuddy/internal/provider"
	"github.com/cj5427533/BilingualBuddy/internal/result"
)

const (
	// BlankQuestionMessage is returned for blank or whitespace-only questions.
	BlankQuestionMessage = "질문을 입력해주세요"

	// UnknownErrorMessage is the fallback when a provider failure carries no
	// message of its own.
	UnknownErrorMessage = "알 수 없는 오류가 발생했습니다"

	// ImageRouteMessage directs callers to run OCR and re-ask with the
	// extracted text. Image handling never reaches a provider through here.
	ImageRouteMessage = "이미지 처리는 OCR을 통해 텍스트 추출 후 질문으로 변환해주세요"
)

type AnswerRepository struct {
	provider provider.Provider
}

func NewAnswerRepository(p provider.Provider) *AnswerRepository {
	return &AnswerRepository{
		provider: p,
	}
}

// GetAnswer validates the question, delegates to the provider, and flattens
// any failure into a message-only result.
func (repo *AnswerRepository) GetAnswer(ctx context.Context, question string) result.Result[answer.Answer] {
	if strings.TrimSpace(question) == "" {
		return result.Failure[answer.Answer](BlankQuestionMessage)
	}

	ans, err := repo.provider.GetAnswer(ctx, question)
	if err != nil {
		return result.Failure[answer.Answer](errorMessage(err))
	}
	return result.Success(ans)
}

// ProcessImage is unimplemented at this layer: callers run OCR externally and
// call GetAnswer with the extracted text.
func (repo *AnswerRepository) ProcessImage(ctx context.Context, imageRef string) result.Result[answer.Answer] {
	return result.Failure[answer.Answer](ImageRouteMessage)
}

func errorMessage(err error) string {
	message := err.Error()
	if message == "" {
		return UnknownErrorMessage
	}
	return message
}
