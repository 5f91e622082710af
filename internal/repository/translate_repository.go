package repository

import (
	"context"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/result"
	"github.com/cj5427533/BilingualBuddy/internal/translate"
)

const (
	// BlankTextMessage is returned for blank or whitespace-only translation input.
	BlankTextMessage = "번역할 텍스트를 입력해주세요"

	// TranslateUnknownErrorMessage is the fallback when a translator failure
	// carries no message of its own.
	TranslateUnknownErrorMessage = "번역 중 오류가 발생했습니다"
)

type TranslateRepository struct {
	translator translate.Translator
}

func NewTranslateRepository(t translate.Translator) *TranslateRepository {
	return &TranslateRepository{
		translator: t,
	}
}

// Translate validates the input text, delegates to the translator, and
// flattens any failure into a message-only result.
func (repo *TranslateRepository) Translate(ctx context.Context, text, sourceLang, targetLang string) result.Result[string] {
	if strings.TrimSpace(text) == "" {
		return result.Failure[string](BlankTextMessage)
	}

	translated, err := repo.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		message := err.Error()
		if message == "" {
			message = TranslateUnknownErrorMessage
		}
		return result.Failure[string](message)
	}
	return result.Success(translated)
}
