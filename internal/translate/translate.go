package translate

import (
	"context"
)

//go:generate mockgen -source=translate.go -destination=../mocks/translate/mock_translator.go -package=mock_translate

// Translator interface abstracts the text translation backend
type Translator interface {
	// Translate converts text from sourceLang to targetLang, returning the
	// translated string.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
