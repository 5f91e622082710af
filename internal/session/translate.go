package session

import (
	"context"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/result"
)

// TranslateState is the snapshot observed by the UI. Text is meaningful only
// in the success phase, Message only in the error phase.
type TranslateState struct {
	Phase   Phase
	Text    string
	Message string
}

// TranslateRepository is the slice of the repository layer the translate session needs.
type TranslateRepository interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) result.Result[string]
}

type TranslateSession struct {
	repository TranslateRepository
	cell       *stateCell[TranslateState]
}

func NewTranslateSession(repo TranslateRepository) *TranslateSession {
	return &TranslateSession{
		repository: repo,
		cell:       newStateCell(TranslateState{Phase: PhaseIdle}),
	}
}

// State returns the current snapshot.
func (s *TranslateSession) State() TranslateState {
	return s.cell.load()
}

// Translate runs one translation through the repository and publishes the
// outcome. Blank text becomes an error state synchronously, without a
// repository call.
func (s *TranslateSession) Translate(ctx context.Context, text, sourceLang, targetLang string) {
	if strings.TrimSpace(text) == "" {
		s.cell.set(TranslateState{Phase: PhaseError, Message: repository.BlankTextMessage})
		return
	}

	epoch := s.cell.set(TranslateState{Phase: PhaseLoading})
	res := s.repository.Translate(ctx, text, sourceLang, targetLang)
	s.cell.complete(epoch, translateStateFrom(res))
}

// ResetState forces the session back to idle from any state.
func (s *TranslateSession) ResetState() {
	s.cell.set(TranslateState{Phase: PhaseIdle})
}

func translateStateFrom(res result.Result[string]) TranslateState {
	if text, ok := res.Value(); ok {
		return TranslateState{Phase: PhaseSuccess, Text: text}
	}
	if message, ok := res.Message(); ok {
		return TranslateState{Phase: PhaseError, Message: message}
	}
	return TranslateState{Phase: PhaseLoading}
}
