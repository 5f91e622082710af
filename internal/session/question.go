// Package session owns the per-request state machines observed by the UI.
// Each session moves Idle -> Loading -> Success or Error, and back to Idle on
// an explicit reset.
package session

import (
	"context"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/result"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// QuestionState is the snapshot observed by the UI. Answer is meaningful only
// in the success phase, Message only in the error phase.
type QuestionState struct {
	Phase   Phase
	Answer  answer.Answer
	Message string
}

// AnswerRepository is the slice of the repository layer the question session needs.
type AnswerRepository interface {
	GetAnswer(ctx context.Context, question string) result.Result[answer.Answer]
	ProcessImage(ctx context.Context, imageRef string) result.Result[answer.Answer]
}

type QuestionSession struct {
	repository AnswerRepository
	cell       *stateCell[QuestionState]
}

func NewQuestionSession(repo AnswerRepository) *QuestionSession {
	return &QuestionSession{
		repository: repo,
		cell:       newStateCell(QuestionState{Phase: PhaseIdle}),
	}
}

// State returns the current snapshot.
func (s *QuestionSession) State() QuestionState {
	return s.cell.load()
}

// AskQuestion runs one question through the repository and publishes the
// outcome. A blank question becomes an error state synchronously, without a
// repository call. The call blocks until the repository resolves; callers
// that need a responsive UI run it on their own goroutine and poll State.
func (s *QuestionSession) AskQuestion(ctx context.Context, question string) {
	if strings.TrimSpace(question) == "" {
		s.cell.set(QuestionState{Phase: PhaseError, Message: repository.BlankQuestionMessage})
		return
	}

	epoch := s.cell.set(QuestionState{Phase: PhaseLoading})
	res := s.repository.GetAnswer(ctx, question)
	s.cell.complete(epoch, questionStateFrom(res))
}

// ProcessImage follows the same loading/completion pattern against the
// repository's image path.
func (s *QuestionSession) ProcessImage(ctx context.Context, imageRef string) {
	epoch := s.cell.set(QuestionState{Phase: PhaseLoading})
	res := s.repository.ProcessImage(ctx, imageRef)
	s.cell.complete(epoch, questionStateFrom(res))
}

// SetError publishes an error produced by an external collaborator, such as a
// failed OCR extraction, without touching the repository.
func (s *QuestionSession) SetError(message string) {
	s.cell.set(QuestionState{Phase: PhaseError, Message: message})
}

// ResetState forces the session back to idle from any state.
func (s *QuestionSession) ResetState() {
	s.cell.set(QuestionState{Phase: PhaseIdle})
}

func questionStateFrom(res result.Result[answer.Answer]) QuestionState {
	if ans, ok := res.Value(); ok {
		return QuestionState{Phase: PhaseSuccess, Answer: ans}
	}
	if message, ok := res.Message(); ok {
		return QuestionState{Phase: PhaseError, Message: message}
	}
	return QuestionState{Phase: PhaseLoading}
}
