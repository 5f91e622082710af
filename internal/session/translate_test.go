package session

import (
	"context"
	"testing"

	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslateRepository struct {
	calls   int
	respond func(text string) result.Result[string]
}

func (f *fakeTranslateRepository) Translate(ctx context.Context, text, sourceLang, targetLang string) result.Result[string] {
	f.calls++
	return f.respond(text)
}

func TestTranslateSession_Translate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		respond func(text string) result.Result[string]

		wantPhase   Phase
		wantText    string
		wantMessage string
		wantCalls   int
	}{
		{
			name: "Success",
			text: "안녕하세요",
			respond: func(text string) result.Result[string] {
				return result.Success("Xin chào")
			},
			wantPhase: PhaseSuccess,
			wantText:  "Xin chào",
			wantCalls: 1,
		},
		{
			name: "Repository error",
			text: "안녕하세요",
			respond: func(text string) result.Result[string] {
				return result.Failure[string]("번역 API 오류: 401")
			},
			wantPhase:   PhaseError,
			wantMessage: "번역 API 오류: 401",
			wantCalls:   1,
		},
		{
			name:        "Blank text - repository is never called",
			text:        " \t ",
			wantPhase:   PhaseError,
			wantMessage: repository.BlankTextMessage,
			wantCalls:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeTranslateRepository{respond: tc.respond}
			sess := NewTranslateSession(repo)

			sess.Translate(context.Background(), tc.text, "ko", "vi")

			state := sess.State()
			require.Equal(t, tc.wantPhase, state.Phase)
			assert.Equal(t, tc.wantText, state.Text)
			assert.Equal(t, tc.wantMessage, state.Message)
			assert.Equal(t, tc.wantCalls, repo.calls)
		})
	}
}

func TestTranslateSession_ResetState(t *testing.T) {
	repo := &fakeTranslateRepository{
		respond: func(text string) result.Result[string] {
			return result.Success("Xin chào")
		},
	}
	sess := NewTranslateSession(repo)

	sess.Translate(context.Background(), "안녕하세요", "ko", "vi")
	require.Equal(t, PhaseSuccess, sess.State().Phase)

	sess.ResetState()
	assert.Equal(t, PhaseIdle, sess.State().Phase)
}
