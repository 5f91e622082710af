package repository

import (
	"context"
	"errors"
	"testing"

	mock_translate "github.com/cj5427533/BilingualBuddy/internal/mocks/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTranslateRepository_Translate(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		setupMock func(m *mock_translate.MockTranslator)

		wantSuccess string
		wantMessage string
	}{
		{
			name: "Success wraps the translated text",
			text: "안녕하세요",
			setupMock: func(m *mock_translate.MockTranslator) {
				m.EXPECT().
					Translate(gomock.Any(), "안녕하세요", "ko", "vi").
					Return("Xin chào", nil)
			},
			wantSuccess: "Xin chào",
		},
		{
			name: "Translator failure message is passed through",
			text: "안녕하세요",
			setupMock: func(m *mock_translate.MockTranslator) {
				m.EXPECT().
					Translate(gomock.Any(), "안녕하세요", "ko", "vi").
					Return("", errors.New("번역 API 오류: 401"))
			},
			wantMessage: "번역 API 오류: 401",
		},
		{
			name: "Translator failure without message uses the fallback",
			text: "안녕하세요",
			setupMock: func(m *mock_translate.MockTranslator) {
				m.EXPECT().
					Translate(gomock.Any(), "안녕하세요", "ko", "vi").
					Return("", errors.New(""))
			},
			wantMessage: TranslateUnknownErrorMessage,
		},
		{
			name: "Blank text - translator is never called",
			text: "  ",
			setupMock: func(m *mock_translate.MockTranslator) {
				m.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantMessage: BlankTextMessage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockTranslator := mock_translate.NewMockTranslator(ctrl)
			tc.setupMock(mockTranslator)

			repo := NewTranslateRepository(mockTranslator)
			res := repo.Translate(context.Background(), tc.text, "ko", "vi")

			if tc.wantMessage != "" {
				message, failed := res.Message()
				require.True(t, failed)
				assert.Equal(t, tc.wantMessage, message)
				return
			}
			got, ok := res.Value()
			require.True(t, ok)
			assert.Equal(t, tc.wantSuccess, got)
		})
	}
}
