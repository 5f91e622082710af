package server_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cj5427533/BilingualBuddy/internal/answer"
	mock_translate "github.com/cj5427533/BilingualBuddy/internal/mocks/translate"
	"github.com/cj5427533/BilingualBuddy/internal/provider/rulebased"
	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/server"
)

func newTestServer(t *testing.T, translator *mock_translate.MockTranslator) *httptest.Server {
	t.Helper()
	h := server.NewHandler(
		repository.NewAnswerRepository(rulebased.NewProvider(rulebased.WithLatency(0))),
		repository.NewTranslateRepository(translator),
	)
	srv := httptest.NewServer(h.NewMux())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = res.Body.Close()
	})
	return res
}

func TestHandler_Answers(t *testing.T) {
	ctrl := gomock.NewController(t)
	translator := mock_translate.NewMockTranslator(ctrl)

	srv := newTestServer(t, translator)

	t.Run("Known question returns the full answer", func(t *testing.T) {
		res := postJSON(t, srv.URL+"/v1/answers", map[string]string{"question": "2+4는 뭐야?"})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body struct {
			Answer answer.Answer `json:"answer"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Contains(t, body.Answer.VietnameseSummary, "2 cộng 4 bằng 6")
		assert.Contains(t, body.Answer.Pronunciation, "hai công bốn bằng sáu")
	})

	t.Run("Blank question returns an error message", func(t *testing.T) {
		res := postJSON(t, srv.URL+"/v1/answers", map[string]string{"question": "   "})
		require.Equal(t, http.StatusBadRequest, res.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, repository.BlankQuestionMessage, body.Error)
	})

	t.Run("Malformed body is rejected", func(t *testing.T) {
		res, err := http.Post(srv.URL+"/v1/answers", "application/json", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("Wrong method is not routed", func(t *testing.T) {
		res, err := http.Get(srv.URL + "/v1/answers")
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	})
}

func TestHandler_Translations(t *testing.T) {
	t.Run("Successful translation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mock_translate.NewMockTranslator(ctrl)
		translator.EXPECT().
			Translate(gomock.Any(), "안녕하세요", "ko", "vi").
			Return("Xin chào", nil)

		srv := newTestServer(t, translator)

		res := postJSON(t, srv.URL+"/v1/translations", map[string]string{
			"text":   "안녕하세요",
			"source": "ko",
			"target": "vi",
		})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body struct {
			TranslatedText string `json:"translated_text"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, "Xin chào", body.TranslatedText)
	})

	t.Run("Translator failure surfaces its message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mock_translate.NewMockTranslator(ctrl)
		translator.EXPECT().
			Translate(gomock.Any(), "안녕하세요", "ko", "vi").
			Return("", errors.New("번역 API 오류: 401"))

		srv := newTestServer(t, translator)

		res := postJSON(t, srv.URL+"/v1/translations", map[string]string{
			"text":   "안녕하세요",
			"source": "ko",
			"target": "vi",
		})
		require.Equal(t, http.StatusBadRequest, res.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		assert.Equal(t, "번역 API 오류: 401", body.Error)
	})
}

func TestHandler_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, mock_translate.NewMockTranslator(ctrl))

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
