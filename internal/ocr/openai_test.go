package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	// Minimal PNG header so content type detection sees an image.
	imagePath := filepath.Join(t.TempDir(), "homework.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("\x89PNG\r\n\x1a\nfake"), 0644))
	return imagePath
}

func newTestExtractor(t *testing.T, handler http.HandlerFunc) *OpenAIExtractor {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &OpenAIExtractor{
		httpClient: resty.New().SetBaseURL(server.URL),
		model:      "gpt-4o-mini",
	}
}

func visionReply(content string) string {
	body := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	encoded, _ := json.Marshal(body)
	return string(encoded)
}

func TestOpenAIExtractor_ExtractText(t *testing.T) {
	t.Run("Extracted text is returned trimmed", func(t *testing.T) {
		extractor := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)

			var request visionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "gpt-4o-mini", request.Model)
			require.Len(t, request.Messages, 1)
			require.Len(t, request.Messages[0].Content, 2)
			assert.Equal(t, extractPrompt, request.Messages[0].Content[0].Text)
			require.NotNil(t, request.Messages[0].Content[1].ImageURL)
			assert.True(t, strings.HasPrefix(request.Messages[0].Content[1].ImageURL.URL, "data:image/png;base64,"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(visionReply("  물의 화학식은 뭐야?  \n")))
		})

		res := extractor.ExtractText(context.Background(), writeTestImage(t))
		text, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, "물의 화학식은 뭐야?", text)
	})

	t.Run("Missing image file fails without a request", func(t *testing.T) {
		extractor := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		res := extractor.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
		message, failed := res.Message()
		require.True(t, failed)
		assert.Contains(t, message, "OCR 처리 중 오류가 발생했습니다")
	})

	t.Run("Blank extraction reports no text found", func(t *testing.T) {
		extractor := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(visionReply("   ")))
		})

		res := extractor.ExtractText(context.Background(), writeTestImage(t))
		message, failed := res.Message()
		require.True(t, failed)
		assert.Equal(t, NoTextFoundMessage, message)
	})

	t.Run("API error status fails", func(t *testing.T) {
		extractor := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		res := extractor.ExtractText(context.Background(), writeTestImage(t))
		message, failed := res.Message()
		require.True(t, failed)
		assert.Contains(t, message, "status code 500")
	})

	t.Run("Missing choices fails", func(t *testing.T) {
		extractor := newTestExtractor(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices": []}`))
		})

		res := extractor.ExtractText(context.Background(), writeTestImage(t))
		message, failed := res.Message()
		require.True(t, failed)
		assert.Contains(t, message, "empty response")
	})
}
