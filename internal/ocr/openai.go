package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/result"
	"resty.dev/v3"
)

const extractPrompt = "이미지에 있는 모든 텍스트를 추출해줘. 설명 없이 추출한 텍스트만 반환해줘."

// OpenAIExtractor reads text out of an image with a vision-capable chat
// completions model.
type OpenAIExtractor struct {
	httpClient *resty.Client
	model      string
}

func NewOpenAIExtractor(apiKey, model string) *OpenAIExtractor {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &OpenAIExtractor{
		httpClient: client,
		model:      model,
	}
}

func (e *OpenAIExtractor) Close() error {
	return e.httpClient.Close()
}

// Vision requests carry mixed text and image content parts, unlike the plain
// string content of the answer provider's messages.
type visionRequest struct {
	Model    string          `json:"model"`
	Messages []visionMessage `json:"messages"`
}

type visionMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractText implements the Extractor interface
func (e *OpenAIExtractor) ExtractText(ctx context.Context, imagePath string) result.Result[string] {
	contents, err := os.ReadFile(imagePath)
	if err != nil {
		return result.Failure[string](fmt.Sprintf(failureMessageFormat, err.Error()))
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(contents),
		base64.StdEncoding.EncodeToString(contents),
	)
	requestBody := visionRequest{
		Model: e.model,
		Messages: []visionMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: extractPrompt},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
	}

	response, err := e.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&visionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return result.Failure[string](fmt.Sprintf(failureMessageFormat, err.Error()))
	}
	if response.IsError() {
		return result.Failure[string](fmt.Sprintf(failureMessageFormat,
			fmt.Sprintf("status code %d", response.StatusCode())))
	}

	responseBody, ok := response.Result().(*visionResponse)
	if !ok || responseBody == nil || len(responseBody.Choices) == 0 {
		return result.Failure[string](fmt.Sprintf(failureMessageFormat, "empty response"))
	}

	text := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	if text == "" {
		return result.Failure[string](NoTextFoundMessage)
	}
	return result.Success(text)
}
