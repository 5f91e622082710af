// Package openai implements the answer provider backed by the OpenAI chat
// completions API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/cj5427533/BilingualBuddy/internal/answer"
	"github.com/cj5427533/BilingualBuddy/internal/provider"
	"resty.dev/v3"
)

const promptTemplate = "아래 문장을 베트남어로 요약해주고, 한국어로 해설해주고, 베트남어 발음도 알려줘. 결과는 각각 [베트남어 요약], [한국어 설명], [발음]으로 구분해서 반환해줘. 문장: %s"

// MissingAPIKeyMessage is surfaced when the client is constructed without a key.
const MissingAPIKeyMessage = "OpenAI API 키가 설정되지 않았습니다. OPENAI_API_KEY 환경 변수를 설정해주세요."

type Client struct {
	httpClient       *resty.Client
	apiKey           string
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		apiKey:           apiKey,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// errorEnvelope is the error payload the API returns for non-2xx statuses.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// apiError carries the upstream status code alongside the user-facing message.
type apiError struct {
	statusCode int
	message    string
}

func (e *apiError) Error() string {
	return e.message
}

// classifyError turns a non-2xx response into the message shown to the user.
func classifyError(statusCode int, body []byte) *apiError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Message == "" {
		return &apiError{
			statusCode: statusCode,
			message:    fmt.Sprintf("OpenAI API 오류: %d - %s", statusCode, string(body)),
		}
	}

	message := envelope.Error.Message
	code := envelope.Error.Code
	switch {
	case code == "model_not_found" || strings.Contains(message, "does not have access to model"):
		return &apiError{statusCode: statusCode, message: "사용 가능한 모델이 없습니다. OpenAI 계정 설정을 확인해주세요."}
	case statusCode == http.StatusUnauthorized:
		return &apiError{statusCode: statusCode, message: "API 키가 유효하지 않습니다. OPENAI_API_KEY 설정을 확인해주세요."}
	case statusCode == http.StatusForbidden:
		return &apiError{statusCode: statusCode, message: "API 접근 권한이 없습니다. OpenAI 계정의 모델 접근 권한을 확인해주세요."}
	case statusCode == http.StatusTooManyRequests:
		return &apiError{statusCode: statusCode, message: "API 사용량 한도를 초과했습니다. 잠시 후 다시 시도해주세요."}
	default:
		return &apiError{statusCode: statusCode, message: fmt.Sprintf("OpenAI API 오류 (%d): %s", statusCode, message)}
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *apiError
	if errors.As(err, &apiErr) {
		// Retry on 5xx (server errors) and rate limiting (429)
		return apiErr.statusCode >= 500 || apiErr.statusCode == http.StatusTooManyRequests
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	return false
}

// GetAnswer implements the provider.Provider interface
func (client *Client) GetAnswer(ctx context.Context, question string) (answer.Answer, error) {
	var result answer.Answer
	if err := retry.Do(
		func() error {
			response, err := client.getAnswer(ctx, question)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return answer.Answer{}, err
	}
	return result, nil
}

func (client *Client) getAnswer(ctx context.Context, question string) (answer.Answer, error) {
	if strings.TrimSpace(client.apiKey) == "" {
		return answer.Answer{}, errors.New(MissingAPIKeyMessage)
	}

	requestBody := ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{
				Role:    RoleUser,
				Content: fmt.Sprintf(promptTemplate, question),
			},
		},
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return answer.Answer{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		apiErr := classifyError(response.StatusCode(), []byte(response.String()))
		slog.Default().Error("OpenAI API returned an error",
			"statusCode", response.StatusCode(),
			"message", apiErr.message,
		)
		return answer.Answer{}, apiErr
	}

	responseBody, ok := response.Result().(*ChatCompletionResponse)
	if !ok || responseBody == nil || len(responseBody.Choices) == 0 {
		return answer.Answer{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return answer.Answer{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)

	return ParseAnswer(content), nil
}

// ProcessImage implements the provider.Provider interface. The chat
// completions route only accepts text, so images must go through OCR first.
func (client *Client) ProcessImage(ctx context.Context, imageRef string) (answer.Answer, error) {
	return answer.Answer{}, errors.New(provider.ImageUnsupportedMessage)
}
