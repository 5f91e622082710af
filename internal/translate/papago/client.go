// Package papago implements the translate.Translator interface against the
// Naver Papago NMT endpoint.
package papago

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://openapi.naver.com"

// MissingCredentialsMessage is surfaced when the client id/secret pair is blank.
const MissingCredentialsMessage = "번역 API 키가 설정되지 않았습니다. PAPAGO_CLIENT_ID와 PAPAGO_CLIENT_SECRET 환경 변수를 설정해주세요."

type Client struct {
	httpClient   *resty.Client
	clientID     string
	clientSecret string
}

type Config struct {
	ClientID     string
	ClientSecret string

	// BaseURL overrides the Papago endpoint. Tests point it at a local server.
	BaseURL string
}

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Client{
		httpClient:   client,
		clientID:     config.ClientID,
		clientSecret: config.ClientSecret,
	}
}

// response mirrors the nested shape Papago returns on success.
type response struct {
	Message struct {
		Result struct {
			TranslatedText string `json:"translatedText"`
		} `json:"result"`
	} `json:"message"`
}

// Translate implements the translate.Translator interface
func (client *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(client.clientID) == "" || strings.TrimSpace(client.clientSecret) == "" {
		return "", errors.New(MissingCredentialsMessage)
	}

	res, err := client.httpClient.R().
		SetContext(ctx).
		SetHeader("X-Naver-Client-Id", client.clientID).
		SetHeader("X-Naver-Client-Secret", client.clientSecret).
		SetFormData(map[string]string{
			"source": sourceLang,
			"target": targetLang,
			"text":   text,
		}).
		Post("/v1/papago/n2mt")
	if err != nil {
		return "", fmt.Errorf("번역 요청 실패: %s", err.Error())
	}
	if res.IsError() {
		return "", fmt.Errorf("번역 API 오류: %d", res.StatusCode())
	}

	var body response
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", fmt.Errorf("번역 결과 파싱 오류: %s", err.Error())
	}
	if body.Message.Result.TranslatedText == "" {
		return "", fmt.Errorf("번역 결과 파싱 오류: translatedText missing in %s", string(res.Body()))
	}
	return body.Message.Result.TranslatedText, nil
}
