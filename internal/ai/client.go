package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/transformhub/dashboard/internal/app/domain/initiative"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o"
	defaultTimeout = 30 * time.Second
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ Generator = (*Client)(nil)

// ClientConfig configures the completion client. Zero values fall back to
// the OpenAI defaults.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// NewClient creates a completion client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, req completionRequest) (string, error) {
	url := c.baseURL + "/chat/completions"

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API error: %d - %s", resp.StatusCode, string(body))
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// CompleteChat answers a dashboard chat message, optionally grounded on
// extra context.
func (c *Client) CompleteChat(ctx context.Context, message, promptContext string) (string, error) {
	system := `Вие сте AI асистент за дигитална трансформация. Отговаряйте на български език и помагайте с:
- Стратегии за дигитална трансформация
- Управление на проекти и инициативи
- Анализ на процеси и оптимизация
- Препоръки за технологии
- Планиране и изпълнение на промени

Бъдете професионални, полезни и конкретни в отговорите си.`
	if promptContext != "" {
		system += "\n\nКонтекст: " + promptContext
	}

	content, err := c.complete(ctx, completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}
	if content == "" {
		return "Съжалявам, не мога да генерирам отговор в момента.", nil
	}
	return content, nil
}

// SummarizeMeeting produces a structured summary of meeting notes.
func (c *Client) SummarizeMeeting(ctx context.Context, notes string) (string, error) {
	content, err := c.complete(ctx, completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "Вие сте AI асистент, който генерира резюмета на срещи на български език. Създайте структурирано резюме с ключови точки, решения и следващи стъпки.",
			},
			{
				Role:    "user",
				Content: "Моля, генерирайте резюме на тази среща:\n\n" + notes,
			},
		},
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return "", err
	}
	if content == "" {
		return "Не може да се генерира резюме.", nil
	}
	return content, nil
}

// AnalyzeDocument produces a summary-and-recommendations analysis of an
// uploaded document.
func (c *Client) AnalyzeDocument(ctx context.Context, content, filename string) (string, error) {
	analysis, err := c.complete(ctx, completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "Вие сте AI анализатор на документи. Анализирайте документа и предоставете резюме, ключови точки и препоръки на български език.",
			},
			{
				Role:    "user",
				Content: fmt.Sprintf("Анализирайте този документ %q:\n\n%s", filename, content),
			},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}
	if analysis == "" {
		return "Не може да се анализира документът.", nil
	}
	return analysis, nil
}

// ExtractActionItems pulls structured action items out of meeting notes. The
// model is asked for a JSON object with an "actions" array; anything that
// does not parse is an error and the caller degrades to an empty list.
func (c *Client) ExtractActionItems(ctx context.Context, notes string) ([]ExtractedAction, error) {
	content, err := c.complete(ctx, completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: `Извлечете действия от бележките за срещата и върнете ги като JSON масив. Отговорете в JSON формат с полета:
{
  "actions": [
    {
      "title": "заглавие на действието",
      "description": "описание на действието",
      "priority": "high|medium|low",
      "assignee": "отговорник (ако е споменат)"
    }
  ]
}`,
			},
			{
				Role:    "user",
				Content: "Извлечете действия от тези бележки:\n\n" + notes,
			},
		},
		Temperature:    0.3,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Actions []ExtractedAction `json:"actions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse extracted actions: %w", err)
	}
	return parsed.Actions, nil
}

// SummarizeProgress produces insights over the current initiative portfolio.
func (c *Client) SummarizeProgress(ctx context.Context, initiatives []initiative.Initiative) (string, error) {
	var sb strings.Builder
	for _, in := range initiatives {
		fmt.Fprintf(&sb, "%s: %d%% (%s, приоритет: %s)\n", in.Title, in.Progress, in.Status, in.Priority)
	}

	content, err := c.complete(ctx, completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "Анализирайте прогреса на инициативите и предоставете прозрения, препоръки и следващи стъпки на български език.",
			},
			{
				Role:    "user",
				Content: "Анализирайте този прогрес на инициативи:\n\n" + sb.String(),
			},
		},
		Temperature: 0.5,
		MaxTokens:   800,
	})
	if err != nil {
		return "", err
	}
	if content == "" {
		return "Не може да се генерират прозрения за прогреса.", nil
	}
	return content, nil
}
