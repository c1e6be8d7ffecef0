package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/prospecta/internal/entity"
	"github.com/xavierca1/prospecta/internal/infra/http/middleware"
	"github.com/xavierca1/prospecta/internal/usecase"
)

const defaultBaseURL = "https://api.openai.com/v1"

type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   "gpt-4",
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateInitial escreve o cold email personalizado do primeiro contato.
func (c *Client) GenerateInitial(ctx context.Context, lead *entity.Lead) (*usecase.Draft, error) {
	industry := lead.Industry
	if industry == "" {
		industry = "business"
	}

	prompt := fmt.Sprintf(
		`Write a brief, personalized cold outreach email (max 120 words) for %s, a %s business. `+
			`Address %s. Mention that I noticed %s. `+
			`Offer a free website audit/sample. Tone: helpful, not salesy. `+
			`Include clear CTA to book a 15-min call.`,
		lead.BusinessName, industry, lead.DecisionMakerName, industry,
	)

	body, err := c.complete(ctx, 0.7,
		"You are an expert sales copywriter specializing in personalized cold outreach.",
		prompt,
	)
	if err != nil {
		return nil, fmt.Errorf("openai generate initial: %w", err)
	}

	return &usecase.Draft{
		Subject: fmt.Sprintf("Quick question for %s", lead.BusinessName),
		Body:    body,
	}, nil
}

// GenerateFollowUp recebe o histórico de emails do lead como contexto.
func (c *Client) GenerateFollowUp(ctx context.Context, lead *entity.Lead, priorEmails []*entity.Email) (*usecase.Draft, error) {
	var history strings.Builder
	for _, email := range priorEmails {
		fmt.Fprintf(&history, "Previous email (%s): %s\n", email.EmailType, email.Subject)
	}

	prompt := fmt.Sprintf(
		`Generate a follow-up email for %s at %s. `+
			`They haven't replied to the previous email yet. Keep it short, helpful, and different from the last one. `+
			`Context: They were offered a free audit.`+"\n%s",
		lead.DecisionMakerName, lead.BusinessName, history.String(),
	)

	body, err := c.complete(ctx, 0.7,
		"You are a helpful assistant following up on a previous outreach.",
		prompt,
	)
	if err != nil {
		return nil, fmt.Errorf("openai generate follow-up: %w", err)
	}

	return &usecase.Draft{
		Subject: fmt.Sprintf("Re: Quick question for %s", lead.BusinessName),
		Body:    body,
	}, nil
}

// ClassifySentiment devolve positive, negative ou neutral.
// Erro de API sobe para o chamador: o loop de ingestão isola por
// mensagem e o próximo ciclo serve de retry.
func (c *Client) ClassifySentiment(ctx context.Context, text string) (string, error) {
	content, err := c.complete(ctx, 0,
		"Analyze the sentiment of the following email reply. Categorize as: POSITIVE, NEGATIVE, or NEUTRAL. "+
			"POSITIVE means interested or asking for more info. NEGATIVE means not interested or asking to stop. "+
			"NEUTRAL is unclear or generic questions.",
		text,
	)
	if err != nil {
		return "", fmt.Errorf("openai classify: %w", err)
	}

	label := strings.ToUpper(strings.TrimSpace(content))
	switch {
	case strings.Contains(label, "POSITIVE"):
		return entity.SentimentPositive, nil
	case strings.Contains(label, "NEGATIVE"):
		return entity.SentimentNegative, nil
	default:
		return entity.SentimentNeutral, nil
	}
}

func (c *Client) complete(ctx context.Context, temperature float64, system, user string) (string, error) {
	payload := chatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("openai")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		middleware.RecordIntegrationError("openai")
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, string(respBody))
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("erro decode openai: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("openai: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openai: resposta sem choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
