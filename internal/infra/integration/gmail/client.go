package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xavierca1/prospecta/internal/infra/http/middleware"
)

const defaultBaseURL = "https://gmail.googleapis.com/gmail/v1"

type Client struct {
	accessToken string
	baseURL     string
	http        *http.Client
}

// NewClient recebe o token OAuth da conta. baseURL vazio usa a API
// oficial, testes apontam para um servidor fake.
func NewClient(accessToken, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		accessToken: accessToken,
		baseURL:     baseURL,
		// Sem timeout a chamada pode travar o ciclo inteiro do loop
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send monta a mensagem RFC 2822 crua, codifica em base64url e envia
// pela conta autenticada. Retorna o ID da mensagem no Gmail.
func (c *Client) Send(ctx context.Context, to, subject, bodyHTML string) (string, error) {
	utf8Subject := fmt.Sprintf("=?utf-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))

	raw := strings.Join([]string{
		"To: " + to,
		"Content-Type: text/html; charset=utf-8",
		"MIME-Version: 1.0",
		"Subject: " + utf8Subject,
		"",
		bodyHTML,
	}, "\n")

	payload := sendMessageRequest{
		Raw: base64.RawURLEncoding.EncodeToString([]byte(raw)),
	}

	var result sendMessageResponse
	endpoint := fmt.Sprintf("%s/users/me/messages/send", c.baseURL)
	if err := c.doJSON(ctx, "POST", endpoint, payload, &result); err != nil {
		middleware.RecordIntegrationError("gmail")
		return "", fmt.Errorf("gmail send: %w", err)
	}

	return result.ID, nil
}

// ListUnreadSince busca mensagens não lidas recebidas depois do corte.
// Mesma query do fluxo original: is:unread category:primary after:<unix>.
func (c *Client) ListUnreadSince(ctx context.Context, since time.Time) ([]Message, error) {
	query := fmt.Sprintf("is:unread category:primary after:%d", since.Unix())
	endpoint := fmt.Sprintf("%s/users/me/messages?q=%s", c.baseURL, url.QueryEscape(query))

	var list listMessagesResponse
	if err := c.doJSON(ctx, "GET", endpoint, nil, &list); err != nil {
		middleware.RecordIntegrationError("gmail")
		return nil, fmt.Errorf("gmail list: %w", err)
	}

	// A listagem só devolve IDs, o From e o snippet vêm do get individual
	messages := make([]Message, 0, len(list.Messages))
	for _, ref := range list.Messages {
		msg, err := c.getMessage(ctx, ref.ID)
		if err != nil {
			middleware.RecordIntegrationError("gmail")
			return nil, fmt.Errorf("gmail get %s: %w", ref.ID, err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// MarkRead remove o label UNREAD. Só deve ser chamado depois da
// Response estar persistida, senão a mensagem se perde num crash.
func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	payload := modifyMessageRequest{RemoveLabelIDs: []string{"UNREAD"}}
	endpoint := fmt.Sprintf("%s/users/me/messages/%s/modify", c.baseURL, messageID)

	if err := c.doJSON(ctx, "POST", endpoint, payload, nil); err != nil {
		middleware.RecordIntegrationError("gmail")
		return fmt.Errorf("gmail modify: %w", err)
	}
	return nil
}

func (c *Client) getMessage(ctx context.Context, id string) (Message, error) {
	endpoint := fmt.Sprintf("%s/users/me/messages/%s?format=metadata&metadataHeaders=From", c.baseURL, id)

	var full getMessageResponse
	if err := c.doJSON(ctx, "GET", endpoint, nil, &full); err != nil {
		return Message{}, err
	}

	var from string
	for _, h := range full.Payload.Headers {
		if h.Name == "From" {
			from = h.Value
			break
		}
	}

	return Message{ID: full.ID, From: from, Snippet: full.Snippet}, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao marshal payload: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gmail api status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
