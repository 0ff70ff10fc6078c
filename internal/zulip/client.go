package zulip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/update-tracker-bot/internal/domain/contract"
	"github.com/diegoclair/update-tracker-bot/internal/domain/entity"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-success response from the Zulip API.
type APIError struct {
	StatusCode int
	Code       string
	Msg        string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("zulip api error (%d %s): %s", e.StatusCode, e.Code, e.Msg)
	}
	return fmt.Sprintf("zulip api error (%d): %s", e.StatusCode, e.Msg)
}

type Client struct {
	site       string
	email      string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(site, email, apiKey string, opts ...Option) *Client {
	c := &Client{
		site:       strings.TrimRight(site, "/"),
		email:      email,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ contract.ChatClient = (*Client)(nil)

type response struct {
	Result string `json:"result"`
	Msg    string `json:"msg"`
	Code   string `json:"code"`
}

type messagesResponse struct {
	response
	Messages    []message `json:"messages"`
	FoundOldest bool      `json:"found_oldest"`
}

type message struct {
	ID             int64  `json:"id"`
	SenderEmail    string `json:"sender_email"`
	SenderFullName string `json:"sender_full_name"`
	Timestamp      int64  `json:"timestamp"`
	Content        string `json:"content"`
}

type narrow struct {
	Operator string `json:"operator"`
	Operand  string `json:"operand"`
}

func (c *Client) SendChannelMessage(ctx context.Context, channel, topic, content string) error {
	form := url.Values{
		"type":    {"stream"},
		"to":      {channel},
		"topic":   {topic},
		"content": {content},
	}

	var resp response
	if err := c.do(ctx, http.MethodPost, "/api/v1/messages", form, &resp); err != nil {
		return fmt.Errorf("failed to send message to #%s > %s: %w", channel, topic, err)
	}
	return nil
}

func (c *Client) SendPrivateMessage(ctx context.Context, recipients []string, content string) error {
	to, err := json.Marshal(recipients)
	if err != nil {
		return fmt.Errorf("failed to encode recipients: %w", err)
	}

	form := url.Values{
		"type":    {"private"},
		"to":      {string(to)},
		"content": {content},
	}

	var resp response
	if err := c.do(ctx, http.MethodPost, "/api/v1/messages", form, &resp); err != nil {
		return fmt.Errorf("failed to send private message to %s: %w", strings.Join(recipients, ", "), err)
	}
	return nil
}

func (c *Client) GetMessages(ctx context.Context, query entity.MessageQuery) (entity.MessagePage, error) {
	narrows := []narrow{{Operator: "stream", Operand: query.Channel}}
	if query.Topic != "" {
		narrows = append(narrows, narrow{Operator: "topic", Operand: query.Topic})
	}
	narrowJSON, err := json.Marshal(narrows)
	if err != nil {
		return entity.MessagePage{}, fmt.Errorf("failed to encode narrow: %w", err)
	}

	anchor := query.Anchor
	if anchor == "" {
		anchor = entity.AnchorNewest
	}

	params := url.Values{
		"anchor":     {anchor},
		"num_before": {strconv.Itoa(query.NumBefore)},
		"num_after":  {"0"},
		"narrow":     {string(narrowJSON)},
	}

	var resp messagesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/messages", params, &resp); err != nil {
		return entity.MessagePage{}, fmt.Errorf("failed to get messages from #%s > %s: %w", query.Channel, query.Topic, err)
	}

	page := entity.MessagePage{
		Messages: make([]entity.Message, 0, len(resp.Messages)),
		More:     !resp.FoundOldest,
	}
	var oldest int64
	for i, m := range resp.Messages {
		page.Messages = append(page.Messages, entity.Message{
			ID:                strconv.FormatInt(m.ID, 10),
			SenderUsername:    m.SenderEmail,
			SenderDisplayName: m.SenderFullName,
			Timestamp:         m.Timestamp,
			Content:           m.Content,
		})
		if i == 0 || m.ID < oldest {
			oldest = m.ID
		}
	}
	if len(resp.Messages) > 0 {
		page.Oldest = strconv.FormatInt(oldest, 10)
	}

	return page, nil
}

// Mention renders a notifying @-mention of the member's full name.
func (c *Client) Mention(member entity.Member) string {
	name := member.DisplayName
	if name == "" {
		name = member.Username
	}
	return fmt.Sprintf("@**%s**", name)
}

type envelope interface {
	status() response
}

func (r response) status() response { return r }

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out envelope) error {
	endpoint := c.site + path

	var body io.Reader
	if method == http.MethodGet {
		endpoint += "?" + params.Encode()
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{StatusCode: res.StatusCode, Msg: strings.TrimSpace(string(raw))}
	}

	status := out.status()
	if status.Result != "success" {
		return &APIError{StatusCode: res.StatusCode, Code: status.Code, Msg: status.Msg}
	}

	return nil
}
