package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/nfrund/chatrelay/internal/chat"
	"github.com/nfrund/chatrelay/internal/config"
)

const defaultTimeout = 30 * time.Second

// FallbackReply is returned when the upstream call succeeds but carries no
// usable content. An empty completion is not treated as an error.
const FallbackReply = "Sorry, I couldn't come up with a reply."

// ErrUpstream wraps every failure of the completion API so handlers can map
// it to a single generic response without leaking the cause.
var ErrUpstream = errors.New("upstream completion failed")

// Completer produces an assistant reply for a conversation history.
type Completer interface {
	Complete(ctx context.Context, history []chat.Message) (string, error)
}

// Client calls an OpenAI-compatible chat completion API.
type Client struct {
	api   openai.Client
	model string
}

// NewClient builds the completion client once from configuration. No retries
// are attempted toward the upstream API; a failed call surfaces immediately.
func NewClient(cfg *config.Config) *Client {
	api := openai.NewClient(
		option.WithAPIKey(cfg.OpenAIKey),
		option.WithBaseURL(cfg.OpenAIBaseURL),
		option.WithHTTPClient(&http.Client{Timeout: defaultTimeout}),
		option.WithMaxRetries(0),
	)
	return &Client{api: api, model: cfg.Model}
}

// Complete sends the full history as context and returns the first choice's
// message content, or FallbackReply when the response carries none.
func (c *Client) Complete(ctx context.Context, history []chat.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: toMessageParams(history),
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return FallbackReply, nil
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return FallbackReply, nil
	}
	return content, nil
}

func toMessageParams(history []chat.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case chat.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case chat.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
