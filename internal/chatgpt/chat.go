package chatgpt

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
)

const systemMessage = `
Tu es l'assistant d'une station météo. On te donne la météo actuelle en une
ligne après "MÉTÉO". Réponds par une seule phrase courte en français avec un
conseil pratique pour la journée (vêtements, parapluie, activités).
Pas de salutation, pas de commentaire, uniquement la phrase.`

type ChatGPT struct {
	languageModel string
	options       []option.RequestOption
}

// NewChatGPT builds the advisor client; extra options (base URL, retries)
// are passed to every request.
func NewChatGPT(openaiApiKey, languageModel string, opts ...option.RequestOption) *ChatGPT {
	return &ChatGPT{
		languageModel: languageModel,
		options:       append([]option.RequestOption{option.WithAPIKey(openaiApiKey)}, opts...),
	}
}

// Advise returns a one sentence recommendation for the weather
func (c *ChatGPT) Advise(ctx context.Context, weather string) (*string, error) {
	client := openai.NewClient(c.options...)

	slog.Info("sending a message to ChatGPT", "weather", weather)

	prompt := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemMessage),
		openai.UserMessage("MÉTÉO\n" + weather),
	}
	params := openai.ChatCompletionNewParams{
		Messages: prompt,
		Model:    c.languageModel,
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var e *openai.Error
		if errors.As(err, &e) {
			switch e.StatusCode {
			case http.StatusTooManyRequests:
				return nil, errors.New("OpenAI API error: 429 Too many requests")
			case http.StatusForbidden:
				return nil, errors.New("OpenAI API error: 403 Forbidden")
			}
		}
		slog.Error("failed to create completion", "weather", weather, "error", err)
		return nil, errors.Wrap(err, "failed to create completion")
	}

	if len(completion.Choices) > 0 {
		advice := strings.TrimSpace(completion.Choices[0].Message.Content)
		return &advice, nil
	}

	return nil, errors.New("got empty choices from the OpenAI API")
}
