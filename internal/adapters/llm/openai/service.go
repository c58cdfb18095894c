// Package openai streams chat completions from the OpenAI Chat Completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bnema/vaultchat/internal/domain"
	"github.com/bnema/vaultchat/internal/ports"
	goopenai "github.com/sashabaranov/go-openai"
)

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*options)

// WithBaseURL overrides the API base URL, including the version prefix
// (e.g. "http://localhost:8080/v1").
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(url, "/") }
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

type Service struct {
	client *goopenai.Client
	logger *slog.Logger
}

var _ ports.CompletionService = (*Service)(nil)

func NewService(apiKey string, opts ...Option) (*Service, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai api key is empty")
	}

	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := goopenai.DefaultConfig(apiKey)
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.httpClient != nil {
		cfg.HTTPClient = o.httpClient
	}

	return &Service{client: goopenai.NewClientWithConfig(cfg), logger: o.logger}, nil
}

// Factory builds services that share opts and differ only by API key.
func Factory(opts ...Option) ports.CompletionFactory {
	return func(apiKey string) (ports.CompletionService, error) {
		return NewService(apiKey, opts...)
	}
}

// StreamChat opens a streamed completion for a single user message.
func (s *Service) StreamChat(ctx context.Context, model string, prompt string) (ports.ChatStream, error) {
	stream, err := s.client.CreateChatCompletionStream(ctx, goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Stream: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open chat completion stream: %w", err)
	}

	s.logger.DebugContext(ctx, "chat completion stream opened", slog.String("model", model))

	return &chatStream{stream: stream}, nil
}

type chatStream struct {
	stream *goopenai.ChatCompletionStream
}

func (c *chatStream) Recv() (domain.Chunk, error) {
	response, err := c.stream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Chunk{}, io.EOF
		}
		return domain.Chunk{}, fmt.Errorf("receive chat completion chunk: %w", err)
	}

	chunk := domain.Chunk{Choices: make([]domain.ChoiceDelta, 0, len(response.Choices))}
	for _, choice := range response.Choices {
		chunk.Choices = append(chunk.Choices, domain.ChoiceDelta{
			Index:   choice.Index,
			Content: choice.Delta.Content,
		})
	}

	return chunk, nil
}

func (c *chatStream) Close() error {
	return c.stream.Close()
}
