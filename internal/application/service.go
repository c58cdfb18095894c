package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bnema/vaultchat/internal/ports"
)

// ChatRequest names the secret to resolve and the completion to stream.
type ChatRequest struct {
	VaultItemID string
	Model       string
	Prompt      string
}

type Service struct {
	secrets     ports.SecretStore
	completions ports.CompletionFactory
	logger      *slog.Logger
}

func NewService(secrets ports.SecretStore, completions ports.CompletionFactory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{secrets: secrets, completions: completions, logger: logger}
}

// Run resolves the API key and relays the completion stream to out. Nothing
// is written to out unless the secret resolves.
func (s *Service) Run(ctx context.Context, req ChatRequest, out io.Writer) error {
	apiKey, err := s.ResolveSecret(ctx, req.VaultItemID)
	if err != nil {
		return err
	}

	return s.Relay(ctx, apiKey, req, out)
}

func (s *Service) ResolveSecret(ctx context.Context, itemID string) (string, error) {
	apiKey, err := s.secrets.FetchLatestVersion(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("resolve api key from vault: %w", err)
	}
	if apiKey == "" {
		return "", errors.New("resolve api key from vault: empty secret")
	}

	s.logger.DebugContext(ctx, "secret resolved", slog.String("vault_item_id", itemID))

	return apiKey, nil
}

// Relay streams a completion credentialed with apiKey and writes every choice
// delta to out in arrival order, flushing after each write. A single newline
// terminates the output once the stream is exhausted.
func (s *Service) Relay(ctx context.Context, apiKey string, req ChatRequest, out io.Writer) (err error) {
	completions, err := s.completions(apiKey)
	if err != nil {
		return fmt.Errorf("create completion client: %w", err)
	}

	stream, err := completions.StreamChat(ctx, req.Model, req.Prompt)
	if err != nil {
		return fmt.Errorf("stream chat completion: %w", err)
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close chat completion stream: %w", closeErr)
		}
	}()

	var chunks, written int
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("stream chat completion: %w", err)
		}
		chunks++

		for _, choice := range chunk.Choices {
			if choice.Content != "" {
				n, err := io.WriteString(out, choice.Content)
				written += n
				if err != nil {
					return fmt.Errorf("write completion: %w", err)
				}
			}
			if err := flush(out); err != nil {
				return fmt.Errorf("flush completion: %w", err)
			}
		}
		if err := flush(out); err != nil {
			return fmt.Errorf("flush completion: %w", err)
		}
	}

	if _, err := io.WriteString(out, "\n"); err != nil {
		return fmt.Errorf("write completion: %w", err)
	}
	if err := flush(out); err != nil {
		return fmt.Errorf("flush completion: %w", err)
	}

	s.logger.DebugContext(ctx, "chat completion relayed",
		slog.String("model", req.Model),
		slog.Int("chunks", chunks),
		slog.Int("bytes", written),
	)

	return nil
}

type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
