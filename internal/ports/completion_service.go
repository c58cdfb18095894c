package ports

import (
	"context"

	"github.com/bnema/vaultchat/internal/domain"
)

type CompletionService interface {
	StreamChat(ctx context.Context, model string, prompt string) (ChatStream, error)
}

// ChatStream is a forward-only sequence of completion chunks. Recv returns
// io.EOF once the stream is exhausted.
type ChatStream interface {
	Recv() (domain.Chunk, error)
	Close() error
}

// CompletionFactory builds a CompletionService authenticated with apiKey.
type CompletionFactory func(apiKey string) (CompletionService, error)
