package ports

import "context"

// SecretStore resolves the current value of a secret item held in a vault.
type SecretStore interface {
	FetchLatestVersion(ctx context.Context, itemID string) (string, error)
}
