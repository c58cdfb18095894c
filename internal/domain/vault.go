package domain

import "fmt"

type ItemType string

const (
	ItemTypeSecret ItemType = "secret"
	ItemTypeFolder ItemType = "folder"
)

type VaultItem struct {
	Type     ItemType
	Versions []ItemVersion
}

type ItemVersion struct {
	Version int
	// Secret is only populated for items of type secret.
	Secret string
}

// LatestSecret returns the secret value held by the last version of the first
// item. Items are expected in the order the vault returned them. Errors do not
// name the item; callers add that context.
func LatestSecret(items []VaultItem) (string, error) {
	if len(items) == 0 {
		return "", ErrSecretNotFound
	}

	item := items[0]
	if item.Type != ItemTypeSecret {
		return "", fmt.Errorf("type %q: %w", item.Type, ErrUnexpectedItemType)
	}
	if len(item.Versions) == 0 {
		return "", ErrNoItemVersions
	}

	latest := item.Versions[len(item.Versions)-1]
	if latest.Secret == "" {
		return "", fmt.Errorf("version %d: %w", latest.Version, ErrEmptySecretValue)
	}

	return latest.Secret, nil
}
