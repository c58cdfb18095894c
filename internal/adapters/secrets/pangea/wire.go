package pangea

import "github.com/bnema/vaultchat/internal/domain"

type getBulkRequest struct {
	Filter map[string]string `json:"filter"`
	Size   int               `json:"size"`
}

type getBulkResponse struct {
	RequestID string         `json:"request_id"`
	Status    string         `json:"status"`
	Summary   string         `json:"summary"`
	Result    *getBulkResult `json:"result"`
}

type getBulkResult struct {
	Items []item `json:"items"`
	Count int    `json:"count"`
}

type item struct {
	Type         string        `json:"type"`
	ItemVersions []itemVersion `json:"item_versions"`
}

type itemVersion struct {
	Version int    `json:"version"`
	Secret  string `json:"secret"`
}

func (r *getBulkResult) domainItems() []domain.VaultItem {
	items := make([]domain.VaultItem, 0, len(r.Items))
	for _, it := range r.Items {
		versions := make([]domain.ItemVersion, 0, len(it.ItemVersions))
		for _, v := range it.ItemVersions {
			versions = append(versions, domain.ItemVersion{
				Version: v.Version,
				Secret:  v.Secret,
			})
		}

		items = append(items, domain.VaultItem{
			Type:     domain.ItemType(it.Type),
			Versions: versions,
		})
	}
	return items
}
