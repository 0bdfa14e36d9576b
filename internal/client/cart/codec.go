package cart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

const (
	storageKey    = "cart"
	formatVersion = 1
)

type snapshot struct {
	Version int               `json:"version"`
	Items   []models.CartItem `json:"items"`
}

func encode(items []models.CartItem) ([]byte, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	return json.Marshal(snapshot{Version: formatVersion, Items: items})
}

// decode accepts the versioned layout and the older bare array of items.
func decode(raw []byte) ([]models.CartItem, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var items []models.CartItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var snap snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, err
		}
		if snap.Version > formatVersion {
			return nil, fmt.Errorf("unsupported cart format version %d", snap.Version)
		}
		return snap.Items, nil
	default:
		return nil, fmt.Errorf("unexpected cart payload")
	}
}

// normalize drops unusable lines and merges duplicate (product, size) pairs,
// keeping the first occurrence's position and snapshot.
func normalize(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			continue
		}
		if i := indexOf(out, it.ProductID, it.Size); i >= 0 {
			out[i].Quantity += it.Quantity
			continue
		}
		out = append(out, it)
	}
	return out
}

func indexOf(items []models.CartItem, productID, size string) int {
	for i := range items {
		if items[i].Matches(productID, size) {
			return i
		}
	}
	return -1
}
