package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"

	"sharapu/internal/model"
)

const itemIDPrefix = "item"

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32 (lowercase, no padding).
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// IsItemID reports whether s looks like a content item id.
func IsItemID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, itemIDPrefix+"-") && len(s) > len(itemIDPrefix)+1
}

// assignMissingIDs gives every id-less item a fresh unique id.
func assignMissingIDs(items []model.ContentItem) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID != "" {
			seen[it.ID] = true
		}
	}
	for i := range items {
		if strings.TrimSpace(items[i].ID) != "" {
			continue
		}
		for {
			id, err := newRandomID(itemIDPrefix)
			if err != nil {
				return err
			}
			if !seen[id] {
				seen[id] = true
				items[i].ID = id
				break
			}
		}
	}
	return nil
}
