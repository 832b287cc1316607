package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sharapu/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// Seed is the import file shape: {items: [...]}.
type Seed struct {
	Items []model.ContentItem `json:"items" yaml:"items"`
}

// DefaultCategories are the interview page chips, in display order.
func DefaultCategories() []string {
	return []string{
		"For those looking for work",
		"For those who want to order work",
		"Beginner's Guide",
		"SharApu NEWS",
	}
}

// DefaultContent returns the built-in interview listing.
func DefaultContent() ([]model.ContentItem, error) {
	return ParseSeed("default.yaml", defaultSeed)
}

// LoadSeedFile reads a YAML or JSON seed file.
func LoadSeedFile(path string) ([]model.ContentItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(path, b)
}

// ParseSeed decodes seed bytes. The format follows the file extension
// (.json, otherwise YAML). Missing ids are generated; duplicate ids are an error.
func ParseSeed(name string, b []byte) ([]model.ContentItem, error) {
	var seed Seed
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&seed); err != nil {
			return nil, fmt.Errorf("parse seed %s: %w", name, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&seed); err != nil {
			return nil, fmt.Errorf("parse seed %s: %w", name, err)
		}
	}

	items := seed.Items
	if items == nil {
		items = []model.ContentItem{}
	}
	for i := range items {
		items[i].Title = strings.TrimSpace(items[i].Title)
		items[i].Category = strings.TrimSpace(items[i].Category)
		if items[i].Title == "" {
			return nil, fmt.Errorf("parse seed %s: item %d has no title", name, i)
		}
	}
	if err := checkDuplicateIDs(items); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", name, err)
	}
	if err := assignMissingIDs(items); err != nil {
		return nil, err
	}
	return items, nil
}

func checkDuplicateIDs(items []model.ContentItem) error {
	seen := map[string]int{}
	for i, it := range items {
		id := strings.TrimSpace(it.ID)
		if id == "" {
			continue
		}
		if j, ok := seen[id]; ok {
			return fmt.Errorf("duplicate id %q (items %d and %d)", id, j, i)
		}
		seen[id] = i
	}
	return nil
}
