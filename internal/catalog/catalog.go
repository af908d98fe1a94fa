package catalog

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/pagekit/internal/apperr"
	"github.com/DjordjeVuckovic/pagekit/pkg/wiretime"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Item is one catalog entry served by the paging API
type Item struct {
	ID      uuid.UUID         `json:"id" yaml:"id"`
	Name    string            `json:"name" yaml:"name"`
	Created wiretime.DateTime `json:"created" yaml:"created"`
	Updated wiretime.DateTime `json:"updated,omitzero" yaml:"updated,omitempty"`
}

type document struct {
	Kind    string `yaml:"kind"`
	Version string `yaml:"version"`
	Items   []Item `yaml:"items"`
}

// Catalog is an immutable, ordered list of items
type Catalog struct {
	items []Item
	index map[uuid.UUID]int
}

// New validates items and builds a catalog ordered by creation time, then ID
func New(items []Item) (*Catalog, error) {
	index := make(map[uuid.UUID]int, len(items))
	for i, it := range items {
		if it.ID == uuid.Nil {
			return nil, apperr.NewValidation(fmt.Sprintf("item %d: id is required", i))
		}
		if strings.TrimSpace(it.Name) == "" {
			return nil, apperr.NewValidation(fmt.Sprintf("item %s: name is required", it.ID))
		}
		if _, ok := index[it.ID]; ok {
			return nil, apperr.NewValidation(fmt.Sprintf("item %s: duplicate id", it.ID))
		}
		index[it.ID] = i
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		if c := a.Created.Compare(b.Created.Time); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	for i, it := range sorted {
		index[it.ID] = i
	}

	return &Catalog{items: sorted, index: index}, nil
}

// Load decodes a YAML catalog document from reader
func Load(reader io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(reader)
	var doc document
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return New(nil)
		}
		return nil, apperr.NewValidationWrap("invalid catalog document", err)
	}
	if doc.Kind != "" && doc.Kind != "Catalog" {
		return nil, apperr.NewValidation(fmt.Sprintf("unexpected document kind %q", doc.Kind))
	}
	return New(doc.Items)
}

// LoadFile opens path and loads it as a catalog
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Slice returns up to n items starting at offset
func (c *Catalog) Slice(offset, n int) []Item {
	if offset < 0 || offset >= len(c.items) || n <= 0 {
		return []Item{}
	}
	end := min(offset+n, len(c.items))
	return slices.Clone(c.items[offset:end])
}

// After returns up to n items following the item with the given ID.
// An unknown cursor is a validation error.
func (c *Catalog) After(cursor string, n int) ([]Item, error) {
	if cursor == "" {
		return c.Slice(0, n), nil
	}

	id, err := DecodeCursor(cursor)
	if err != nil {
		return nil, err
	}
	pos, ok := c.index[id]
	if !ok {
		return nil, apperr.NewValidation("cursor does not match any item")
	}
	return c.Slice(pos+1, n), nil
}

// EncodeCursor converts an item ID to an opaque offset token
func EncodeCursor(it Item) (string, error) {
	if it.ID == uuid.Nil {
		return "", fmt.Errorf("cursor ID cannot be nil")
	}
	return base64.RawURLEncoding.EncodeToString(it.ID[:]), nil
}

// DecodeCursor parses an opaque offset token back to an item ID
func DecodeCursor(s string) (uuid.UUID, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("failed to decode cursor", err)
	}
	id, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid cursor", err)
	}
	return id, nil
}
