package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/pagekit/internal/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
kind: Catalog
version: v1
items:
  - id: "00000000-0000-0000-0000-000000000003"
    name: "third"
    created: "2024-01-03 10:00:00"
  - id: "00000000-0000-0000-0000-000000000001"
    name: "first"
    created: "2024-01-01 10:00:00"
  - id: "00000000-0000-0000-0000-000000000002"
    name: "second"
    created: "2024-01-02T12:00:00+02:00"
    updated: "2024-02-01 08:15:00"
`

func TestLoad_SortsByCreated(t *testing.T) {
	// Arrange
	reader := strings.NewReader(testCatalog)

	// Act
	c, err := Load(reader)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	items := c.Slice(0, 10)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
	assert.Equal(t, "third", items[2].Name)
	assert.Equal(t, "2024-01-02 10:00:00", items[1].Created.String())
	assert.Equal(t, "2024-02-01 08:15:00", items[1].Updated.String())
}

func TestLoad_Empty(t *testing.T) {
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoad_ShouldFail(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "wrong kind",
			doc:  "kind: DataMapping\nitems: []",
		},
		{
			name: "missing id",
			doc:  "items:\n  - name: x\n    created: \"2024-01-01 00:00:00\"",
		},
		{
			name: "missing name",
			doc:  "items:\n  - id: \"00000000-0000-0000-0000-000000000001\"",
		},
		{
			name: "duplicate id",
			doc: "items:\n" +
				"  - id: \"00000000-0000-0000-0000-000000000001\"\n    name: a\n" +
				"  - id: \"00000000-0000-0000-0000-000000000001\"\n    name: b",
		},
		{
			name: "bad date",
			doc:  "items:\n  - id: \"00000000-0000-0000-0000-000000000001\"\n    name: a\n    created: tomorrow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)

			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	c, err := Load(strings.NewReader(testCatalog))
	require.NoError(t, err)

	assert.Len(t, c.Slice(1, 10), 2)
	assert.Len(t, c.Slice(0, 2), 2)
	assert.Empty(t, c.Slice(3, 2))
	assert.Empty(t, c.Slice(-1, 2))
	assert.Empty(t, c.Slice(0, 0))
}

func TestAfter(t *testing.T) {
	c, err := Load(strings.NewReader(testCatalog))
	require.NoError(t, err)

	first := c.Slice(0, 1)[0]
	cursor, err := EncodeCursor(first)
	require.NoError(t, err)

	items, err := c.After(cursor, 5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)

	items, err = c.After("", 1)
	require.NoError(t, err)
	assert.Equal(t, "first", items[0].Name)
}

func TestAfter_InvalidCursor(t *testing.T) {
	c, err := Load(strings.NewReader(testCatalog))
	require.NoError(t, err)

	unknown, err := EncodeCursor(Item{ID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")})
	require.NoError(t, err)

	for _, cursor := range []string{"not-valid-base64!!!", "AAAA", unknown} {
		t.Run(cursor, func(t *testing.T) {
			_, err := c.After(cursor, 5)
			var ve *apperr.ValidationError
			assert.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
		})
	}
}

func TestEncodeCursor_NilID(t *testing.T) {
	_, err := EncodeCursor(Item{})
	assert.Error(t, err)
}
