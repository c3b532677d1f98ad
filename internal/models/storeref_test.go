package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStoreReference(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StoreReference
	}{
		{
			name: "bare id",
			raw:  "1AbCdEfGhIjK",
			want: StoreReference{ID: "1AbCdEfGhIjK"},
		},
		{
			name: "bare id with tab",
			raw:  "1AbCdEfGhIjK#tab=Responses",
			want: StoreReference{ID: "1AbCdEfGhIjK", Tab: "Responses"},
		},
		{
			name: "url with doc path",
			raw:  "https://docs.example.com/spreadsheets/d/1AbCdEfGhIjK_-xyz/edit",
			want: StoreReference{ID: "1AbCdEfGhIjK_-xyz"},
		},
		{
			name: "url with doc path and escaped tab",
			raw:  "https://docs.example.com/spreadsheets/d/1AbCdEfGhIjK/edit#tab=Form+Responses%201",
			want: StoreReference{ID: "1AbCdEfGhIjK", Tab: "Form Responses 1"},
		},
		{
			name: "url with id query",
			raw:  "https://store.example.com/open?id=store_0123456789",
			want: StoreReference{ID: "store_0123456789"},
		},
		{
			name: "surrounding spaces",
			raw:  "  1AbCdEfGhIjK  ",
			want: StoreReference{ID: "1AbCdEfGhIjK"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStoreReference(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStoreReference_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"short",
		"has spaces in it",
		"1AbCdEfGhIjK#sheet=x",
		"https://docs.example.com/spreadsheets/",
		"ftp//broken",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseStoreReference(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidReference))
		})
	}
}

func TestStoreReference_StringRoundTrip(t *testing.T) {
	refs := []StoreReference{
		{ID: "1AbCdEfGhIjK"},
		{ID: "1AbCdEfGhIjK", Tab: "Form Responses 1"},
		{ID: "1AbCdEfGhIjK", Tab: "a#b&c"},
	}
	for _, ref := range refs {
		parsed, err := ParseStoreReference(ref.String())
		require.NoError(t, err)
		assert.Equal(t, ref, parsed)
	}
	assert.True(t, StoreReference{}.IsZero())
}
