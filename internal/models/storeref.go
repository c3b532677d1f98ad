package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// storeIDPattern допустимый формат идентификатора хранилища
var storeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{10,}$`)

// docPathPattern извлекает идентификатор из URL вида .../d/<id>/...
var docPathPattern = regexp.MustCompile(`/d/([A-Za-z0-9_-]{10,})`)

const tabFragmentPrefix = "tab="

// StoreReference points at an external tabular store and, optionally, a named tab in it.
type StoreReference struct {
	ID  string `json:"id"`
	Tab string `json:"tab,omitempty"`
}

// ParseStoreReference принимает голый идентификатор или URL с идентификатором,
// с необязательным суффиксом #tab=<name>
func ParseStoreReference(raw string) (StoreReference, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StoreReference{}, fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}

	body, fragment, _ := strings.Cut(raw, "#")

	var tab string
	if fragment != "" {
		if !strings.HasPrefix(fragment, tabFragmentPrefix) {
			return StoreReference{}, fmt.Errorf("%w: unsupported fragment %q", ErrInvalidReference, fragment)
		}
		decoded, err := url.QueryUnescape(strings.TrimPrefix(fragment, tabFragmentPrefix))
		if err != nil {
			return StoreReference{}, fmt.Errorf("%w: bad tab name: %v", ErrInvalidReference, err)
		}
		tab = decoded
	}

	// Голый идентификатор
	if storeIDPattern.MatchString(body) {
		return StoreReference{ID: body, Tab: tab}, nil
	}

	u, err := url.Parse(body)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return StoreReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, raw)
	}

	if m := docPathPattern.FindStringSubmatch(u.Path); m != nil {
		return StoreReference{ID: m[1], Tab: tab}, nil
	}
	if id := u.Query().Get("id"); storeIDPattern.MatchString(id) {
		return StoreReference{ID: id, Tab: tab}, nil
	}

	return StoreReference{}, fmt.Errorf("%w: no store id in %q", ErrInvalidReference, raw)
}

// IsZero reports whether the reference is unset.
func (r StoreReference) IsZero() bool {
	return r.ID == ""
}

// String renders the bare form accepted by ParseStoreReference.
func (r StoreReference) String() string {
	if r.Tab == "" {
		return r.ID
	}
	return r.ID + "#" + tabFragmentPrefix + url.QueryEscape(r.Tab)
}
