package bible

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the book catalog and the alias table built from it.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	books   []Book
	byID    map[string]int
	aliases map[string]string
}

// CollisionError is returned by NewRegistry when two distinct books
// claim the same normalized alias.
type CollisionError struct {
	Alias string
	First string
	Other string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("alias %q is claimed by %s and %s", e.Alias, e.First, e.Other)
}

// NewRegistry builds a registry from the given books and curated alias
// lists keyed by book ID. Every book is also registered under its name,
// abbreviation and ID.
func NewRegistry(books []Book, aliases map[string][]string) (*Registry, error) {
	res := &Registry{
		books:   make([]Book, len(books)),
		byID:    make(map[string]int, len(books)),
		aliases: make(map[string]string),
	}
	copy(res.books, books)

	for i, b := range res.books {
		if _, ok := res.byID[b.ID]; ok {
			return nil, fmt.Errorf("duplicate book id %q", b.ID)
		}
		res.byID[b.ID] = i
	}

	for _, b := range res.books {
		tokens := []string{b.ID, b.Name, b.Abbrev}
		tokens = append(tokens, aliases[b.ID]...)
		for _, tok := range tokens {
			if err := res.add(tok, b.ID); err != nil {
				return nil, err
			}
		}
	}

	for id := range aliases {
		if _, ok := res.byID[id]; !ok {
			return nil, fmt.Errorf("aliases given for unknown book id %q", id)
		}
	}

	return res, nil
}

func (r *Registry) add(token, id string) error {
	key := Normalize(token)
	if key == "" {
		return nil
	}
	if prev, ok := r.aliases[key]; ok && prev != id {
		return &CollisionError{Alias: key, First: prev, Other: id}
	}
	r.aliases[key] = id
	return nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry built from the canonical catalog. It
// panics if the static tables contain a collision.
func Default() *Registry {
	defaultOnce.Do(func() {
		var err error
		defaultReg, err = NewRegistry(catalog, variants)
		if err != nil {
			panic(err)
		}
	})
	return defaultReg
}

// Normalize converts a token to its alias table key: trimmed, lower-cased,
// internal whitespace collapsed, and one trailing period removed.
func Normalize(token string) string {
	res := strings.Join(strings.Fields(token), " ")
	res = strings.ToLower(res)
	res = strings.TrimSuffix(res, ".")
	return strings.TrimSpace(res)
}

// ResolveBookToken returns the book ID the token refers to. The second
// value is false when the token is not a known alias.
func (r *Registry) ResolveBookToken(token string) (string, bool) {
	id, ok := r.aliases[Normalize(token)]
	return id, ok
}

// Book returns the catalog entry for a book ID.
func (r *Registry) Book(id string) (Book, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Book{}, false
	}
	return r.books[i], true
}

// Books returns the catalog in canonical order.
func (r *Registry) Books() []Book {
	res := make([]Book, len(r.books))
	copy(res, r.books)
	return res
}

// Index returns the position of a book in canonical order, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.byID[id]; ok {
		return i
	}
	return -1
}

// AliasCount returns the number of distinct alias keys.
func (r *Registry) AliasCount() int {
	return len(r.aliases)
}

// ResolveBookToken resolves a token with the default registry.
func ResolveBookToken(token string) (string, bool) {
	return Default().ResolveBookToken(token)
}
