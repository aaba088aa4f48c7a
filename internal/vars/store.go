package vars

import (
	"strings"
	"unicode"

	"github.com/tidwall/btree"
)

// Store holds the shell variables, ordered by name.
// Names are case-sensitive.
type Store struct {
	vars btree.Map[string, string]
}

// NewStore returns an empty variable store.
func NewStore() *Store {
	return &Store{}
}

// FromEnviron returns a store populated from `NAME=value` pairs,
// as returned by os.Environ. Pairs with an invalid name are skipped.
func FromEnviron(environ []string) *Store {
	store := NewStore()

	for _, pair := range environ {
		name, value, found := strings.Cut(pair, "=")
		if !found || !IsName(name) {
			continue
		}

		store.Set(name, value)
	}

	return store
}

// Set sets the value of a variable, replacing any previous one.
func (s *Store) Set(name, value string) {
	s.vars.Set(name, value)
}

// Lookup returns the value of a variable, if set.
func (s *Store) Lookup(name string) (string, bool) {
	return s.vars.Get(name)
}

// Delete unsets a variable and reports whether it was set.
func (s *Store) Delete(name string) bool {
	_, deleted := s.vars.Delete(name)
	return deleted
}

// Len returns the number of variables set.
func (s *Store) Len() int {
	return s.vars.Len()
}

// Each calls fn for each variable in name order, until fn returns false.
func (s *Store) Each(fn func(name, value string) bool) {
	s.vars.Scan(fn)
}

// Map is a plain map of variables, for callers not needing a Store.
type Map map[string]string

// Lookup returns the value of a variable, if set.
func (m Map) Lookup(name string) (string, bool) {
	value, found := m[name]
	return value, found
}

// IsName returns true if name can be substituted with `$name`:
// it is not empty and only holds letters, numbers and underscores.
func IsName(name string) bool {
	if name == "" {
		return false
	}

	for _, char := range name {
		if !unicode.IsLetter(char) && !unicode.IsNumber(char) && char != '_' {
			return false
		}
	}

	return true
}
