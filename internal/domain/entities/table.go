package entities

import (
	"maps"
	"slices"
	"strings"
)

// Entry is a single translatable string of a locale table.
type Entry struct {
	Key   string
	Value string
}

// Table maps dot-namespaced keys (e.g. "common.login") to display text for
// one locale. A Table is treated as read-only once loaded.
type Table map[string]string

// Lookup returns the text for key and whether the key exists.
func (t Table) Lookup(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// Keys returns the table's keys in lexical order.
func (t Table) Keys() []string {
	var keys []string
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Entries returns the table as entries sorted by key.
func (t Table) Entries() []Entry {
	keys := t.Keys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Value: t[k]}
	}
	return out
}

// Clone returns a copy safe to hand out to callers.
func (t Table) Clone() Table {
	return maps.Clone(t)
}

// Blank reports keys whose text is empty or whitespace only, sorted.
func (t Table) Blank() []string {
	var out []string
	for _, k := range t.Keys() {
		if strings.TrimSpace(t[k]) == "" {
			out = append(out, k)
		}
	}
	return out
}
