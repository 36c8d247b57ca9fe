// Package dataset holds the labeled reference corpus and sampling over it.
package dataset

import (
	"sort"
	"strings"
)

// Row is one reference entry with its raw label values. Label values are
// kept as the source recorded them ("TRUE", "0", ...); coercion to a
// boolean predicate happens at sampling time, not at load time.
type Row struct {
	Body   string
	Labels map[string]string
}

// Table is an immutable in-memory view of the corpus. It is safe for
// concurrent readers; nothing mutates it after construction.
type Table struct {
	rows []Row
	tags map[string]struct{}
}

// NewTable builds a table from rows, lowercasing label names and
// indexing every name seen.
func NewTable(rows []Row) *Table {
	t := &Table{rows: make([]Row, 0, len(rows)), tags: make(map[string]struct{})}
	for _, r := range rows {
		nr := Row{Body: r.Body, Labels: make(map[string]string, len(r.Labels))}
		for name, value := range r.Labels {
			name = strings.ToLower(name)
			nr.Labels[name] = value
			t.tags[name] = struct{}{}
		}
		t.rows = append(t.rows, nr)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Tags lists the known label names, sorted.
func (t *Table) Tags() []string {
	out := make([]string, 0, len(t.tags))
	for name := range t.tags {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HasTag reports whether the tag names a known label, case-insensitively.
func (t *Table) HasTag(tag string) bool {
	_, ok := t.tags[strings.ToLower(tag)]
	return ok
}

// Matches returns the bodies of all rows whose label for tag coerces to
// true. ok is false when any value under that label cannot be read as a
// boolean, in which case the label is unusable as a predicate.
func (t *Table) Matches(tag string) (matches []string, ok bool) {
	tag = strings.ToLower(tag)
	for _, r := range t.rows {
		raw, present := r.Labels[tag]
		if !present {
			continue
		}
		v, coerced := coerceBool(raw)
		if !coerced {
			return nil, false
		}
		if v {
			matches = append(matches, r.Body)
		}
	}
	return matches, true
}

// coerceBool reads the loose boolean encodings the source data uses.
// Missing and NaN-ish values count as false, matching how the corpus
// was labeled.
func coerceBool(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, true
	case "false", "0", "", "nan":
		return false, true
	default:
		return false, false
	}
}
