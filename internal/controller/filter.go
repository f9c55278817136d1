package controller

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dshills/xxcmd/internal/record"
)

// SearchPolicy selects which record fields a query is matched against.
type SearchPolicy uint8

const (
	// LabelsFirst matches labels, falling back to commands when no label
	// matches.
	LabelsFirst SearchPolicy = iota

	// LabelsOnly matches labels only.
	LabelsOnly

	// Both matches a record when either its label or its command matches.
	Both
)

var searchPolicyNames = [...]string{
	LabelsFirst: "labels-first",
	LabelsOnly:  "labels-only",
	Both:        "both",
}

// String returns the policy name used in configuration.
func (p SearchPolicy) String() string {
	if int(p) < len(searchPolicyNames) {
		return searchPolicyNames[p]
	}
	return fmt.Sprintf("SearchPolicy(%d)", p)
}

// ParseSearchPolicy parses a policy name such as "labels-first".
func ParseSearchPolicy(s string) (SearchPolicy, error) {
	for i, name := range searchPolicyNames {
		if strings.EqualFold(s, name) {
			return SearchPolicy(i), nil
		}
	}
	return LabelsFirst, fmt.Errorf("unknown search mode %q", s)
}

// SortPolicy selects the ordering applied to filtered results.
type SortPolicy uint8

const (
	// SortNone keeps store order.
	SortNone SortPolicy = iota

	// SortLabel orders by label.
	SortLabel

	// SortCommand orders by command text.
	SortCommand
)

var sortPolicyNames = [...]string{
	SortNone:    "none",
	SortLabel:   "label",
	SortCommand: "command",
}

// String returns the policy name used in configuration.
func (p SortPolicy) String() string {
	if int(p) < len(sortPolicyNames) {
		return sortPolicyNames[p]
	}
	return fmt.Sprintf("SortPolicy(%d)", p)
}

// ParseSortPolicy parses a sort name such as "label". An empty name is
// SortNone.
func ParseSortPolicy(s string) (SortPolicy, error) {
	if s == "" {
		return SortNone, nil
	}
	for i, name := range sortPolicyNames {
		if strings.EqualFold(s, name) {
			return SortPolicy(i), nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort order %q", s)
}

// Filter returns the records matching query under policy, in input order.
// An empty query matches everything. Matching is a case-folded substring
// test.
func Filter(records []*record.Record, query string, policy SearchPolicy) []*record.Record {
	if query == "" {
		return slices.Clone(records)
	}

	fold := cases.Fold()
	q := fold.String(query)
	labelMatch := func(r *record.Record) bool {
		return strings.Contains(fold.String(r.Label), q)
	}
	commandMatch := func(r *record.Record) bool {
		return strings.Contains(fold.String(r.Command), q)
	}

	var out []*record.Record
	switch policy {
	case LabelsOnly:
		out = collect(records, labelMatch)
	case Both:
		out = collect(records, func(r *record.Record) bool {
			return labelMatch(r) || commandMatch(r)
		})
	default:
		out = collect(records, labelMatch)
		if len(out) == 0 {
			out = collect(records, commandMatch)
		}
	}
	return out
}

func collect(records []*record.Record, match func(*record.Record) bool) []*record.Record {
	var out []*record.Record
	for _, r := range records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records in place by policy. The sort is stable, so records
// with equal keys keep their filter order.
func Sort(records []*record.Record, policy SortPolicy, caseSensitive bool) {
	var field func(*record.Record) string
	switch policy {
	case SortLabel:
		field = func(r *record.Record) string { return r.Label }
	case SortCommand:
		field = func(r *record.Record) string { return r.Command }
	default:
		return
	}

	sortKey := field
	if !caseSensitive {
		fold := cases.Fold()
		sortKey = func(r *record.Record) string { return fold.String(field(r)) }
	}
	slices.SortStableFunc(records, func(a, b *record.Record) int {
		return cmp.Compare(sortKey(a), sortKey(b))
	})
}
