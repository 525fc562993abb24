package store

import (
	"sort"
	"strings"
)

// Normalize trims, deduplicates and sorts a slice of strings, dropping
// empty entries.
func Normalize(in []string) []string {
	m := map[string]struct{}{}
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		m[s] = struct{}{}
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Union adds items to cur. It returns the normalized result plus which
// items were new and which were already present.
func Union(cur, items []string) (next, added, existed []string) {
	set := map[string]bool{}
	for _, s := range Normalize(cur) {
		set[s] = true
	}
	for _, s := range Normalize(items) {
		if set[s] {
			existed = append(existed, s)
			continue
		}
		set[s] = true
		added = append(added, s)
	}
	return keys(set), added, existed
}

// Difference removes items from cur. It returns the normalized result plus
// which items were removed and which were not present.
func Difference(cur, items []string) (next, removed, missing []string) {
	set := map[string]bool{}
	for _, s := range Normalize(cur) {
		set[s] = true
	}
	for _, s := range Normalize(items) {
		if set[s] {
			delete(set, s)
			removed = append(removed, s)
		} else {
			missing = append(missing, s)
		}
	}
	return keys(set), removed, missing
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
