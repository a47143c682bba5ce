// Package page implements cursor pagination over unordered key sets for
// drivers that lack a native sorted listing.
package page

import (
	"sort"
	"strings"

	"github.com/tarantool/go-kvns/kv"
)

// Paginate filters entries by the literal prefix, sorts them ascending
// byte-wise and returns the window of at most limit entries following
// startAfter.
//
// A startAfter that is not present in the filtered set yields an empty page
// with no continuation: the cursor is considered exhausted.
func Paginate(entries []kv.KeyMeta, prefix string, limit int, startAfter string) kv.Page {
	matched := make([]kv.KeyMeta, 0, len(entries))

	for _, entry := range entries {
		if strings.HasPrefix(entry.Key, prefix) {
			matched = append(matched, entry)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Key < matched[j].Key
	})

	start := 0

	if startAfter != "" {
		idx := sort.Search(len(matched), func(i int) bool {
			return matched[i].Key >= startAfter
		})
		if idx == len(matched) || matched[idx].Key != startAfter {
			return kv.Page{Entries: []kv.KeyMeta{}, Next: ""}
		}

		start = idx + 1
	}

	end := len(matched)
	if limit < end-start {
		end = start + max(limit, 0)
	}

	window := matched[start:end]

	next := ""
	if end < len(matched) && len(window) > 0 {
		next = window[len(window)-1].Key
	}

	return kv.Page{Entries: window, Next: next}
}
