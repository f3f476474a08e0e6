package game

import (
	"strings"

	"phoenixcore/internal/domain/world"
)

// ResolveItem matches a free-text fragment against a candidate list of item
// keys and returns at most one key. Candidates are checked in their original
// order and the first match wins. A candidate matches when the normalized
// fragment (lower-cased, whitespace runs collapsed to underscores) is a
// substring of the key, or the item's lower-cased display name contains the
// raw fragment.
//
// No match is a normal outcome, not an error; callers answer with a
// distinct "not found" message.
func ResolveItem(fragment string, candidates []string, catalog map[string]world.Item) (string, bool) {
	frag := strings.ToLower(strings.TrimSpace(fragment))
	if frag == "" {
		return "", false
	}
	norm := strings.Join(strings.Fields(frag), "_")

	for _, key := range candidates {
		if strings.Contains(key, norm) {
			return key, true
		}
		if item, ok := catalog[key]; ok && strings.Contains(strings.ToLower(item.Name), frag) {
			return key, true
		}
	}
	return "", false
}
