package content

import (
	"fmt"
	"maps"
)

// table holds flattened translations keyed "locale:dot.path" for O(1) lookup.
type table map[string]string

func tableKey(localeCode, path string) string {
	return localeCode + ":" + path
}

// flatten collapses a nested translation tree into dot-path keys. Non-string
// leaves are stringified rather than rejected; a malformed document should
// degrade, not fail the load.
func flatten(tree map[string]any, prefix string) map[string]string {
	out := make(map[string]string)

	for key, value := range tree {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			out[fullKey] = v
		case map[string]any:
			maps.Copy(out, flatten(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				out[fullKey+"."+subKey] = subVal
			}
		default:
			out[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return out
}

// mergeLocaleTrees flattens per-locale translation trees into t. A per-locale
// file wins over the combined document for the keys it defines.
func mergeLocaleTrees(t table, trees map[string]map[string]any) {
	for code, tree := range trees {
		for path, value := range flatten(tree, "") {
			t[tableKey(code, path)] = value
		}
	}
}

// buildTable flattens every locale's tree into one lookup table.
func buildTable(doc translationsDoc) table {
	t := make(table)
	for localeCode, tree := range doc {
		for path, value := range flatten(tree, "") {
			t[tableKey(localeCode, path)] = value
		}
	}
	return t
}
