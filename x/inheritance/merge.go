package inheritance

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/totegamma/permgraph/core"
)

const overridesKey = "overrides"

// MergeValue combines one condition field. The has flags distinguish an absent
// field from one present with a null value.
func MergeValue(strategy core.MergeStrategy, parent any, parentHas bool, child any, childHas bool) (any, bool) {
	switch strategy {
	case core.MergeParentPriority:
		if parentHas {
			return parent, true
		}
		return child, childHas

	case core.MergeUnion:
		if !parentHas {
			return child, childHas
		}
		if !childHas {
			return parent, true
		}
		if p, ok := parent.([]any); ok {
			if c, ok := child.([]any); ok {
				return union(p, c), true
			}
		}
		if p, ok := parent.(map[string]any); ok {
			if c, ok := child.(map[string]any); ok {
				merged := make(map[string]any, len(p)+len(c))
				for k, v := range p {
					merged[k] = v
				}
				for k, v := range c {
					merged[k] = v
				}
				return merged, true
			}
		}
		return child, true

	case core.MergeIntersect:
		if p, ok := parent.([]any); ok && parentHas {
			if c, ok := child.([]any); ok && childHas {
				return intersect(p, c), true
			}
		}
		return child, childHas

	default:
		if childHas {
			return child, true
		}
		return parent, parentHas
	}
}

func valueKey(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func union(parent, child []any) []any {
	seen := map[string]bool{}
	result := []any{}
	for _, list := range [][]any{parent, child} {
		for _, v := range list {
			key := valueKey(v)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, v)
		}
	}
	return result
}

func intersect(parent, child []any) []any {
	inChild := map[string]bool{}
	for _, v := range child {
		inChild[valueKey(v)] = true
	}
	seen := map[string]bool{}
	result := []any{}
	for _, v := range parent {
		key := valueKey(v)
		if !inChild[key] || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, v)
	}
	return result
}

func keysOf(maps ...map[string]any) []string {
	set := map[string]bool{}
	for _, m := range maps {
		for k := range m {
			set[k] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// hasNested reports whether any strategy addresses a field inside the clause.
func hasNested(strategies map[string]core.MergeStrategy, clause string) bool {
	for field := range strategies {
		if strings.HasPrefix(field, clause+".") {
			return true
		}
	}
	return false
}

// MergeConditions merges parent and child condition documents field by field.
// A strategy key names either a whole clause ("time") or a field inside one
// ("location.allowed_ips"). Unlisted fields use child_overrides. The child's
// overrides record is kept as is.
func MergeConditions(parent, child map[string]any, strategies map[string]core.MergeStrategy) map[string]any {
	result := map[string]any{}

	for _, key := range keysOf(parent, child) {
		if key == overridesKey {
			continue
		}
		pv, pHas := parent[key]
		cv, cHas := child[key]

		if strategy, ok := strategies[key]; ok {
			if v, has := MergeValue(strategy, pv, pHas, cv, cHas); has {
				result[key] = v
			}
			continue
		}

		po, pObj := pv.(map[string]any)
		co, cObj := cv.(map[string]any)
		if hasNested(strategies, key) && (pObj || !pHas) && (cObj || !cHas) {
			nested := map[string]any{}
			for _, field := range keysOf(po, co) {
				fpv, fpHas := po[field]
				fcv, fcHas := co[field]
				strategy := strategies[key+"."+field]
				if v, has := MergeValue(strategy, fpv, fpHas, fcv, fcHas); has {
					nested[field] = v
				}
			}
			result[key] = nested
			continue
		}

		if v, has := MergeValue(core.MergeChildOverrides, pv, pHas, cv, cHas); has {
			result[key] = v
		}
	}

	if overrides, ok := child[overridesKey]; ok {
		result[overridesKey] = overrides
	}

	return result
}
