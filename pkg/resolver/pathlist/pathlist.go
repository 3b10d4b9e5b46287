package pathlist

import (
	"github.com/olavoasantos/resolver/pkg/resolver"
)

// Flatten returns every leaf of list keyed by its dotted name.
//
//	Flatten(resolver.PathList{"users": map[string]any{"show": "/users/:id"}})
//	// map[string]any{"users.show": "/users/:id"}
func Flatten(list resolver.PathList) map[string]any {
	flat := make(map[string]any)
	resolver.Walk(list, func(name string, value any) bool {
		flat[name] = value
		return true
	})
	return flat
}

// Names returns the dotted names of every leaf in list, sorted.
func Names(list resolver.PathList) []string {
	names := []string{}
	resolver.Walk(list, func(name string, _ any) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Merge returns a new path list with src laid over dst. Nested maps are
// merged recursively; any other value in src replaces the one in dst.
// Neither argument is modified.
func Merge(dst, src resolver.PathList) resolver.PathList {
	merged := mergeMaps(asMap(dst), asMap(src))
	return resolver.PathList(merged)
}

func mergeMaps(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcMap, srcIsMap := asNode(v)
		dstMap, dstIsMap := asNode(out[k])
		if srcIsMap && dstIsMap {
			out[k] = mergeMaps(dstMap, srcMap)
			continue
		}
		out[k] = v
	}
	return out
}

func asMap(list resolver.PathList) map[string]any {
	if list == nil {
		return map[string]any{}
	}
	return map[string]any(list)
}

// asNode reports whether v is a nested mapping, converting it to
// map[string]any.
func asNode(v any) (map[string]any, bool) {
	switch n := v.(type) {
	case map[string]any:
		return n, true
	case resolver.PathList:
		return map[string]any(n), true
	case map[string]string:
		m := make(map[string]any, len(n))
		for k, s := range n {
			m[k] = s
		}
		return m, true
	}
	return nil, false
}
