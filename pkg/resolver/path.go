package resolver

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// PathList is a nested mapping of route templates. Nested nodes may be any
// string-keyed map (PathList, map[string]any, map[string]map[string]string,
// ...); lists decoded from YAML or JSON ([]any, []string) are indexed by
// decimal segment.
type PathList map[string]any

// SplitPath splits a path name into its segments.
//
// A name containing "/" is split on every "/" and any "." stays inside the
// segments. Otherwise a name containing "." is split on every ".". A name
// with neither delimiter is returned as a single segment.
//
//	SplitPath("a/b.c") // ["a", "b.c"]
//	SplitPath("a.b")   // ["a", "b"]
//	SplitPath("")      // [""]
func SplitPath(name string) []string {
	if strings.Contains(name, "/") {
		return strings.Split(name, "/")
	}
	if strings.Contains(name, ".") {
		return strings.Split(name, ".")
	}
	return []string{name}
}

// ResolvePath walks list one segment at a time and returns the value at
// the final segment. The value is usually a template string but may be a
// nested node when the name stops short of a leaf.
//
// A segment whose entry is absent or falsy (nil, false, numeric zero, NaN
// or "") fails the lookup with *PathNotFoundError. A stored "" or 0 leaf is
// therefore indistinguishable from a missing key. Empty maps and slices
// are not falsy.
func ResolvePath(list PathList, name string) (any, error) {
	var node any = list
	for _, segment := range SplitPath(name) {
		next, ok := lookup(node, segment)
		if !ok || isFalsy(next) {
			return nil, &PathNotFoundError{Name: name}
		}
		node = next
	}
	return node, nil
}

// lookup returns the child of node stored under key. Leaves have no
// children.
func lookup(node any, key string) (any, bool) {
	switch n := node.(type) {
	case PathList:
		v, ok := n[key]
		return v, ok
	case map[string]any:
		v, ok := n[key]
		return v, ok
	case map[string]string:
		v, ok := n[key]
		return v, ok
	case []any:
		i, ok := index(key, len(n))
		if !ok {
			return nil, false
		}
		return n[i], true
	case []string:
		i, ok := index(key, len(n))
		if !ok {
			return nil, false
		}
		return n[i], true
	}

	rv := reflect.ValueOf(node)
	if !isStringMap(rv) {
		return nil, false
	}
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

// isStringMap reports whether rv is a map keyed by a string kind, such as
// map[string]map[string]string or map[string]PathList.
func isStringMap(rv reflect.Value) bool {
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// index parses key as a position in a list of length n.
func index(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	// "01" and "+1" are not list positions.
	if strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}

// isFalsy reports whether v counts as a missing entry during traversal.
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0 || math.IsNaN(val)
	case float32:
		return val == 0 || math.IsNaN(float64(val))
	case int:
		return val == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Walk calls fn for every leaf in list with its dotted name. Nested nodes
// are visited in sorted key order; list elements by index. Walk stops when
// fn returns false.
func Walk(list PathList, fn func(name string, value any) bool) {
	walk("", list, fn)
}

func walk(prefix string, node any, fn func(string, any) bool) bool {
	join := func(key string) string {
		if prefix == "" {
			return key
		}
		return prefix + "." + key
	}

	switch n := node.(type) {
	case PathList:
		return walkMap(map[string]any(n), join, fn)
	case map[string]any:
		return walkMap(n, join, fn)
	case map[string]string:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !fn(join(k), n[k]) {
				return false
			}
		}
		return true
	case []any:
		for i, v := range n {
			if !walk(join(strconv.Itoa(i)), v, fn) {
				return false
			}
		}
		return true
	case []string:
		for i, v := range n {
			if !fn(join(strconv.Itoa(i)), v) {
				return false
			}
		}
		return true
	}

	rv := reflect.ValueOf(node)
	if !isStringMap(rv) {
		return fn(prefix, node)
	}
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	for _, k := range keys {
		if !walk(join(k.String()), rv.MapIndex(k).Interface(), fn) {
			return false
		}
	}
	return true
}

func walkMap(m map[string]any, join func(string) string, fn func(string, any) bool) bool {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !walk(join(k), m[k], fn) {
			return false
		}
	}
	return true
}
