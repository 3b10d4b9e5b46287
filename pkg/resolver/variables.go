package resolver

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Variable is a single placeholder name and the value substituted for it.
type Variable struct {
	Name  string
	Value any
}

// Variables is a Variable Mapping with an explicit substitution order.
type Variables []Variable

// VariablesOf returns the entries of data in the order ResolveVariables
// applies them: longer names first, ties broken lexically. Substituting
// :identifier before :id keeps the shorter name from eating into the
// longer placeholder.
func VariablesOf(data map[string]any) Variables {
	vars := make(Variables, 0, len(data))
	for name, value := range data {
		vars = append(vars, Variable{Name: name, Value: value})
	}
	sort.Slice(vars, func(i, j int) bool {
		if len(vars[i].Name) != len(vars[j].Name) {
			return len(vars[i].Name) > len(vars[j].Name)
		}
		return vars[i].Name < vars[j].Name
	})
	return vars
}

// ReplaceVariable replaces every ":name" token in path with the string
// form of value. Matching is case-insensitive, so ":Name" and ":NAME" are
// replaced too. The value is inserted literally.
//
// name is used as a regular expression fragment without escaping. A name
// that does not compile leaves path unchanged.
//
//	ReplaceVariable("/users/:id", "id", 42) // "/users/42"
func ReplaceVariable(path, name string, value any) string {
	pattern, err := regexp.Compile("(?i)(:" + name + ")")
	if err != nil {
		return path
	}
	return pattern.ReplaceAllLiteralString(path, Stringify(value))
}

// ResolveVariables substitutes every entry of data into path. Entries are
// applied in VariablesOf order, each operating on the output of the
// previous one. Placeholders without a matching entry are left intact.
func ResolveVariables(path string, data map[string]any) string {
	if len(data) == 0 {
		return path
	}
	return ResolveVariablesInOrder(path, VariablesOf(data))
}

// ResolveVariablesInOrder substitutes vars into path in slice order.
func ResolveVariablesInOrder(path string, vars Variables) string {
	for _, v := range vars {
		path = ReplaceVariable(path, v.Name, v.Value)
	}
	return path
}

// Stringify returns the canonical string form of a variable value.
//
//   - string: used directly
//   - nil: "null"
//   - floats: decimal, or exponent form ("1e+21", "1e-7") outside [1e-6, 1e21)
//   - other numbers, booleans, []byte, fmt.Stringer, error: converted with cast
//   - []any, []string: elements joined with ","
//   - anything else: formatted with %v
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			// Array elements render nil as empty.
			if item == nil {
				continue
			}
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ",")
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	}
	if s, err := cast.ToStringE(value); err == nil {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// formatFloat renders f the way a JavaScript number prints: plain decimal
// in [1e-6, 1e21), exponent form with an unpadded exponent outside it.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
