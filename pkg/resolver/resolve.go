package resolver

// Resolve looks up name in list and substitutes data into the template
// found there. A nil or empty data returns the template unchanged.
//
// Errors from the lookup are returned as-is (*PathNotFoundError). A leaf
// that is not a string is converted with Stringify before substitution.
//
//	list := PathList{"users": map[string]any{"show": "/users/:id"}}
//	url, err := Resolve(list, "users.show", map[string]any{"id": 7})
//	// url: "/users/7"
func Resolve(list PathList, name string, data map[string]any) (string, error) {
	value, err := ResolvePath(list, name)
	if err != nil {
		return "", err
	}
	return ResolveVariables(Stringify(value), data), nil
}

// ResolveInOrder is Resolve with an explicitly ordered variable list.
func ResolveInOrder(list PathList, name string, vars Variables) (string, error) {
	value, err := ResolvePath(list, name)
	if err != nil {
		return "", err
	}
	return ResolveVariablesInOrder(Stringify(value), vars), nil
}
