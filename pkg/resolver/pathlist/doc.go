/*
Package pathlist loads path lists from routing configuration files.

# Overview

A path list is a nested map of route templates. pathlist reads one from
YAML, JSON or JSONC and hands back a resolver.PathList ready for lookups:

	list, err := pathlist.FromFile("routes.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	url, err := resolver.Resolve(list, "users.show", map[string]any{"id": 7})

Given routes.yaml:

	users:
	  index: /users
	  show: /users/:id

# Formats

FromFile picks the decoder by extension:
  - .yaml, .yml: gopkg.in/yaml.v3
  - .json, .jsonc: encoding/json after stripping comments and trailing
    commas

Mapping keys that are not strings (for example YAML integer keys) are
converted to their string form so every nested node is a map[string]any.

# Utilities

Flatten and Names list the leaves of a path list by dotted name. Merge
overlays one path list on another, which is useful for per-environment
overrides:

	base, _ := pathlist.FromFile("routes.yaml")
	local, _ := pathlist.FromFile("routes.local.yaml")
	list := pathlist.Merge(base, local)

# Thread Safety

All functions return new maps and never modify their arguments.
*/
package pathlist
