/*
Package resolver resolves named route templates out of a nested path list
and fills in their :name placeholders.

# Overview

A path list is a nested map whose leaves are route templates:

	list := resolver.PathList{
	    "users": map[string]any{
	        "index": "/users",
	        "show":  "/users/:id",
	    },
	}

A path name selects a leaf. Segments are separated by "/" or ".":

	url, err := resolver.Resolve(list, "users.show", map[string]any{"id": 42})
	// url: "/users/42"

	url, err = resolver.Resolve(list, "users/show", map[string]any{"id": 42})
	// url: "/users/42"

When a name contains both delimiters only "/" separates segments, so
"a/b.c" looks up key "b.c" under "a".

# Lookup

ResolvePath walks the list one segment at a time. An entry that is
missing, or whose value is nil, false, zero or "", fails the lookup with
*PathNotFoundError:

	_, err := resolver.ResolvePath(list, "users.delete")
	// err: Cannot resolve path "users.delete" from path list
	errors.Is(err, resolver.ErrPathNotFound) // true

A name that stops at an inner node returns that node.

# Placeholders

ReplaceVariable substitutes one :name token, case-insensitively, in every
place it occurs. ResolveVariables applies a whole map. Placeholders with no
value are left as they are:

	resolver.ResolveVariables("/users/:id/posts/:post", map[string]any{"id": 1})
	// "/users/1/posts/:post"

Maps have no order, so ResolveVariables applies longer names first. Use
Variables and ResolveVariablesInOrder when the order matters:

	resolver.ResolveVariablesInOrder("/:a/:ab", resolver.Variables{
	    {Name: "a", Value: "x"},
	    {Name: "ab", Value: "y"},
	})
	// "/x/xb"

# Instrumented Resolver

Resolver wraps a path list with structured logging, OpenTelemetry metrics
and tracing:

	r := resolver.New(list,
	    resolver.WithLogger(slog.Default()),
	    resolver.WithObservability(),
	)
	url, err := r.Resolve(ctx, "users.show", map[string]any{"id": 42})

Path lists can be loaded from YAML or JSON files with package pathlist and
persisted with package store.

# Thread Safety

All functions are pure. Resolver is safe for concurrent use after
construction provided the path list is not modified.
*/
package resolver
