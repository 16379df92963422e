package muxbind

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Parameter is a captured route variable.
//
//	Template: /bundle/{slug}/edit/{id}
//	URL:      /bundle/nuff/edit/10
//	Result:   []Parameter{{Key: "slug", Value: "nuff"}, {Key: "id", Value: "10"}}
type Parameter struct {
	Key   string
	Value string
}

// RouteList describes a registered route for inspection.
type RouteList struct {
	Method string
	Path   string
	Name   string
}

// Params returns the variables of the route matched for r, in the order
// they appear in the route template. Nil when r was not routed by mux.
func Params(r *http.Request) []Parameter {
	route := mux.CurrentRoute(r)
	if route == nil {
		return nil
	}
	names, err := route.GetVarNames()
	if err != nil {
		return nil
	}
	vars := mux.Vars(r)
	params := make([]Parameter, 0, len(names))
	for _, name := range names {
		params = append(params, Parameter{Key: name, Value: vars[name]})
	}
	return params
}

// StaticSegments returns the literal path segments of a mux template.
// Segments holding a {variable} are left out, so "bundle/{slug}/edit"
// yields [bundle edit]. Slashes inside a variable's regexp do not split.
func StaticSegments(pattern string) []string {
	var (
		segs    []string
		cur     strings.Builder
		depth   int
		dynamic bool
	)
	flush := func() {
		if cur.Len() > 0 && !dynamic {
			segs = append(segs, cur.String())
		}
		cur.Reset()
		dynamic = false
	}

	for _, r := range pattern {
		switch {
		case r == '{':
			depth++
			dynamic = true
		case r == '}':
			if depth > 0 {
				depth--
			}
		case r == '/' && depth == 0:
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return segs
}
