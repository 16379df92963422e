package muxbind

import (
	"net/http"
	"path"

	"github.com/gorilla/mux"
	"github.com/rohanthewiz/rctl"
)

// Group represents a route group with a common prefix and middleware.
// Groups can be nested; a child inherits its parent's prefix and middleware.
type Group struct {
	prefix     string
	binder     *Binder
	middleware []mux.MiddlewareFunc
}

// Group creates a sub-group with an additional prefix and optional middleware.
// Example: api.Group("/users", auth) serves /api/users behind auth.
func (g *Group) Group(prefix string, mw ...mux.MiddlewareFunc) *Group {
	handlers := make([]mux.MiddlewareFunc, 0, len(g.middleware)+len(mw))
	handlers = append(handlers, g.middleware...)
	handlers = append(handlers, mw...)
	return &Group{
		prefix:     path.Join(g.prefix, prefix),
		binder:     g.binder,
		middleware: handlers,
	}
}

// Use adds middleware to the group. It applies to routes mounted afterwards.
func (g *Group) Use(mw ...mux.MiddlewareFunc) {
	g.middleware = append(g.middleware, mw...)
}

// Prefix returns the group's path prefix.
func (g *Group) Prefix() string {
	return g.prefix
}

// Mount routes the group prefix plus pattern to ctrl.
//
// The literal segments of pattern (group prefix excluded) are the segments
// the controller resolves against; the {variables} in pattern are passed as
// extra arguments in template order. So with suffix "Action",
// "/bundle/edit/{slug}/{id}" requested as /bundle/edit/nuff/10 calls
// bundleEditAction("nuff", 10).
//
// name labels the route in logs and ListRoutes; empty means ctrl.Name().
// No methods means any method.
func (g *Group) Mount(pattern, name string, ctrl *rctl.Controller, methods ...string) *mux.Route {
	if name == "" {
		name = ctrl.Name()
	}

	// The router sees the full path; the controller only sees segments from
	// the mount-relative pattern, so moving a group does not rename actions
	fullPath := path.Join("/", g.prefix, pattern)

	// Start with the dispatching handler as the final handler
	var h http.Handler = newMount(g.binder, name, ctrl, StaticSegments(pattern))

	// Wrap in reverse so middleware runs in the order it was added.
	// Each middleware decides itself whether to call the next handler.
	for i := len(g.middleware) - 1; i >= 0; i-- {
		h = g.middleware[i](h)
	}

	// Register, then narrow by name and methods as mux expects
	route := g.binder.router.Handle(fullPath, h)
	if name != "" {
		route.Name(name)
	}
	if len(methods) > 0 {
		route.Methods(methods...)
	}
	return route
}
