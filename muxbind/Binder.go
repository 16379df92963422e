// Package muxbind serves controllers over net/http, using gorilla/mux as the
// router. Each mounted route dispatches to one controller and answers with
// the HTML of the view the action installed.
package muxbind

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rohanthewiz/rctl"
	"github.com/rohanthewiz/rctl/consts"
	"github.com/rohanthewiz/serr"
)

// ErrorHandler writes the response for a failed dispatch.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Binder mounts controllers on a mux.Router.
type Binder struct {
	router  *mux.Router
	root    *Group
	log     rctl.Logger
	onError ErrorHandler

	// controllers are not reentrant; one lock per controller
	mu    sync.Mutex
	locks map[*rctl.Controller]*sync.Mutex
}

// New binds onto router. A nil router means a fresh mux.NewRouter().
func New(router *mux.Router) *Binder {
	if router == nil {
		router = mux.NewRouter()
	}
	b := &Binder{
		router: router,
		log:    rctl.NewLogger(consts.LevelInfo),
		locks:  make(map[*rctl.Controller]*sync.Mutex),
	}
	b.root = &Group{binder: b}
	b.onError = b.writeError
	return b
}

// SetLogger replaces the binder's logger. Nil is ignored.
func (b *Binder) SetLogger(log rctl.Logger) *Binder {
	if log != nil {
		b.log = log
	}
	return b
}

// SetErrorHandler replaces the failed-dispatch writer. Nil restores the default.
func (b *Binder) SetErrorHandler(h ErrorHandler) *Binder {
	if h == nil {
		h = b.writeError
	}
	b.onError = h
	return b
}

// Router returns the underlying router.
func (b *Binder) Router() *mux.Router {
	return b.router
}

// Use adds router level middleware. It runs for every matched route.
func (b *Binder) Use(mw ...mux.MiddlewareFunc) {
	b.router.Use(mw...)
}

// Group creates a route group under prefix.
func (b *Binder) Group(prefix string, mw ...mux.MiddlewareFunc) *Group {
	return b.root.Group(prefix, mw...)
}

// Mount routes pattern to ctrl. See Group.Mount.
func (b *Binder) Mount(pattern, name string, ctrl *rctl.Controller, methods ...string) *mux.Route {
	return b.root.Mount(pattern, name, ctrl, methods...)
}

func (b *Binder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

// ListRoutes lists every route on the router, one entry per method.
// Routes without a method matcher are listed with method "*".
func (b *Binder) ListRoutes() (list []RouteList) {
	_ = b.router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		tmpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil || len(methods) == 0 {
			methods = []string{"*"}
		}
		for _, m := range methods {
			list = append(list, RouteList{Method: m, Path: tmpl, Name: route.GetName()})
		}
		return nil
	})
	return list
}

func (b *Binder) lockFor(ctrl *rctl.Controller) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.locks[ctrl]
	if !ok {
		l = &sync.Mutex{}
		b.locks[ctrl] = l
	}
	return l
}

// StatusFor maps a dispatch error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, rctl.ErrNoAction):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (b *Binder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	b.log.Warn("dispatch failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", strconv.Itoa(status),
		"error", err.Error())

	if werr := Text(w, status, http.StatusText(status)); werr != nil {
		b.log.Warn("write failed", "error", serr.Wrap(werr, "path", r.URL.Path).Error())
	}
}

// mount is the handler behind one mounted route.
type mount struct {
	binder   *Binder
	name     string
	ctrl     *rctl.Controller
	segments []string
	lock     *sync.Mutex
}

func newMount(b *Binder, name string, ctrl *rctl.Controller, segments []string) *mount {
	return &mount{
		binder:   b,
		name:     name,
		ctrl:     ctrl,
		segments: segments,
		lock:     b.lockFor(ctrl),
	}
}

func (m *mount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Route variables become extra arguments, in template order
	params := Params(r)
	extra := make([]any, len(params))
	for i, p := range params {
		extra[i] = p.Value
	}

	var pattern string
	if route := mux.CurrentRoute(r); route != nil {
		pattern, _ = route.GetPathTemplate()
	}

	// Dispatch, render and the X-Action read happen under one lock so a
	// concurrent request cannot swap the view in between
	m.lock.Lock()
	defer m.lock.Unlock()

	_, err := m.ctrl.Dispatch(rctl.RouteMeta{Name: m.name, Pattern: pattern}, m.segments, extra...)
	if err != nil {
		m.binder.onError(w, r, err)
		return
	}

	if info, ok := m.ctrl.LastDispatch(); ok {
		w.Header().Set(consts.HeaderXAction, info.Action)
	}
	if err := HTML(w, http.StatusOK, m.ctrl.Render()); err != nil {
		m.binder.log.Warn("write failed", "error", serr.Wrap(err, "route", m.name, "path", r.URL.Path).Error())
	}
}
