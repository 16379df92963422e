package rctl

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/rohanthewiz/rctl/consts"
	"github.com/rohanthewiz/rctl/core/actions"
	"github.com/rohanthewiz/rctl/core/resolve"
	"github.com/rohanthewiz/rctl/event"
)

// RouteMeta identifies the route being dispatched.
type RouteMeta = resolve.RouteMeta

// Args is the positional argument list an action receives.
type Args = resolve.Args

// Value is a single action argument.
type Value = resolve.Value

// Action is a controller operation. It returns nil or a View.
type Action func(args Args) (any, error)

// DispatchInfo is the payload of consts.TopicDispatch and consts.TopicFallback.
type DispatchInfo struct {
	Route  RouteMeta
	Action string
	Args   Args
	Tried  []string
}

// Controller maps routes onto its actions and owns the current view.
//
// A Controller is not safe for concurrent use. Dispatches must run one at a
// time; a dispatch started from inside an action overwrites the current view.
type Controller struct {
	name     string
	opts     resolve.Options
	actions  *actions.Table[Action]
	view     View
	last     *DispatchInfo
	bus      *event.Bus
	listener *event.Subscriber
	log      Logger
}

// NewController creates a controller. At most one ControllerOptions is used.
func NewController(options ...ControllerOptions) *Controller {
	opts := ControllerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}

	c := &Controller{
		name:     opts.Name,
		opts:     opts.resolveOptions(),
		actions:  actions.NewTable[Action](),
		bus:      opts.Bus,
		listener: event.NewSubscriber(),
		log:      opts.Logger,
	}
	if c.bus == nil {
		c.bus = event.NewBus()
	}
	if c.log == nil {
		c.log = defaultLogger
	}
	return c
}

// Name returns the configured controller name.
func (c *Controller) Name() string {
	return c.name
}

// Handle registers action under its full name, suffix included.
func (c *Controller) Handle(name string, action Action) *Controller {
	c.actions.Add(name, action)
	return c
}

// HandleAction registers action under base plus the configured suffix,
// so with suffix "Action", HandleAction("bundleEdit", fn) answers to
// "bundleEditAction".
func (c *Controller) HandleAction(base string, action Action) *Controller {
	return c.Handle(base+c.opts.Suffix, action)
}

// Actions returns the registered action names, sorted.
func (c *Controller) Actions() []string {
	return c.actions.Names()
}

// Resolve computes the action and arguments segments would dispatch to,
// without invoking anything or touching the current view.
func (c *Controller) Resolve(meta RouteMeta, segments []string, extra ...any) (resolve.Result, error) {
	return resolve.Resolve(meta, segments, resolve.CoerceAll(extra...), c.callable, c.opts)
}

// callable reports whether name is registered with a non-nil action.
func (c *Controller) callable(name string) bool {
	a, ok := c.actions.Lookup(name)
	return ok && a != nil
}

// Dispatch runs the action segments resolve to. The current view is released
// first, whatever the outcome. The action's View, if any, becomes the new
// current view.
func (c *Controller) Dispatch(meta RouteMeta, segments []string, extra ...any) (*Controller, error) {
	c.last = nil

	// The old view goes first, even if the route turns out to be unresolvable
	if err := c.releaseView(); err != nil {
		return c, err
	}

	res, err := c.Resolve(meta, segments, extra...)
	if err != nil {
		return c, err
	}

	info := DispatchInfo{Route: meta, Action: res.Action, Args: res.Args, Tried: res.Tried}
	c.last = &info
	if res.Fallback {
		c.log.Info("falling back to default action",
			"controller", c.name, "route", meta.Name, "pattern", meta.Pattern,
			"action", res.Action, "tried", strings.Join(res.Tried, ", "))
		c.trigger(consts.TopicFallback, info)
	}

	// Trace as a call expression, e.g. bundleEditAction("nuff", 10)
	c.log.Debug("dispatch",
		"controller", c.name, "route", meta.Name, "pattern", meta.Pattern,
		"call", res.Action+"("+strings.Join(res.Args.Strings(), ", ")+")")
	c.trigger(consts.TopicDispatch, info)

	action, _ := c.actions.Lookup(res.Action)
	result, err := action(res.Args)
	if err != nil {
		return c, err
	}

	// Only a View is kept. nil, including a nil pointer behind the View
	// interface, leaves the controller without one.
	switch v := result.(type) {
	case nil:
	case View:
		if isNilView(v) {
			break
		}
		c.view = v
		c.trigger(consts.TopicView, v)
	default:
		return c, &InvalidActionResultError{Action: res.Action, Value: result}
	}
	return c, nil
}

// isNilView reports whether v holds a nil pointer, map, func or the like.
func isNilView(v View) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// LastDispatch describes the action the most recent Dispatch invoked.
// It is false when that dispatch failed before reaching an action.
func (c *Controller) LastDispatch() (DispatchInfo, bool) {
	if c.last == nil {
		return DispatchInfo{}, false
	}
	return *c.last, true
}

// CurrentView returns the view installed by the last dispatch, or nil.
func (c *Controller) CurrentView() View {
	return c.view
}

// Render renders the current view to HTML, or "" when there is none.
func (c *Controller) Render() string {
	return RenderView(c.view)
}

// Remove releases the current view and drops every subscription the
// controller holds. It is safe to call more than once.
func (c *Controller) Remove() error {
	err := c.releaseView()
	c.listener.UnsubscribeAll()
	c.trigger(consts.TopicRemove, c.name)
	return err
}

// releaseView clears the view slot and asks the old view to release itself.
// The slot is cleared even when Remove fails.
func (c *Controller) releaseView() error {
	if c.view == nil {
		return nil
	}
	v := c.view
	c.view = nil
	if err := v.Remove(); err != nil {
		return err
	}
	c.trigger(consts.TopicRelease, v)
	return nil
}

// Bus returns the bus the controller publishes its lifecycle events on.
func (c *Controller) Bus() *event.Bus {
	return c.bus
}

// On subscribes handler to the controller's own events. The subscription is
// dropped by Remove.
func (c *Controller) On(pattern string, handler event.Handler) (*event.Subscription, error) {
	return c.listener.Listen(c.bus, pattern, handler)
}

// ListenTo subscribes handler to pattern on another component's bus. The
// subscription is dropped by Remove or StopListening.
func (c *Controller) ListenTo(bus *event.Bus, pattern string, handler event.Handler) (*event.Subscription, error) {
	return c.listener.Listen(bus, pattern, handler)
}

// StopListening drops every subscription made through On or ListenTo.
func (c *Controller) StopListening() {
	c.listener.UnsubscribeAll()
}

// Listening returns the number of subscriptions the controller holds.
func (c *Controller) Listening() int {
	return c.listener.Count()
}

// Trigger publishes payload on the controller's bus.
func (c *Controller) Trigger(topic string, payload any) error {
	return c.bus.Publish(topic, payload)
}

// trigger publishes a lifecycle event. Handler failures are logged only.
func (c *Controller) trigger(topic string, payload any) {
	if err := c.bus.Publish(topic, payload); err != nil {
		c.log.Warn("event handler failed", "controller", c.name, "topic", topic, "error", err.Error())
	}
}

// String describes the controller for diagnostics.
func (c *Controller) String() string {
	return "controller " + strconv.Quote(c.name) + " (" + strconv.Itoa(c.actions.Len()) + " actions)"
}
