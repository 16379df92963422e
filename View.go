package rctl

import (
	"github.com/rohanthewiz/element"
)

// View is a renderable result an action may hand back to its controller.
// The controller keeps at most one as its current view and calls Remove
// before the next dispatch and on teardown.
type View interface {
	element.Component
	Remove() error
}

// ComponentView turns any element component into a View.
// OnRemove, when set, runs on the first call to Remove only.
type ComponentView struct {
	element.Component
	OnRemove func() error

	removed bool
}

// NewView wraps component. onRemove may be nil.
func NewView(component element.Component, onRemove func() error) *ComponentView {
	return &ComponentView{Component: component, OnRemove: onRemove}
}

// Remove releases the view's resources.
func (v *ComponentView) Remove() error {
	if v.removed {
		return nil
	}
	v.removed = true
	if v.OnRemove != nil {
		return v.OnRemove()
	}
	return nil
}

// Removed reports whether Remove has been called.
func (v *ComponentView) Removed() bool {
	return v.removed
}

// RenderView renders v to an HTML string. A nil view renders as "".
func RenderView(v View) string {
	if v == nil {
		return ""
	}
	b := element.NewBuilder()
	element.RenderComponents(b, v)
	return b.String()
}
