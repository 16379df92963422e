package rctl

import (
	"github.com/rohanthewiz/rctl/config"
	"github.com/rohanthewiz/rctl/consts"
	"github.com/rohanthewiz/rctl/core/resolve"
	"github.com/rohanthewiz/rctl/event"
)

// ControllerOptions configures a Controller. The zero value is usable:
// no action suffix and "index" as the default action.
type ControllerOptions struct {
	// Name identifies the controller in logs and events.
	Name string
	// ActionMethodSuffix is appended to every candidate action name.
	ActionMethodSuffix string
	// DefaultAction names the fallback action before the suffix is applied.
	// Empty means consts.DefaultAction.
	DefaultAction string
	// NoDefaultAction turns an unmatched route into a hard failure.
	NoDefaultAction bool
	// Logger receives diagnostics. Nil means the package default.
	Logger Logger
	// Bus receives the controller's lifecycle events. Nil means a private bus.
	Bus *event.Bus
}

// OptionsFromConfig builds options for the controller called name from its
// config entry. An absent default_action keeps the built-in default;
// config.Load and config.Parse refuse a blank one.
func OptionsFromConfig(name string, cc config.ControllerConfig) ControllerOptions {
	opts := ControllerOptions{
		Name:               name,
		ActionMethodSuffix: cc.ActionSuffix,
		NoDefaultAction:    cc.DisableDefault,
	}
	if cc.DefaultAction != nil {
		opts.DefaultAction = *cc.DefaultAction
	}
	return opts
}

func (o ControllerOptions) resolveOptions() resolve.Options {
	def := o.DefaultAction
	if def == "" {
		def = consts.DefaultAction
	}
	return resolve.Options{
		Suffix:        o.ActionMethodSuffix,
		DefaultAction: def,
		NoDefault:     o.NoDefaultAction,
	}
}
