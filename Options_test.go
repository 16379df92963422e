package rctl_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rctl"
	"github.com/rohanthewiz/rctl/config"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := config.Parse(`
[controllers.bundle]
action_suffix = "Action"
default_action = "overview"

[controllers.strict]
disable_default = true
`)
	assert.Nil(t, err)

	opts := rctl.OptionsFromConfig("bundle", cfg.Controller("bundle"))
	assert.Equal(t, opts.Name, "bundle")
	assert.Equal(t, opts.ActionMethodSuffix, "Action")
	assert.Equal(t, opts.DefaultAction, "overview")
	assert.False(t, opts.NoDefaultAction)

	opts = rctl.OptionsFromConfig("strict", cfg.Controller("strict"))
	assert.Equal(t, opts.DefaultAction, "")
	assert.True(t, opts.NoDefaultAction)
}

func TestConfiguredControllerFallsBack(t *testing.T) {
	cfg, err := config.Parse(`
[controllers.bundle]
action_suffix = "Action"
default_action = "overview"
`)
	assert.Nil(t, err)

	opts := rctl.OptionsFromConfig("bundle", cfg.Controller("bundle"))
	opts.Logger = rctl.NopLogger{}
	c := rctl.NewController(opts)
	c.HandleAction("overview", func(rctl.Args) (any, error) { return nil, nil })

	res, err := c.Resolve(rctl.RouteMeta{Name: "bundle"}, []string{"nope"})
	assert.Nil(t, err)
	assert.Equal(t, res.Action, "overviewAction")
	assert.True(t, res.Fallback)
}

func TestZeroOptionsUseIndex(t *testing.T) {
	c := rctl.NewController()
	c.Handle("index", func(rctl.Args) (any, error) { return nil, nil })

	res, err := c.Resolve(rctl.RouteMeta{}, nil)
	assert.Nil(t, err)
	assert.Equal(t, res.Action, "index")
}

func TestSetDefaultLogger(t *testing.T) {
	log := &recLogger{}
	rctl.SetDefaultLogger(log)
	defer rctl.SetDefaultLogger(nil)

	c := rctl.NewController()
	c.Handle("index", func(rctl.Args) (any, error) { return nil, nil })
	_, err := c.Dispatch(rctl.RouteMeta{Name: "home"}, []string{"x"})
	assert.Nil(t, err)
	assert.Equal(t, len(log.info), 1)
	assert.Equal(t, len(log.debug), 1)
}
