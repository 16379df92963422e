package actions_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rctl/core/actions"
)

func TestTable(t *testing.T) {
	tb := actions.NewTable[string]()
	tb.Add("indexAction", "Index")
	tb.Add("bundleEditAction", "Bundle edit")

	assert.True(t, tb.Has("indexAction"))
	assert.False(t, tb.Has("index"))
	assert.Equal(t, tb.Len(), 2)

	h, ok := tb.Lookup("bundleEditAction")
	assert.True(t, ok)
	assert.Equal(t, h, "Bundle edit")

	_, ok = tb.Lookup("missing")
	assert.False(t, ok)
}

func TestTableReplaceAndRemove(t *testing.T) {
	tb := actions.NewTable[int]()
	tb.Add("a", 1)
	tb.Add("a", 2)

	h, _ := tb.Lookup("a")
	assert.Equal(t, h, 2)
	assert.Equal(t, tb.Len(), 1)

	tb.Remove("a")
	assert.False(t, tb.Has("a"))
	tb.Remove("a")
}

func TestTableList(t *testing.T) {
	tb := actions.NewTable[string]()
	tb.Add("zeta", "z")
	tb.Add("alpha", "a")

	assert.DeepEqual(t, tb.Names(), []string{"alpha", "zeta"})

	list := tb.List()
	assert.Equal(t, len(list), 2)
	assert.Equal(t, list[0].Name, "alpha")
	assert.Equal(t, list[0].HandlerRef, "a")
}
