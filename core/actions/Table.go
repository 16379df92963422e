package actions

import (
	"fmt"
	"sort"
)

// Table is a name-keyed lookup of action handlers.
// Names are stored exactly as resolved, suffix included.
type Table[T any] struct {
	handlers map[string]T
}

// NewTable creates an empty table.
// It is important to use this method since the zero Table cannot be added to.
func NewTable[T any]() *Table[T] {
	return &Table[T]{handlers: make(map[string]T, 8)}
}

// Add registers handler under name, replacing any previous entry.
func (tb *Table[T]) Add(name string, handler T) {
	tb.handlers[name] = handler
}

// Has reports whether name is registered.
func (tb *Table[T]) Has(name string) bool {
	_, ok := tb.handlers[name]
	return ok
}

// Lookup returns the handler for name.
func (tb *Table[T]) Lookup(name string) (T, bool) {
	h, ok := tb.handlers[name]
	return h, ok
}

// Remove drops name from the table.
func (tb *Table[T]) Remove(name string) {
	delete(tb.handlers, name)
}

// Len returns the number of registered actions.
func (tb *Table[T]) Len() int {
	return len(tb.handlers)
}

// Names returns the registered names in sorted order.
func (tb *Table[T]) Names() []string {
	names := make([]string, 0, len(tb.handlers))
	for k := range tb.handlers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// List describes every registered action, sorted by name.
func (tb *Table[T]) List() (list []ActionList) {
	for _, name := range tb.Names() {
		list = append(list, ActionList{Name: name, HandlerRef: fmt.Sprintf("%v", tb.handlers[name])})
	}
	return
}
