package actions

// ActionList represents a registered action for debugging and inspection purposes.
//
// Fields:
//   - Name: the full action name, suffix included (e.g. "bundleEditAction")
//   - HandlerRef: String representation of the handler (for debugging)
type ActionList struct {
	Name       string
	HandlerRef string
}
