package consts

// DefaultAction is the fallback action name used when a controller does not
// configure one.
const DefaultAction = "index"

// Topics published on a controller's event bus.
const (
	TopicDispatch = "controller.dispatch"
	TopicFallback = "controller.fallback"
	TopicView     = "controller.view"
	TopicRelease  = "controller.view.released"
	TopicRemove   = "controller.remove"
)

// Log levels understood by the default logger.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)
