// Package event provides the publish/subscribe capability controllers use
// to announce their lifecycle and to listen to other components.
//
// # Topics
//
// Topics use dot notation:
//
//	controller.dispatch   - an action is about to run
//	controller.fallback   - the default action was chosen
//	controller.view       - a new current view was installed
//	controller.view.released - the previous view was removed
//	controller.remove     - the controller was torn down
//
// Subscriptions may use wildcard patterns:
//
//	controller.*   - matches controller.dispatch (exactly one segment)
//	controller.**  - matches controller.view.released (zero or more segments)
//	**             - matches everything
//
// # Delivery
//
// Publish is synchronous: handlers run in the publisher's goroutine, in the
// order they subscribed. Handler errors and panics never stop delivery to the
// remaining handlers; they are joined and returned to the publisher.
//
// # Cleanup
//
// A Subscriber tracks subscriptions made on any number of buses so that an
// owner can drop all of them at once with UnsubscribeAll:
//
//	sub := event.NewSubscriber()
//	_, _ = sub.Listen(appBus, "session.*", onSession)
//	...
//	sub.UnsubscribeAll()
package event
