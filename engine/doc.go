// Package engine implements the assistant orchestrator: it routes each user
// input through the plugin registry, falls back to the default responder
// when no plugin claims the input, and records completed exchanges in the
// conversation history.
//
// Routing is deliberately simple and predictable: the registry is scanned in
// registration order and the first enabled plugin whose CanHandle returns
// true wins. There is no scoring and there are no ties; when two plugins
// would both claim an input, the one registered earlier always handles it.
// This trade-off over confidence or priority dispatch must be preserved
// exactly for reproducibility.
package engine
