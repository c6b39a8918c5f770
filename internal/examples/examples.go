// Package examples holds the bundled example suites. Each suite demonstrates
// one rule of Go's scoping, closure or method-binding semantics and asserts the
// observable outcome.
package examples

import "semrun/internal/registry"

// Register adds every bundled suite to r in a fixed order.
func Register(r *registry.Registry) {
	registerClosures(r)
	registerLoops(r)
	registerModules(r)
	registerReceivers(r)
}
