package ecs

import "github.com/TheBitDrifter/bark"

// barkTrace annotates an unreachable-invariant error with a stack trace
// before it is panicked. It is never used for the checked errors this
// package returns to callers (those propagate as plain errors), only for
// violations that should never happen if this package's own invariants
// hold.
func barkTrace(err error) error {
	return bark.AddTrace(err)
}
