// meta/meta.go
package meta

// DefaultDepth is the ply budget of the search tree.
const DefaultDepth = 4

// Exit codes, one per error class.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitAborted       = 2 // end of input or interrupt during a human move
	ExitUnknownPlayer = 3
	ExitInvariant     = 4
	ExitFailure       = 5
)
