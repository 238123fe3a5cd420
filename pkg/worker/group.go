package worker

import "sync/atomic"

// GroupID correlates an EnsureChunksCmd/GenerateChunksCmd pair across the
// command queue and the result channel, since several loaders can have
// overlapping in-flight requests at once.
type GroupID uint64

var nextGroupID uint64

// NewGroupID returns a GroupID unique for the process's lifetime.
func NewGroupID() GroupID {
	return GroupID(atomic.AddUint64(&nextGroupID, 1))
}
