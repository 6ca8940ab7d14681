// Package mpd holds the domain entities stave renders: songs, their ordered
// multi-valued metadata, the player status snapshot, and the Client interface
// the UI issues queries against.
//
// The wire protocol is not implemented here. MemoryClient is a complete
// in-process backend used by the demo command and by tests.
package mpd
